package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/shelf"
)

// fakeShelfRepo mimics the store-side guard: shelves listed in inUse refuse
// deletion and renaming.
type fakeShelfRepo struct {
	shelves []*shelf.Shelf
	inUse   map[uuid.UUID]bool
}

func newFakeShelfRepo() *fakeShelfRepo {
	return &fakeShelfRepo{inUse: map[uuid.UUID]bool{}}
}

func (f *fakeShelfRepo) List(ctx context.Context) ([]*shelf.Shelf, error) {
	return f.shelves, nil
}

func (f *fakeShelfRepo) GetByID(ctx context.Context, id uuid.UUID) (*shelf.Shelf, error) {
	for _, s := range f.shelves {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeShelfRepo) Create(ctx context.Context, s *shelf.Shelf) (*shelf.Shelf, error) {
	s.ID = uuid.New()
	f.shelves = append(f.shelves, s)
	return s, nil
}

func (f *fakeShelfRepo) Update(ctx context.Context, id uuid.UUID, s *shelf.Shelf) (*shelf.Shelf, error) {
	for i, existing := range f.shelves {
		if existing.ID == id {
			s.ID = id
			f.shelves[i] = s
			return s, nil
		}
	}
	return nil, shelf.ErrShelfNotFound
}

func (f *fakeShelfRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range f.shelves {
		if existing.ID == id {
			if f.inUse[id] {
				return shelf.ErrShelfInUse
			}
			f.shelves = append(f.shelves[:i], f.shelves[i+1:]...)
			return nil
		}
	}
	return shelf.ErrShelfNotFound
}

func (f *fakeShelfRepo) Rename(ctx context.Context, id uuid.UUID, newName string) (*shelf.Shelf, error) {
	for _, existing := range f.shelves {
		if existing.ID == id {
			if f.inUse[id] {
				return nil, shelf.ErrShelfInUse
			}
			existing.Name = newName
			return existing, nil
		}
	}
	return nil, shelf.ErrShelfNotFound
}

func TestDeleteShelfInUseRefused(t *testing.T) {
	repo := newFakeShelfRepo()
	svc := NewShelfService(repo)

	created, err := svc.CreateShelf(context.Background(), &shelf.CreateRequest{Name: "A-1", Capacity: 40})
	require.NoError(t, err)
	repo.inUse[created.ID] = true

	err = svc.DeleteShelf(context.Background(), created.ID)
	assert.ErrorIs(t, err, shelf.ErrShelfInUse)

	listed, err := svc.ListShelves(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 1, "refused delete must leave the shelf listed")
}

func TestDeleteShelfUnreferenced(t *testing.T) {
	repo := newFakeShelfRepo()
	svc := NewShelfService(repo)

	created, err := svc.CreateShelf(context.Background(), &shelf.CreateRequest{Name: "B-2", Capacity: 20})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShelf(context.Background(), created.ID))

	listed, err := svc.ListShelves(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestDeleteShelfTwice(t *testing.T) {
	repo := newFakeShelfRepo()
	svc := NewShelfService(repo)

	created, err := svc.CreateShelf(context.Background(), &shelf.CreateRequest{Name: "C-3", Capacity: 10})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShelf(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteShelf(context.Background(), created.ID), shelf.ErrShelfNotFound)
}

func TestRenameShelfInUseRefused(t *testing.T) {
	repo := newFakeShelfRepo()
	svc := NewShelfService(repo)

	created, err := svc.CreateShelf(context.Background(), &shelf.CreateRequest{Name: "D-4", Capacity: 15})
	require.NoError(t, err)
	repo.inUse[created.ID] = true

	_, err = svc.RenameShelf(context.Background(), created.ID, &shelf.RenameRequest{Name: "D-5"})
	assert.ErrorIs(t, err, shelf.ErrShelfInUse)

	listed, _ := svc.ListShelves(context.Background())
	require.Len(t, listed, 1)
	assert.Equal(t, "D-4", listed[0].Name, "refused rename must not change the name")
}

func TestRenameShelfUnreferenced(t *testing.T) {
	repo := newFakeShelfRepo()
	svc := NewShelfService(repo)

	created, err := svc.CreateShelf(context.Background(), &shelf.CreateRequest{Name: "E-1", Capacity: 25})
	require.NoError(t, err)

	renamed, err := svc.RenameShelf(context.Background(), created.ID, &shelf.RenameRequest{Name: "E-2"})
	require.NoError(t, err)
	assert.Equal(t, "E-2", renamed.Name)
}
