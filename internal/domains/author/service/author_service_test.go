package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
)

// fakeAuthorRepo resolves publisher names the way the join does: whatever is
// in resolvedNames, empty string otherwise.
type fakeAuthorRepo struct {
	authors       []*author.Author
	resolvedNames map[uuid.UUID]string
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{resolvedNames: map[uuid.UUID]string{}}
}

func (f *fakeAuthorRepo) List(ctx context.Context) ([]*author.ListedAuthor, error) {
	var listed []*author.ListedAuthor
	for _, a := range f.authors {
		la := &author.ListedAuthor{Author: *a}
		if a.PublisherID != nil {
			la.PublisherName = f.resolvedNames[*a.PublisherID]
		}
		listed = append(listed, la)
	}
	return listed, nil
}

func (f *fakeAuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	for _, a := range f.authors {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	a.ID = uuid.New()
	f.authors = append(f.authors, a)
	return a, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, id uuid.UUID, a *author.Author) (*author.Author, error) {
	for i, existing := range f.authors {
		if existing.ID == id {
			a.ID = id
			f.authors[i] = a
			return a, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range f.authors {
		if existing.ID == id {
			f.authors = append(f.authors[:i], f.authors[i+1:]...)
			return nil
		}
	}
	return author.ErrAuthorNotFound
}

func TestListAuthorsResolvesPublisherName(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	pubID := uuid.New()
	repo.resolvedNames[pubID] = "Kim Dong"

	_, err := svc.CreateAuthor(context.Background(), &author.CreateRequest{
		Name:        "Nguyen Nhat Anh",
		PublisherID: &pubID,
	})
	require.NoError(t, err)

	listed, err := svc.ListAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Kim Dong", listed[0].PublisherName)
}

func TestListAuthorsPlaceholderWhenNoPublisher(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	_, err := svc.CreateAuthor(context.Background(), &author.CreateRequest{Name: "To Hoai"})
	require.NoError(t, err)

	listed, err := svc.ListAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, author.NoPublisherPlaceholder, listed[0].PublisherName)
}

func TestListAuthorsPlaceholderWhenPublisherUnmatched(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	dangling := uuid.New()
	_, err := svc.CreateAuthor(context.Background(), &author.CreateRequest{
		Name:        "Xuan Quynh",
		PublisherID: &dangling,
	})
	require.NoError(t, err)

	listed, err := svc.ListAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, author.NoPublisherPlaceholder, listed[0].PublisherName)
}

func TestUpdateAuthorClearPublisher(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	pubID := uuid.New()
	created, err := svc.CreateAuthor(context.Background(), &author.CreateRequest{
		Name:        "Nam Cao",
		PublisherID: &pubID,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAuthor(context.Background(), created.ID, &author.UpdateRequest{
		ClearPublisher: true,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.PublisherID)
	assert.Equal(t, "Nam Cao", updated.Name)
}
