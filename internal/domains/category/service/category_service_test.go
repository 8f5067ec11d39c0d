package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/category"
)

type fakeCategoryRepo struct {
	categories []*category.Category
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]*category.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	c.ID = uuid.New()
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, id uuid.UUID, c *category.Category) (*category.Category, error) {
	for i, existing := range f.categories {
		if existing.ID == id {
			c.ID = id
			f.categories[i] = c
			return c, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range f.categories {
		if existing.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return category.ErrCategoryNotFound
}

func TestCreateCategoryEmptyNameRejected(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	_, err := svc.CreateCategory(context.Background(), &category.CreateRequest{Name: ""})

	var vErrs validation.Errors
	require.ErrorAs(t, err, &vErrs)
	assert.Empty(t, repo.categories, "store must not be touched on validation failure")
}

func TestCreateCategoryAppearsInListing(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	created, err := svc.CreateCategory(context.Background(), &category.CreateRequest{Name: "Fiction"})
	require.NoError(t, err)
	require.NotNil(t, created)

	listed, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Fiction", listed[0].Name)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{})

	name := "Science"
	_, err := svc.UpdateCategory(context.Background(), uuid.New(), &category.UpdateRequest{Name: &name})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestDeleteCategoryTwice(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	created, err := svc.CreateCategory(context.Background(), &category.CreateRequest{Name: "History"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), created.ID), category.ErrCategoryNotFound)
}
