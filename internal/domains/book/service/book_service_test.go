package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
)

type fakeBookRepo struct {
	books      map[uuid.UUID]*book.Book
	failCreate bool
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[uuid.UUID]*book.Book{}}
}

func (f *fakeBookRepo) List(ctx context.Context) ([]*book.ListedBook, error) {
	var listed []*book.ListedBook
	for _, b := range f.books {
		listed = append(listed, &book.ListedBook{Book: *b})
	}
	return listed, nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	if f.failCreate {
		return nil, errors.New("store write refused")
	}
	f.books[b.ID] = b
	return b, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, id uuid.UUID, b *book.Book) (*book.Book, error) {
	if _, ok := f.books[id]; !ok {
		return nil, book.ErrBookNotFound
	}
	b.ID = id
	f.books[id] = b
	return b, nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) UpdateCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error {
	b, ok := f.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	b.CoverURL = coverURL
	return nil
}

func (f *fakeBookRepo) ResolveNames(ctx context.Context, names book.ReferenceNames) (book.ReferenceIDs, error) {
	return book.ReferenceIDs{}, nil
}

type fakeAssetStore struct {
	uploads    map[string][]byte
	deleted    []string
	failUpload bool
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{uploads: map[string][]byte{}}
}

func (f *fakeAssetStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.failUpload {
		return "", errors.New("storage refused")
	}
	f.uploads[key] = data
	return fmt.Sprintf("http://minio/library/%s", key), nil
}

func (f *fakeAssetStore) Delete(ctx context.Context, key string) error {
	delete(f.uploads, key)
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeEnqueuer struct {
	deleteCalls []string
	coverCalls  [][2]string
}

func (f *fakeEnqueuer) EnqueueBookDeleteAssets(ctx context.Context, bookID string) error {
	f.deleteCalls = append(f.deleteCalls, bookID)
	return nil
}

func (f *fakeEnqueuer) EnqueueBookProcessCover(ctx context.Context, bookID, coverKey string) error {
	f.coverCalls = append(f.coverCalls, [2]string{bookID, coverKey})
	return nil
}

func newBookService(repo *fakeBookRepo, store *fakeAssetStore, q *fakeEnqueuer) book.Service {
	return NewBookService(repo, store, q)
}

func TestCreateBookRollsBackUploadsOnStoreFailure(t *testing.T) {
	repo := newFakeBookRepo()
	repo.failCreate = true
	store := newFakeAssetStore()
	svc := newBookService(repo, store, &fakeEnqueuer{})

	_, err := svc.CreateBook(context.Background(),
		&book.CreateRequest{Title: "Dế Mèn Phiêu Lưu Ký"},
		book.Assets{
			Cover: &book.AssetUpload{Filename: "cover.jpg", ContentType: "image/jpeg", Data: []byte("jpegdata")},
			PDF:   &book.AssetUpload{Filename: "book.pdf", ContentType: "application/pdf", Data: []byte("pdfdata")},
		},
	)

	require.Error(t, err)
	assert.Empty(t, store.uploads, "failed save must remove the uploaded objects")
	assert.Len(t, store.deleted, 2)
	assert.Empty(t, repo.books)
}

func TestCreateBookUploadFailure(t *testing.T) {
	repo := newFakeBookRepo()
	store := newFakeAssetStore()
	store.failUpload = true
	svc := newBookService(repo, store, &fakeEnqueuer{})

	_, err := svc.CreateBook(context.Background(),
		&book.CreateRequest{Title: "Số Đỏ"},
		book.Assets{
			Cover: &book.AssetUpload{Filename: "cover.png", ContentType: "image/png", Data: []byte("pngdata")},
		},
	)

	assert.ErrorIs(t, err, book.ErrUploadFailed)
	assert.Empty(t, repo.books, "record must not be written when its asset never stored")
}

func TestCreateBookInvalidStatusRejected(t *testing.T) {
	repo := newFakeBookRepo()
	svc := newBookService(repo, newFakeAssetStore(), &fakeEnqueuer{})

	_, err := svc.CreateBook(context.Background(),
		&book.CreateRequest{Title: "Lão Hạc", Status: "lost"},
		book.Assets{},
	)

	var vErrs validation.Errors
	require.ErrorAs(t, err, &vErrs)
	assert.Empty(t, repo.books)
}

func TestCreateBookDefaultsToAvailable(t *testing.T) {
	repo := newFakeBookRepo()
	svc := newBookService(repo, newFakeAssetStore(), &fakeEnqueuer{})

	created, err := svc.CreateBook(context.Background(),
		&book.CreateRequest{Title: "Tắt Đèn"},
		book.Assets{},
	)
	require.NoError(t, err)
	assert.Equal(t, book.StatusAvailable, created.Status)
}

func TestCreateBookWithCoverEnqueuesProcessing(t *testing.T) {
	repo := newFakeBookRepo()
	store := newFakeAssetStore()
	q := &fakeEnqueuer{}
	svc := newBookService(repo, store, q)

	created, err := svc.CreateBook(context.Background(),
		&book.CreateRequest{Title: "Chí Phèo"},
		book.Assets{
			Cover: &book.AssetUpload{Filename: "cover.jpg", ContentType: "image/jpeg", Data: []byte("jpegdata")},
		},
	)
	require.NoError(t, err)

	require.Len(t, q.coverCalls, 1)
	assert.Equal(t, created.ID.String(), q.coverCalls[0][0])
	assert.True(t, strings.HasPrefix(q.coverCalls[0][1], "books/"+created.ID.String()+"/cover_"),
		"cover key must be namespaced under the book id, got %s", q.coverCalls[0][1])
	assert.NotEmpty(t, created.CoverURL)
}

func TestUpdateBookPartial(t *testing.T) {
	repo := newFakeBookRepo()
	svc := newBookService(repo, newFakeAssetStore(), &fakeEnqueuer{})

	pages := 200
	created, err := svc.CreateBook(context.Background(),
		&book.CreateRequest{Title: "Vợ Nhặt", Language: "vi", PageCount: pages, Quantity: 3},
		book.Assets{},
	)
	require.NoError(t, err)

	title := "Vợ Nhặt (tái bản)"
	updated, err := svc.UpdateBook(context.Background(), created.ID,
		&book.UpdateRequest{Title: &title}, book.Assets{})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	assert.Equal(t, "vi", updated.Language)
	assert.Equal(t, 200, updated.PageCount)
	assert.Equal(t, 3, updated.Quantity)
}

func TestDeleteBookTwice(t *testing.T) {
	repo := newFakeBookRepo()
	svc := newBookService(repo, newFakeAssetStore(), &fakeEnqueuer{})

	created, err := svc.CreateBook(context.Background(),
		&book.CreateRequest{Title: "Truyện Kiều"}, book.Assets{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteBook(context.Background(), created.ID), book.ErrBookNotFound)
}

func TestDeleteBookEnqueuesAssetCleanup(t *testing.T) {
	repo := newFakeBookRepo()
	q := &fakeEnqueuer{}
	svc := newBookService(repo, newFakeAssetStore(), q)

	created, err := svc.CreateBook(context.Background(),
		&book.CreateRequest{Title: "Đất Rừng Phương Nam"}, book.Assets{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(context.Background(), created.ID))
	require.Len(t, q.deleteCalls, 1)
	assert.Equal(t, created.ID.String(), q.deleteCalls[0])
}
