package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/pkg/logger"
)

// bookService implements book.Service. Assets are uploaded before the row is
// written; a failed row write rolls the uploads back so no record can point
// at objects that were never committed, and no objects outlive a record that
// never existed.
type bookService struct {
	repo  book.Repository
	store book.AssetStore
	queue book.TaskEnqueuer
}

func NewBookService(repo book.Repository, store book.AssetStore, queue book.TaskEnqueuer) book.Service {
	return &bookService{
		repo:  repo,
		store: store,
		queue: queue,
	}
}

func (s *bookService) ListBooks(ctx context.Context) ([]*book.ListedBook, error) {
	return s.repo.List(ctx)
}

func (s *bookService) GetBook(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if id == uuid.Nil {
		return nil, book.ErrInvalidID
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b == nil {
		return nil, book.ErrBookNotFound
	}

	return b, nil
}

func (s *bookService) CreateBook(ctx context.Context, req *book.CreateRequest, assets book.Assets) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = book.StatusAvailable
	}

	// The id is assigned here so asset keys can be namespaced under the
	// book before the row exists.
	b := &book.Book{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		PublishedDate: req.PublishedDate,
		Type:          req.Type,
		Format:        req.Format,
		ISBN:          strings.TrimSpace(req.ISBN),
		Source:        req.Source,
		Language:      req.Language,
		Relation:      req.Relation,
		Coverage:      req.Coverage,
		Rights:        req.Rights,
		PageCount:     req.PageCount,
		Quantity:      req.Quantity,
		Condition:     req.Condition,
		Status:        status,
		AuthorID:      req.AuthorID,
		CategoryID:    req.CategoryID,
		PublisherID:   req.PublisherID,
		ShelfID:       req.ShelfID,
	}

	uploaded, coverKey, err := s.uploadAssets(ctx, b, assets)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		s.rollbackUploads(ctx, uploaded)
		return nil, err
	}

	if coverKey != "" {
		if err := s.queue.EnqueueBookProcessCover(ctx, created.ID.String(), coverKey); err != nil {
			logger.Error("failed to enqueue cover processing", err)
		}
	}

	return created, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id uuid.UUID, req *book.UpdateRequest, assets book.Assets) (*book.Book, error) {
	if id == uuid.Nil {
		return nil, book.ErrInvalidID
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, book.ErrBookNotFound
	}

	applyUpdate(existing, req)

	uploaded, coverKey, err := s.uploadAssets(ctx, existing, assets)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, existing)
	if err != nil {
		s.rollbackUploads(ctx, uploaded)
		return nil, err
	}

	if coverKey != "" {
		if err := s.queue.EnqueueBookProcessCover(ctx, updated.ID.String(), coverKey); err != nil {
			logger.Error("failed to enqueue cover processing", err)
		}
	}

	return updated, nil
}

// DeleteBook removes the row, then hands asset cleanup to the worker. The
// row is the source of truth: once it is gone the delete has happened, even
// if the enqueue fails and objects linger until a later sweep.
func (s *bookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return book.ErrInvalidID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.queue.EnqueueBookDeleteAssets(ctx, id.String()); err != nil {
		logger.Error("failed to enqueue asset cleanup", err)
	}

	return nil
}

// uploadAssets pushes each provided file to the object store and sets the
// matching URL field on b. It returns the stored keys so the caller can roll
// them back, and the cover key for the thumbnail job.
func (s *bookService) uploadAssets(ctx context.Context, b *book.Book, assets book.Assets) (uploaded []string, coverKey string, err error) {
	type slot struct {
		kind   string
		upload *book.AssetUpload
		target *string
	}

	slots := []slot{
		{"cover", assets.Cover, &b.CoverURL},
		{"pdf", assets.PDF, &b.PDFURL},
		{"audio", assets.Audio, &b.AudioURL},
	}

	for _, sl := range slots {
		if sl.upload == nil {
			continue
		}

		key := assetKey(b.ID, sl.kind, sl.upload.Filename)
		url, uploadErr := s.store.Upload(ctx, key, sl.upload.Data, sl.upload.ContentType)
		if uploadErr != nil {
			s.rollbackUploads(ctx, uploaded)
			return nil, "", fmt.Errorf("%w: %s: %v", book.ErrUploadFailed, sl.kind, uploadErr)
		}

		uploaded = append(uploaded, key)
		*sl.target = url
		if sl.kind == "cover" {
			coverKey = key
		}
	}

	return uploaded, coverKey, nil
}

func (s *bookService) rollbackUploads(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			logger.Error("failed to roll back uploaded asset", err)
		}
	}
}

// assetKey namespaces objects per book so two uploads with the same original
// filename never collide.
func assetKey(bookID uuid.UUID, kind, filename string) string {
	return fmt.Sprintf("books/%s/%s_%s", bookID, kind, filepath.Base(filename))
}

func applyUpdate(b *book.Book, req *book.UpdateRequest) {
	if req.Title != nil {
		b.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.PublishedDate != nil {
		b.PublishedDate = *req.PublishedDate
	}
	if req.Type != nil {
		b.Type = *req.Type
	}
	if req.Format != nil {
		b.Format = *req.Format
	}
	if req.ISBN != nil {
		b.ISBN = strings.TrimSpace(*req.ISBN)
	}
	if req.Source != nil {
		b.Source = *req.Source
	}
	if req.Language != nil {
		b.Language = *req.Language
	}
	if req.Relation != nil {
		b.Relation = *req.Relation
	}
	if req.Coverage != nil {
		b.Coverage = *req.Coverage
	}
	if req.Rights != nil {
		b.Rights = *req.Rights
	}
	if req.PageCount != nil {
		b.PageCount = *req.PageCount
	}
	if req.Quantity != nil {
		b.Quantity = *req.Quantity
	}
	if req.Condition != nil {
		b.Condition = *req.Condition
	}
	if req.Status != nil {
		b.Status = *req.Status
	}

	if req.ClearAuthor {
		b.AuthorID = nil
	} else if req.AuthorID != nil {
		b.AuthorID = req.AuthorID
	}
	if req.ClearCategory {
		b.CategoryID = nil
	} else if req.CategoryID != nil {
		b.CategoryID = req.CategoryID
	}
	if req.ClearPublisher {
		b.PublisherID = nil
	} else if req.PublisherID != nil {
		b.PublisherID = req.PublisherID
	}
	if req.ClearShelf {
		b.ShelfID = nil
	} else if req.ShelfID != nil {
		b.ShelfID = req.ShelfID
	}
}
