package book

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// AssetStore is the object-storage surface the book service needs. The MinIO
// client satisfies it; tests swap in a fake.
type AssetStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// TaskEnqueuer hands asset cleanup and cover processing to the worker.
type TaskEnqueuer interface {
	EnqueueBookDeleteAssets(ctx context.Context, bookID string) error
	EnqueueBookProcessCover(ctx context.Context, bookID, coverKey string) error
}

// Assets are the optional files attached to a create or update request.
type Assets struct {
	Cover *AssetUpload
	PDF   *AssetUpload
	Audio *AssetUpload
}

// Service is the business-logic contract for books.
type Service interface {
	ListBooks(ctx context.Context) ([]*ListedBook, error)
	GetBook(ctx context.Context, id uuid.UUID) (*Book, error)
	CreateBook(ctx context.Context, req *CreateRequest, assets Assets) (*Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req *UpdateRequest, assets Assets) (*Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

// ImportService bulk-creates books from an uploaded spreadsheet.
type ImportService interface {
	ImportBooks(ctx context.Context, r io.Reader) (*ImportResult, error)
}
