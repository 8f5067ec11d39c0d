package job

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"library-backend/internal/infrastructure/queue"
	"library-backend/internal/infrastructure/storage"
	"library-backend/pkg/logger"
)

// AssetStore is the storage surface cover processing needs.
type AssetStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// CoverUpdater points a book's cover at the processed variant.
type CoverUpdater interface {
	UpdateCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error
}

// ProcessCoverHandler generates the listing thumbnail from an uploaded cover
// and repoints the book at it. The original stays at its own key.
type ProcessCoverHandler struct {
	store     AssetStore
	repo      CoverUpdater
	processor *storage.ImageProcessor
}

func NewProcessCoverHandler(store AssetStore, repo CoverUpdater, processor *storage.ImageProcessor) *ProcessCoverHandler {
	return &ProcessCoverHandler{
		store:     store,
		repo:      repo,
		processor: processor,
	}
}

func (h *ProcessCoverHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.BookProcessCoverPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w: %w", asynq.SkipRetry, err)
	}

	bookID, err := uuid.Parse(payload.BookID)
	if err != nil {
		return fmt.Errorf("invalid book id %q: %w", payload.BookID, asynq.SkipRetry)
	}

	original, err := h.store.Download(ctx, payload.CoverKey)
	if err != nil {
		return fmt.Errorf("download cover %s: %w", payload.CoverKey, err)
	}

	thumb, err := h.processor.Thumbnail(original)
	if err != nil {
		// an undecodable upload will not decode on retry either
		return fmt.Errorf("thumbnail cover %s: %w: %v", payload.CoverKey, asynq.SkipRetry, err)
	}

	thumbKey := path.Join(path.Dir(payload.CoverKey), "thumb_cover.jpg")
	url, err := h.store.Upload(ctx, thumbKey, thumb, "image/jpeg")
	if err != nil {
		return fmt.Errorf("upload thumbnail %s: %w", thumbKey, err)
	}

	if err := h.repo.UpdateCoverURL(ctx, bookID, url); err != nil {
		return fmt.Errorf("update cover url for book %s: %w", payload.BookID, err)
	}

	logger.Info("processed book cover", map[string]interface{}{
		"book_id":   payload.BookID,
		"thumb_key": thumbKey,
	})
	return nil
}
