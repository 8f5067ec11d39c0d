package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"library-backend/internal/infrastructure/queue"
	"library-backend/pkg/logger"
)

// AssetRemover drops every object under a prefix.
type AssetRemover interface {
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// DeleteAssetsHandler removes a deleted book's objects from storage. Runs in
// the worker; asynq retries it on failure.
type DeleteAssetsHandler struct {
	store AssetRemover
}

func NewDeleteAssetsHandler(store AssetRemover) *DeleteAssetsHandler {
	return &DeleteAssetsHandler{store: store}
}

func (h *DeleteAssetsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.BookDeleteAssetsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w: %w", asynq.SkipRetry, err)
	}

	prefix := fmt.Sprintf("books/%s/", payload.BookID)
	if err := h.store.DeleteByPrefix(ctx, prefix); err != nil {
		return fmt.Errorf("delete assets for book %s: %w", payload.BookID, err)
	}

	logger.Info("deleted book assets", map[string]interface{}{
		"book_id": payload.BookID,
	})
	return nil
}
