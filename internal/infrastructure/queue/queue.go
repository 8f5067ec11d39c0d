package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task type names shared between the API (producer) and the worker (consumer).
const (
	TypeBookDeleteAssets = "book:delete_assets"
	TypeBookProcessCover = "book:process_cover"
)

// BookDeleteAssetsPayload asks the worker to drop every stored asset of a
// deleted book.
type BookDeleteAssetsPayload struct {
	BookID string `json:"book_id"`
}

// BookProcessCoverPayload asks the worker to generate the cover thumbnail.
type BookProcessCoverPayload struct {
	BookID   string `json:"book_id"`
	CoverKey string `json:"cover_key"`
}

// Client wraps the asynq producer used by the API process.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *Client) EnqueueBookDeleteAssets(ctx context.Context, bookID string) error {
	return c.enqueue(ctx, TypeBookDeleteAssets, BookDeleteAssetsPayload{BookID: bookID})
}

func (c *Client) EnqueueBookProcessCover(ctx context.Context, bookID, coverKey string) error {
	return c.enqueue(ctx, TypeBookProcessCover, BookProcessCoverPayload{
		BookID:   bookID,
		CoverKey: coverKey,
	})
}

func (c *Client) enqueue(ctx context.Context, taskType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, data)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
