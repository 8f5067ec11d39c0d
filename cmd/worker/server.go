package main

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"library-backend/internal/config"
	"library-backend/internal/domains/book/job"
	bookRepo "library-backend/internal/domains/book/repository"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/internal/infrastructure/queue"
	"library-backend/internal/infrastructure/storage"
)

// worker wraps the asynq server plus the infrastructure its handlers need.
type worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
	db  *database.PostgresDB
}

// newWorker wires the background job handlers: asset cleanup after book
// deletion and cover thumbnail generation.
func newWorker(ctx context.Context) (*worker, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}

	repo := bookRepo.NewPostgresRepository(db.Pool, redisCache)
	processor := storage.NewImageProcessor()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeBookDeleteAssets, job.NewDeleteAssetsHandler(minioStorage))
	mux.Handle(queue.TypeBookProcessCover, job.NewProcessCoverHandler(minioStorage, repo, processor))

	return &worker{srv: srv, mux: mux, db: db}, nil
}

// Run blocks until the server receives TERM/INT, then drains in-flight tasks.
func (w *worker) Run() error {
	defer w.db.Close()
	return w.srv.Run(w.mux)
}
