package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"library-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	srv, err := newWorker(ctx)
	cancel()
	if err != nil {
		logger.Error("failed to initialize worker", err)
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error("worker stopped", err)
		os.Exit(1)
	}
}
