package container

import (
	"context"
	"fmt"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/internal/infrastructure/queue"
	"library-backend/internal/infrastructure/storage"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"

	"library-backend/internal/domains/author"
	authorHandler "library-backend/internal/domains/author/handler"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"

	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"

	"library-backend/internal/domains/category"
	categoryHandler "library-backend/internal/domains/category/handler"
	categoryRepo "library-backend/internal/domains/category/repository"
	categoryService "library-backend/internal/domains/category/service"

	"library-backend/internal/domains/publisher"
	publisherHandler "library-backend/internal/domains/publisher/handler"
	publisherRepo "library-backend/internal/domains/publisher/repository"
	publisherService "library-backend/internal/domains/publisher/service"

	"library-backend/internal/domains/shelf"
	shelfHandler "library-backend/internal/domains/shelf/handler"
	shelfRepo "library-backend/internal/domains/shelf/repository"
	shelfService "library-backend/internal/domains/shelf/service"

	"library-backend/internal/domains/user"
	userHandler "library-backend/internal/domains/user/handler"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph for the API process:
// infrastructure, repositories, services and handlers, built once at startup.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Queue      *queue.Client
	JWTManager *jwt.Manager

	AuthorRepo    author.Repository
	BookRepo      book.Repository
	CategoryRepo  category.Repository
	PublisherRepo publisher.Repository
	ShelfRepo     shelf.Repository
	UserRepo      user.Repository

	AuthorService    author.Service
	BookService      book.Service
	BookImport       book.ImportService
	CategoryService  category.Service
	PublisherService publisher.Service
	ShelfService     shelf.Service
	UserService      user.Service

	AuthorHandler    *authorHandler.AuthorHandler
	BookHandler      *bookHandler.BookHandler
	CategoryHandler  *categoryHandler.CategoryHandler
	PublisherHandler *publisherHandler.PublisherHandler
	ShelfHandler     *shelfHandler.ShelfHandler
	UserHandler      *userHandler.UserHandler
}

// New builds the container: config, database, cache, object storage, task
// queue, then each domain bottom-up.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}

	queueClient := queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	processor := storage.NewImageProcessor()

	c := &Container{
		Config:     cfg,
		DB:         db,
		Cache:      redisCache,
		Storage:    minioStorage,
		Queue:      queueClient,
		JWTManager: jwtManager,
	}

	pool := db.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool, c.Cache)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(pool, c.Cache)
	c.ShelfRepo = shelfRepo.NewPostgresRepository(pool, c.Cache)
	c.UserRepo = userRepo.NewPostgresRepository(pool, c.Cache)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, minioStorage, queueClient)
	c.BookImport = bookService.NewImportService(c.BookRepo, c.BookService)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo)
	c.ShelfService = shelfService.NewShelfService(c.ShelfRepo)
	c.UserService = userService.NewUserService(c.UserRepo, jwtManager)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, c.BookImport, processor)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
	c.ShelfHandler = shelfHandler.NewShelfHandler(c.ShelfService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	return c, nil
}

// Cleanup releases infrastructure connections. Called on shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}

	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
