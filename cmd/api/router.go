package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupCatalogRoutes(v1, c)
		setupUserRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

// setupCatalogRoutes wires the console screens. Every route requires a valid
// session token.
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	catalog := v1.Group("", middleware.AuthMiddleware(c.JWTManager))

	books := catalog.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.Get)
		books.POST("", c.BookHandler.Create)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
		books.POST("/bulk-import", c.BookHandler.BulkImport)
	}

	authors := catalog.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.Get)
		authors.POST("", c.AuthorHandler.Create)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}

	publishers := catalog.Group("/publishers")
	{
		publishers.GET("", c.PublisherHandler.List)
		publishers.GET("/:id", c.PublisherHandler.Get)
		publishers.POST("", c.PublisherHandler.Create)
		publishers.PUT("/:id", c.PublisherHandler.Update)
		publishers.DELETE("/:id", c.PublisherHandler.Delete)
	}

	categories := catalog.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.Get)
		categories.POST("", c.CategoryHandler.Create)
		categories.PUT("/:id", c.CategoryHandler.Update)
		categories.DELETE("/:id", c.CategoryHandler.Delete)
	}

	shelves := catalog.Group("/shelves")
	{
		shelves.GET("", c.ShelfHandler.List)
		shelves.GET("/:id", c.ShelfHandler.Get)
		shelves.POST("", c.ShelfHandler.Create)
		shelves.PUT("/:id", c.ShelfHandler.Update)
		shelves.PATCH("/:id/name", c.ShelfHandler.Rename)
		shelves.DELETE("/:id", c.ShelfHandler.Delete)
	}
}

// setupUserRoutes wires account management, admin only.
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users", middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		users.GET("", c.UserHandler.List)
		users.POST("", c.UserHandler.Create)
		users.GET("/:id", c.UserHandler.Get)
		users.PUT("/:id", c.UserHandler.Update)
		users.DELETE("/:id", c.UserHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "unreachable"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "unreachable"
		}

		ctx.JSON(status, gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
			"env":      c.Config.App.Environment,
			"checked":  time.Now().UTC().Format(time.RFC3339),
		})
	}
}
