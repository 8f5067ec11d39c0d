package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/shelf"
	"library-backend/internal/shared/response"
)

// ShelfHandler handles HTTP requests for the shelf screen.
type ShelfHandler struct {
	service shelf.Service
}

func NewShelfHandler(service shelf.Service) *ShelfHandler {
	return &ShelfHandler{
		service: service,
	}
}

// List handles GET /shelves
func (h *ShelfHandler) List(c *gin.Context) {
	shelves, err := h.service.ListShelves(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, shelves)
}

// Get handles GET /shelves/:id
func (h *ShelfHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid shelf id")
		return
	}

	sh, err := h.service.GetShelf(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, sh)
}

// Create handles POST /shelves
func (h *ShelfHandler) Create(c *gin.Context) {
	var req shelf.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	created, err := h.service.CreateShelf(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /shelves/:id
func (h *ShelfHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid shelf id")
		return
	}

	var req shelf.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	updated, err := h.service.UpdateShelf(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Rename handles PATCH /shelves/:id/name
func (h *ShelfHandler) Rename(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid shelf id")
		return
	}

	var req shelf.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	renamed, err := h.service.RenameShelf(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, renamed)
}

// Delete handles DELETE /shelves/:id
func (h *ShelfHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid shelf id")
		return
	}

	if err := h.service.DeleteShelf(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, shelf.ErrShelfInUse):
		response.ErrorResponse(c, http.StatusConflict, "SHELF_IN_USE", "shelf is referenced by existing books")
	case errors.Is(err, shelf.ErrShelfNotFound):
		response.NotFound(c, "shelf not found")
	case errors.Is(err, shelf.ErrInvalidID):
		response.BadRequest(c, "invalid shelf id")
	default:
		response.ServiceUnavailable(c, "catalog store unavailable")
	}
}
