package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/publisher"
	"library-backend/internal/shared/response"
)

// PublisherHandler handles HTTP requests for the publisher screen.
type PublisherHandler struct {
	service publisher.Service
}

func NewPublisherHandler(service publisher.Service) *PublisherHandler {
	return &PublisherHandler{
		service: service,
	}
}

// List handles GET /publishers
func (h *PublisherHandler) List(c *gin.Context) {
	pubs, err := h.service.ListPublishers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pubs)
}

// Get handles GET /publishers/:id
func (h *PublisherHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid publisher id")
		return
	}

	pub, err := h.service.GetPublisher(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pub)
}

// Create handles POST /publishers
func (h *PublisherHandler) Create(c *gin.Context) {
	var req publisher.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	created, err := h.service.CreatePublisher(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /publishers/:id
func (h *PublisherHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid publisher id")
		return
	}

	var req publisher.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	updated, err := h.service.UpdatePublisher(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /publishers/:id
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid publisher id")
		return
	}

	if err := h.service.DeletePublisher(c.Request.Context(), id); err != nil {
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
	case errors.Is(err, publisher.ErrPublisherNotFound):
		response.NotFound(c, "publisher not found")
	case errors.Is(err, publisher.ErrInvalidID):
		response.BadRequest(c, "invalid publisher id")
	default:
		response.ServiceUnavailable(c, "catalog store unavailable")
	}
}
