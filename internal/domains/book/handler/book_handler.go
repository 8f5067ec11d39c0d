package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/infrastructure/storage"
	"library-backend/internal/shared/response"
)

// BookHandler handles HTTP requests for the book screen. Create and update
// take multipart forms so the cover image, PDF and audio files ride with the
// metadata.
type BookHandler struct {
	service   book.Service
	importer  book.ImportService
	processor *storage.ImageProcessor
}

func NewBookHandler(service book.Service, importer book.ImportService, processor *storage.ImageProcessor) *BookHandler {
	return &BookHandler{
		service:   service,
		importer:  importer,
		processor: processor,
	}
}

// List handles GET /books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Get handles GET /books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	b, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Create handles POST /books (multipart form)
func (h *BookHandler) Create(c *gin.Context) {
	req, err := h.parseCreateForm(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	assets, err := h.parseAssets(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.CreateBook(c.Request.Context(), req, assets)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /books/:id (multipart form). Absent fields keep their
// stored values.
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	req, err := h.parseUpdateForm(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	assets, err := h.parseAssets(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateBook(c.Request.Context(), id, req, assets)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// BulkImport handles POST /books/bulk-import with an .xlsx file field.
func (h *BookHandler) BulkImport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "spreadsheet file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importer.ImportBooks(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *BookHandler) parseCreateForm(c *gin.Context) (*book.CreateRequest, error) {
	req := &book.CreateRequest{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		PublishedDate: c.PostForm("published_date"),
		Type:          c.PostForm("type"),
		Format:        c.PostForm("format"),
		ISBN:          c.PostForm("isbn"),
		Source:        c.PostForm("source"),
		Language:      c.PostForm("language"),
		Relation:      c.PostForm("relation"),
		Coverage:      c.PostForm("coverage"),
		Rights:        c.PostForm("rights"),
		Condition:     c.PostForm("condition"),
		Status:        c.PostForm("status"),
	}

	var err error
	if req.PageCount, err = formInt(c, "page_count"); err != nil {
		return nil, err
	}
	if req.Quantity, err = formInt(c, "quantity"); err != nil {
		return nil, err
	}
	if req.AuthorID, err = formUUID(c, "author_id"); err != nil {
		return nil, err
	}
	if req.CategoryID, err = formUUID(c, "category_id"); err != nil {
		return nil, err
	}
	if req.PublisherID, err = formUUID(c, "publisher_id"); err != nil {
		return nil, err
	}
	if req.ShelfID, err = formUUID(c, "shelf_id"); err != nil {
		return nil, err
	}

	return req, nil
}

func (h *BookHandler) parseUpdateForm(c *gin.Context) (*book.UpdateRequest, error) {
	req := &book.UpdateRequest{
		Title:         formStringPtr(c, "title"),
		Description:   formStringPtr(c, "description"),
		PublishedDate: formStringPtr(c, "published_date"),
		Type:          formStringPtr(c, "type"),
		Format:        formStringPtr(c, "format"),
		ISBN:          formStringPtr(c, "isbn"),
		Source:        formStringPtr(c, "source"),
		Language:      formStringPtr(c, "language"),
		Relation:      formStringPtr(c, "relation"),
		Coverage:      formStringPtr(c, "coverage"),
		Rights:        formStringPtr(c, "rights"),
		Condition:     formStringPtr(c, "condition"),
		Status:        formStringPtr(c, "status"),
	}

	var err error
	if req.PageCount, err = formIntPtr(c, "page_count"); err != nil {
		return nil, err
	}
	if req.Quantity, err = formIntPtr(c, "quantity"); err != nil {
		return nil, err
	}
	if req.AuthorID, err = formUUID(c, "author_id"); err != nil {
		return nil, err
	}
	if req.CategoryID, err = formUUID(c, "category_id"); err != nil {
		return nil, err
	}
	if req.PublisherID, err = formUUID(c, "publisher_id"); err != nil {
		return nil, err
	}
	if req.ShelfID, err = formUUID(c, "shelf_id"); err != nil {
		return nil, err
	}

	req.ClearAuthor = c.PostForm("clear_author") == "true"
	req.ClearCategory = c.PostForm("clear_category") == "true"
	req.ClearPublisher = c.PostForm("clear_publisher") == "true"
	req.ClearShelf = c.PostForm("clear_shelf") == "true"

	return req, nil
}

// parseAssets reads the optional file fields. The cover must be a jpeg/png
// under the size cap; PDFs and audio files pass through as-is.
func (h *BookHandler) parseAssets(c *gin.Context) (book.Assets, error) {
	var assets book.Assets

	cover, err := formAsset(c, "cover")
	if err != nil {
		return assets, err
	}
	if cover != nil {
		if err := h.processor.ValidateImage(cover.Data); err != nil {
			return assets, err
		}
	}
	assets.Cover = cover

	if assets.PDF, err = formAsset(c, "pdf"); err != nil {
		return assets, err
	}
	if assets.Audio, err = formAsset(c, "audio"); err != nil {
		return assets, err
	}

	return assets, nil
}

func formAsset(c *gin.Context, field string) (*book.AssetUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// absent file field, or a non-multipart request with no files at all
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New("cannot open uploaded " + field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("cannot read uploaded " + field)
	}

	return &book.AssetUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func formInt(c *gin.Context, field string) (int, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + field)
	}
	return v, nil
}

func formIntPtr(c *gin.Context, field string) (*int, error) {
	raw, ok := c.GetPostForm(field)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New("invalid " + field)
	}
	return &v, nil
}

func formStringPtr(c *gin.Context, field string) *string {
	raw, ok := c.GetPostForm(field)
	if !ok {
		return nil
	}
	return &raw
}

func formUUID(c *gin.Context, field string) (*uuid.UUID, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New("invalid " + field)
	}
	return &id, nil
}

func respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, book.ErrInvalidID):
		response.BadRequest(c, "invalid book id")
	case errors.Is(err, book.ErrUploadFailed):
		response.ErrorResponse(c, http.StatusBadGateway, "UPLOAD_FAILED", "asset upload failed")
	default:
		response.ServiceUnavailable(c, "catalog store unavailable")
	}
}
