package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Book statuses. A book is either on the shelf or checked out; no operation
// here flips the flag, circulation is handled elsewhere.
const (
	StatusAvailable = "available"
	StatusBorrowed  = "borrowed"
)

// Book is a catalog record. References to author, category, publisher and
// shelf are by id; display names are resolved at read time.
type Book struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	PublishedDate string     `json:"published_date,omitempty"`
	Type          string     `json:"type,omitempty"`
	Format        string     `json:"format,omitempty"`
	ISBN          string     `json:"isbn,omitempty"`
	Source        string     `json:"source,omitempty"`
	Language      string     `json:"language,omitempty"`
	Relation      string     `json:"relation,omitempty"`
	Coverage      string     `json:"coverage,omitempty"`
	Rights        string     `json:"rights,omitempty"`
	PageCount     int        `json:"page_count"`
	Quantity      int        `json:"quantity"`
	Condition     string     `json:"condition,omitempty"`
	Status        string     `json:"status"`
	AuthorID      *uuid.UUID `json:"author_id,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	PublisherID   *uuid.UUID `json:"publisher_id,omitempty"`
	ShelfID       *uuid.UUID `json:"shelf_id,omitempty"`
	CoverURL      string     `json:"cover_url,omitempty"`
	PDFURL        string     `json:"pdf_url,omitempty"`
	AudioURL      string     `json:"audio_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ListedBook is a book row as rendered by the listing screen, with reference
// display names resolved by join. Empty names mean the reference is unset or
// dangling.
type ListedBook struct {
	Book
	AuthorName    string `json:"author_name"`
	CategoryName  string `json:"category_name"`
	PublisherName string `json:"publisher_name"`
	ShelfName     string `json:"shelf_name"`
}

// AssetUpload is one file from the multipart form.
type AssetUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateRequest carries the book form. Asset files ride alongside in the
// multipart request and are passed to the service separately.
type CreateRequest struct {
	Title         string     `form:"title" json:"title"`
	Description   string     `form:"description" json:"description"`
	PublishedDate string     `form:"published_date" json:"published_date"`
	Type          string     `form:"type" json:"type"`
	Format        string     `form:"format" json:"format"`
	ISBN          string     `form:"isbn" json:"isbn"`
	Source        string     `form:"source" json:"source"`
	Language      string     `form:"language" json:"language"`
	Relation      string     `form:"relation" json:"relation"`
	Coverage      string     `form:"coverage" json:"coverage"`
	Rights        string     `form:"rights" json:"rights"`
	PageCount     int        `form:"page_count" json:"page_count"`
	Quantity      int        `form:"quantity" json:"quantity"`
	Condition     string     `form:"condition" json:"condition"`
	Status        string     `form:"status" json:"status"`
	AuthorID      *uuid.UUID `form:"author_id" json:"author_id"`
	CategoryID    *uuid.UUID `form:"category_id" json:"category_id"`
	PublisherID   *uuid.UUID `form:"publisher_id" json:"publisher_id"`
	ShelfID       *uuid.UUID `form:"shelf_id" json:"shelf_id"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("book title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.PageCount, validation.Min(0)),
		validation.Field(&r.Quantity, validation.Min(0)),
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusAvailable, StatusBorrowed).Error("status must be available or borrowed"),
			),
		),
	)
}

// UpdateRequest carries a partial update. Nil fields keep their prior value;
// the Clear* flags detach a reference.
type UpdateRequest struct {
	Title          *string    `form:"title" json:"title"`
	Description    *string    `form:"description" json:"description"`
	PublishedDate  *string    `form:"published_date" json:"published_date"`
	Type           *string    `form:"type" json:"type"`
	Format         *string    `form:"format" json:"format"`
	ISBN           *string    `form:"isbn" json:"isbn"`
	Source         *string    `form:"source" json:"source"`
	Language       *string    `form:"language" json:"language"`
	Relation       *string    `form:"relation" json:"relation"`
	Coverage       *string    `form:"coverage" json:"coverage"`
	Rights         *string    `form:"rights" json:"rights"`
	PageCount      *int       `form:"page_count" json:"page_count"`
	Quantity       *int       `form:"quantity" json:"quantity"`
	Condition      *string    `form:"condition" json:"condition"`
	Status         *string    `form:"status" json:"status"`
	AuthorID       *uuid.UUID `form:"author_id" json:"author_id"`
	CategoryID     *uuid.UUID `form:"category_id" json:"category_id"`
	PublisherID    *uuid.UUID `form:"publisher_id" json:"publisher_id"`
	ShelfID        *uuid.UUID `form:"shelf_id" json:"shelf_id"`
	ClearAuthor    bool       `form:"clear_author" json:"clear_author"`
	ClearCategory  bool       `form:"clear_category" json:"clear_category"`
	ClearPublisher bool       `form:"clear_publisher" json:"clear_publisher"`
	ClearShelf     bool       `form:"clear_shelf" json:"clear_shelf"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("book title cannot be empty"),
				validation.Length(1, 500),
			),
		),
		validation.Field(&r.PageCount,
			validation.When(r.PageCount != nil, validation.Min(0)),
		),
		validation.Field(&r.Quantity,
			validation.When(r.Quantity != nil, validation.Min(0)),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != nil,
				validation.In(StatusAvailable, StatusBorrowed).Error("status must be available or borrowed"),
			),
		),
	)
}

// ImportRowError reports one failed spreadsheet row during bulk import.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	CreatedIDs []uuid.UUID      `json:"created_ids"`
	Errors     []ImportRowError `json:"errors"`
}
