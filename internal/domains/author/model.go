package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// NoPublisherPlaceholder is shown in the author listing when the author has
// no publisher or the referenced publisher no longer exists. The console's
// labels are Vietnamese.
const NoPublisherPlaceholder = "Không có nhà xuất bản"

// Author is a book author, optionally tied to a publisher by id.
type Author struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Degree      string     `json:"degree,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	PublisherID *uuid.UUID `json:"publisher_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ListedAuthor is an author row as rendered by the listing screen, with the
// publisher display name already resolved.
type ListedAuthor struct {
	Author
	PublisherName string `json:"publisher_name"`
}

type CreateRequest struct {
	Name        string     `json:"name"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Degree      string     `json:"degree,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	PublisherID *uuid.UUID `json:"publisher_id,omitempty"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("author name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.EmailFormat.Error("invalid email format")),
		),
	)
}

// UpdateRequest carries a partial update. Nil fields keep their prior value.
// ClearPublisher detaches the author from its publisher.
type UpdateRequest struct {
	Name           *string    `json:"name,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Email          *string    `json:"email,omitempty"`
	Degree         *string    `json:"degree,omitempty"`
	Bio            *string    `json:"bio,omitempty"`
	PublisherID    *uuid.UUID `json:"publisher_id,omitempty"`
	ClearPublisher bool       `json:"clear_publisher,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("author name cannot be empty"),
				validation.Length(1, 200),
			),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != nil && *r.Email != "", is.EmailFormat.Error("invalid email format")),
		),
	)
}
