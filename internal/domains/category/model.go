package category

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Category is a catalog classification a book can belong to.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRequest carries the fields for a new category. Name is the one field
// the console requires before the store call.
type CreateRequest struct {
	Name string `json:"name"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("category name is required"),
			validation.Length(1, 100),
		),
	)
}

// UpdateRequest carries a partial update. Nil fields keep their prior value.
type UpdateRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("category name cannot be empty"),
				validation.Length(1, 100),
			),
		),
	)
}
