package shelf

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Shelf is a physical location books are stored at. Books reference shelves
// by id; the display name can change without breaking those references.
type Shelf struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("shelf name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Capacity,
			validation.Min(0).Error("capacity cannot be negative"),
		),
	)
}

// UpdateRequest carries a partial update. Nil fields keep their prior value.
// Renaming goes through the dedicated rename operation so the in-use guard
// applies.
type UpdateRequest struct {
	Capacity *int `json:"capacity,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Capacity,
			validation.When(r.Capacity != nil, validation.Min(0).Error("capacity cannot be negative")),
		),
	)
}

type RenameRequest struct {
	Name string `json:"name"`
}

func (r RenameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("shelf name is required"),
			validation.Length(1, 100),
		),
	)
}
