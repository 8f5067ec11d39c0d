package publisher

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Publisher is a publishing house referenced by authors and books.
type Publisher struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("publisher name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.EmailFormat.Error("invalid email format")),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != "", is.URL.Error("invalid website url")),
		),
	)
}

// UpdateRequest carries a partial update. Nil fields keep their prior value.
type UpdateRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	Website *string `json:"website,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("publisher name cannot be empty"),
				validation.Length(1, 200),
			),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != nil && *r.Email != "", is.EmailFormat.Error("invalid email format")),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != nil && *r.Website != "", is.URL.Error("invalid website url")),
		),
	)
}
