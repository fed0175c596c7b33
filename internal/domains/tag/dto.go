package tag

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateTagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 45),
		),
	)
}
