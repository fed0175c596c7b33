package voice

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateVoiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	FilePath    string `json:"file_path"`
}

func (r CreateVoiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.FilePath,
			validation.Required.Error("file_path is required"),
		),
	)
}
