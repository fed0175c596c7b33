package project

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateProjectRequest carries the create-project submission. Language is
// required by the form contract but derived from the QuranVersion on read,
// so it is validated and not persisted.
type CreateProjectRequest struct {
	Name      string `json:"name"`
	VersionID int64  `json:"version_id"`
	VoiceID   int64  `json:"voice_id"`
	Language  string `json:"language"`
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.VersionID,
			validation.Required.Error("version_id is required"),
			validation.Min(1),
		),
		validation.Field(&r.VoiceID,
			validation.Required.Error("voice_id is required"),
			validation.Min(1),
		),
		validation.Field(&r.Language,
			validation.Required.Error("language is required"),
		),
	)
}
