package audiorequest

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateAudioRequestRequest struct {
	AudioFilePath string `json:"audio_file_path"`
	StartVerse    int    `json:"start_verse"`
	EndVerse      int    `json:"end_verse"`
	IncludeTags   bool   `json:"include_tags"`
}

func (r CreateAudioRequestRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AudioFilePath,
			validation.Required.Error("audio_file_path is required"),
		),
		validation.Field(&r.StartVerse,
			validation.Required.Error("start_verse is required"),
			validation.Min(1),
		),
		validation.Field(&r.EndVerse,
			validation.Required.Error("end_verse is required"),
			validation.Min(1),
			validation.By(r.verseRangeOrdered),
		),
	)
}

func (r CreateAudioRequestRequest) verseRangeOrdered(interface{}) error {
	if r.StartVerse > 0 && r.EndVerse > 0 && r.StartVerse > r.EndVerse {
		return ErrInvalidVerseRange
	}
	return nil
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
