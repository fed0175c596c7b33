package versetag

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateVerseTagRequest struct {
	VerseID        int64 `json:"verse_id"`
	TagID          int64 `json:"tag_id"`
	StartWordIndex int   `json:"start_word_index"`
	EndWordIndex   int   `json:"end_word_index"`
}

func (r CreateVerseTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VerseID,
			validation.Required.Error("verse_id is required"),
			validation.Min(1),
		),
		validation.Field(&r.TagID,
			validation.Required.Error("tag_id is required"),
			validation.Min(1),
		),
		validation.Field(&r.StartWordIndex,
			validation.Required.Error("start_word_index is required"),
			validation.Min(1),
		),
		validation.Field(&r.EndWordIndex,
			validation.Required.Error("end_word_index is required"),
			validation.Min(1),
			validation.By(r.wordRangeOrdered),
		),
	)
}

func (r CreateVerseTagRequest) wordRangeOrdered(interface{}) error {
	if r.StartWordIndex > 0 && r.EndWordIndex > 0 && r.StartWordIndex > r.EndWordIndex {
		return ErrInvalidWordRange
	}
	return nil
}
