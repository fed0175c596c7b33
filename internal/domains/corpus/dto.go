package corpus

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateVersionRequest struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Description string `json:"description,omitempty"`
}

func (r CreateVersionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Language,
			validation.Required.Error("language is required"),
			validation.Length(1, 50),
		),
	)
}

type AddSurahRequest struct {
	SurahNumber   int    `json:"surah_number"`
	Name          string `json:"name"`
	ArabicName    string `json:"arabic_name"`
	NumberOfAyahs int    `json:"number_of_ayahs"`
}

func (r AddSurahRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SurahNumber, validation.Required, validation.Min(1)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ArabicName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.NumberOfAyahs, validation.Required, validation.Min(1)),
	)
}

type AddVerseRequest struct {
	VerseNumber int    `json:"verse_number"`
	Text        string `json:"text"`
}

func (r AddVerseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VerseNumber, validation.Required, validation.Min(1)),
		validation.Field(&r.Text, validation.Required),
	)
}
