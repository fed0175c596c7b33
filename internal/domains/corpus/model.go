package corpus

import "time"

// QuranVersion is a named text version/language. It owns Surahs, which own
// Verses; both children are keyed together with their parent.
type QuranVersion struct {
	ID          int64     `json:"version_id"`
	Name        string    `json:"name"`
	Language    string    `json:"language"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Surah is a chapter. Its primary key is (SurahID, VersionID): a surah row
// is only addressable together with the text version it belongs to.
type Surah struct {
	ID            int64  `json:"surah_id"`
	VersionID     int64  `json:"version_id"`
	SurahNumber   int    `json:"surah_number"`
	Name          string `json:"name"`
	ArabicName    string `json:"arabic_name"`
	NumberOfAyahs int    `json:"number_of_ayahs"`
}

// Verse is a unit of text keyed by (VerseID, SurahID). VerseNumber is unique
// within its surah.
type Verse struct {
	ID          int64  `json:"verse_id"`
	SurahID     int64  `json:"surah_id"`
	VerseNumber int    `json:"verse_number"`
	Text        string `json:"text"`
}
