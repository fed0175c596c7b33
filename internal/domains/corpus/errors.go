package corpus

import "errors"

var (
	ErrVersionNotFound  = errors.New("quran version not found")
	ErrVersionNameTaken = errors.New("quran version name already exists")

	ErrSurahNotFound    = errors.New("surah not found")
	ErrSurahNumberTaken = errors.New("surah number already exists in this version")

	ErrVerseNotFound    = errors.New("verse not found")
	ErrVerseNumberTaken = errors.New("verse number already exists in this surah")
)
