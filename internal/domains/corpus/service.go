package corpus

import "context"

type Service interface {
	CreateVersion(ctx context.Context, req CreateVersionRequest) (*QuranVersion, error)
	ListVersions(ctx context.Context) ([]QuranVersion, error)

	AddSurah(ctx context.Context, versionID int64, req AddSurahRequest) (*Surah, error)
	ListSurahs(ctx context.Context, versionID int64) ([]Surah, error)

	AddVerse(ctx context.Context, versionID, surahID int64, req AddVerseRequest) (*Verse, error)
	ListVerses(ctx context.Context, versionID, surahID int64) ([]Verse, error)
}
