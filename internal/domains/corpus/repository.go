package corpus

import "context"

// Repository persists the version -> surah -> verse hierarchy. Surah and
// Verse creation run inside a transaction: the parent is verified and the
// child inserted atomically, so a child row never appears without its
// parent key.
type Repository interface {
	CreateVersion(ctx context.Context, v *QuranVersion) (int64, error)
	FindVersionByID(ctx context.Context, id int64) (*QuranVersion, error)
	ListVersions(ctx context.Context) ([]QuranVersion, error)

	CreateSurah(ctx context.Context, s *Surah) (int64, error)
	FindSurah(ctx context.Context, versionID, surahID int64) (*Surah, error)
	ListSurahs(ctx context.Context, versionID int64) ([]Surah, error)

	CreateVerse(ctx context.Context, v *Verse) (int64, error)
	ListVerses(ctx context.Context, surahID int64) ([]Verse, error)
}
