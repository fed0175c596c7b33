package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recitation-backend/internal/domains/corpus"
	"recitation-backend/internal/shared/utils"
	"recitation-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) corpus.Repository {
	return &postgresRepository{pool: pool}
}

// ========================================
// VERSIONS
// ========================================

func (r *postgresRepository) CreateVersion(ctx context.Context, v *corpus.QuranVersion) (int64, error) {
	query := `
		INSERT INTO quranversions (name, language, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING "Version_id"
	`

	var id int64
	err := r.pool.QueryRow(ctx, query, v.Name, v.Language, v.Description, v.CreatedAt).Scan(&id)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return 0, corpus.ErrVersionNameTaken
		}
		return 0, fmt.Errorf("create quran version: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindVersionByID(ctx context.Context, id int64) (*corpus.QuranVersion, error) {
	query := `
		SELECT "Version_id", name, language, description, created_at
		FROM quranversions
		WHERE "Version_id" = $1
	`

	var v corpus.QuranVersion
	err := r.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Language, &v.Description, &v.CreatedAt)
	if err != nil {
		if utils.IsNoRows(err) {
			return nil, corpus.ErrVersionNotFound
		}
		return nil, fmt.Errorf("find version by id: %w", err)
	}

	return &v, nil
}

func (r *postgresRepository) ListVersions(ctx context.Context) ([]corpus.QuranVersion, error) {
	query := `
		SELECT "Version_id", name, language, description, created_at
		FROM quranversions
		ORDER BY "Version_id"
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []corpus.QuranVersion
	for rows.Next() {
		var v corpus.QuranVersion
		if err := rows.Scan(&v.ID, &v.Name, &v.Language, &v.Description, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, v)
	}

	return versions, rows.Err()
}

// ========================================
// SURAHS
// ========================================

// CreateSurah verifies the owning version and inserts the chapter in one
// transaction. The composite key (sutrah_id, Version_id) is written together.
func (r *postgresRepository) CreateSurah(ctx context.Context, s *corpus.Surah) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM quranversions WHERE "Version_id" = $1)`, s.VersionID,
		).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("check version exists: %w", err)
		}
		if !exists {
			return 0, corpus.ErrVersionNotFound
		}

		query := `
			INSERT INTO surahs ("QuranVersions_Version_id", surah_number, name, arabic_name, number_of_ayahs)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING sutrah_id
		`

		var id int64
		err = tx.QueryRow(ctx, query,
			s.VersionID, s.SurahNumber, s.Name, s.ArabicName, s.NumberOfAyahs,
		).Scan(&id)
		if err != nil {
			if isSurahNumberViolation(err) {
				return 0, corpus.ErrSurahNumberTaken
			}
			return 0, fmt.Errorf("create surah: %w", err)
		}

		return id, nil
	})
}

func (r *postgresRepository) FindSurah(ctx context.Context, versionID, surahID int64) (*corpus.Surah, error) {
	query := `
		SELECT sutrah_id, "QuranVersions_Version_id", surah_number, name, arabic_name, number_of_ayahs
		FROM surahs
		WHERE sutrah_id = $1 AND "QuranVersions_Version_id" = $2
	`

	var s corpus.Surah
	err := r.pool.QueryRow(ctx, query, surahID, versionID).Scan(
		&s.ID, &s.VersionID, &s.SurahNumber, &s.Name, &s.ArabicName, &s.NumberOfAyahs,
	)
	if err != nil {
		if utils.IsNoRows(err) {
			return nil, corpus.ErrSurahNotFound
		}
		return nil, fmt.Errorf("find surah: %w", err)
	}

	return &s, nil
}

func (r *postgresRepository) ListSurahs(ctx context.Context, versionID int64) ([]corpus.Surah, error) {
	query := `
		SELECT sutrah_id, "QuranVersions_Version_id", surah_number, name, arabic_name, number_of_ayahs
		FROM surahs
		WHERE "QuranVersions_Version_id" = $1
		ORDER BY surah_number
	`

	rows, err := r.pool.Query(ctx, query, versionID)
	if err != nil {
		return nil, fmt.Errorf("list surahs: %w", err)
	}
	defer rows.Close()

	var surahs []corpus.Surah
	for rows.Next() {
		var s corpus.Surah
		if err := rows.Scan(&s.ID, &s.VersionID, &s.SurahNumber, &s.Name, &s.ArabicName, &s.NumberOfAyahs); err != nil {
			return nil, fmt.Errorf("scan surah: %w", err)
		}
		surahs = append(surahs, s)
	}

	return surahs, rows.Err()
}

// ========================================
// VERSES
// ========================================

func (r *postgresRepository) CreateVerse(ctx context.Context, v *corpus.Verse) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM surahs WHERE sutrah_id = $1)`, v.SurahID,
		).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("check surah exists: %w", err)
		}
		if !exists {
			return 0, corpus.ErrSurahNotFound
		}

		query := `
			INSERT INTO verses ("Surahs_sutrah_id", verse_number, text)
			VALUES ($1, $2, $3)
			RETURNING verse_id
		`

		var id int64
		err = tx.QueryRow(ctx, query, v.SurahID, v.VerseNumber, v.Text).Scan(&id)
		if err != nil {
			if utils.IsUniqueViolation(err) {
				return 0, corpus.ErrVerseNumberTaken
			}
			return 0, fmt.Errorf("create verse: %w", err)
		}

		return id, nil
	})
}

func (r *postgresRepository) ListVerses(ctx context.Context, surahID int64) ([]corpus.Verse, error) {
	query := `
		SELECT verse_id, "Surahs_sutrah_id", verse_number, text
		FROM verses
		WHERE "Surahs_sutrah_id" = $1
		ORDER BY verse_number
	`

	rows, err := r.pool.Query(ctx, query, surahID)
	if err != nil {
		return nil, fmt.Errorf("list verses: %w", err)
	}
	defer rows.Close()

	var verses []corpus.Verse
	for rows.Next() {
		var v corpus.Verse
		if err := rows.Scan(&v.ID, &v.SurahID, &v.VerseNumber, &v.Text); err != nil {
			return nil, fmt.Errorf("scan verse: %w", err)
		}
		verses = append(verses, v)
	}

	return verses, rows.Err()
}

// isSurahNumberViolation distinguishes the per-version surah_number unique
// constraint from the sutrah_id one.
func isSurahNumberViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return utils.IsUniqueViolation(err) &&
		strings.Contains(strings.ToLower(pgErr.ConstraintName), "surah_number")
}
