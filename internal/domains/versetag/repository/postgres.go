package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recitation-backend/internal/domains/project"
	"recitation-backend/internal/domains/versetag"
	"recitation-backend/internal/shared/utils"
	pkgdb "recitation-backend/pkg/database"
)

type postgresVerseTagRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) versetag.Repository {
	return &postgresVerseTagRepository{pool: pool}
}

// Create inserts the annotation with a verse_tag_id allocated per verse
// inside the transaction. FK failures on the verse, tag or project chain
// surface as domain errors.
func (r *postgresVerseTagRepository) Create(ctx context.Context, vt *versetag.VerseTag) (*versetag.VerseTag, error) {
	return pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*versetag.VerseTag, error) {
		query := `
			INSERT INTO versetags
				(verse_tag_id, verses_verse_id, tag_tag_id,
				 "Projects_Project_id", "Projects_User_id",
				 start_word_index, end_word_index)
			SELECT COALESCE(MAX(verse_tag_id), 0) + 1, $1, $2, $3, $4, $5, $6
			FROM versetags
			WHERE verses_verse_id = $1
			RETURNING verse_tag_id, created_at
		`

		created := *vt
		err := tx.QueryRow(ctx, query,
			vt.Key.VerseID,
			vt.Key.TagID,
			vt.Project.ProjectID,
			vt.Project.OwnerID,
			vt.StartWordIndex,
			vt.EndWordIndex,
		).Scan(&created.Key.VerseTagID, &created.CreatedAt)
		if err != nil {
			if utils.IsForeignKeyViolation(err) {
				return nil, referenceError(err)
			}
			return nil, err
		}

		return &created, nil
	})
}

func (r *postgresVerseTagRepository) ListForProject(ctx context.Context, key project.ProjectKey) ([]versetag.VerseTag, error) {
	query := `
		SELECT verse_tag_id, verses_verse_id, tag_tag_id,
		       "Projects_Project_id", "Projects_User_id",
		       start_word_index, end_word_index, created_at
		FROM versetags
		WHERE "Projects_Project_id" = $1 AND "Projects_User_id" = $2
		ORDER BY verses_verse_id, verse_tag_id
	`

	rows, err := r.pool.Query(ctx, query, key.ProjectID, key.OwnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]versetag.VerseTag, 0)
	for rows.Next() {
		var vt versetag.VerseTag
		err := rows.Scan(
			&vt.Key.VerseTagID,
			&vt.Key.VerseID,
			&vt.Key.TagID,
			&vt.Project.ProjectID,
			&vt.Project.OwnerID,
			&vt.StartWordIndex,
			&vt.EndWordIndex,
			&vt.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tags = append(tags, vt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

// referenceError narrows an FK violation to the side of the chain that broke.
func referenceError(err error) error {
	name := strings.ToLower(utils.ForeignKeyConstraint(err))
	if strings.Contains(name, "project") {
		return project.ErrProjectNotFound
	}
	return versetag.ErrInvalidReference
}
