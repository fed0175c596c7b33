package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"recitation-backend/internal/domains/tag"
	"recitation-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) tag.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, t *tag.Tag) (int64, error) {
	query := `
		INSERT INTO tag (name, description)
		VALUES ($1, $2)
		RETURNING tag_id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query, t.Name, t.Description).Scan(&id)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return 0, tag.ErrTagNameTaken
		}
		return 0, fmt.Errorf("create tag: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*tag.Tag, error) {
	query := `
		SELECT tag_id, name, description
		FROM tag
		WHERE tag_id = $1
	`

	var t tag.Tag
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if utils.IsNoRows(err) {
			return nil, tag.ErrTagNotFound
		}
		return nil, fmt.Errorf("find tag by id: %w", err)
	}

	return &t, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]tag.Tag, error) {
	query := `
		SELECT tag_id, name, description
		FROM tag
		ORDER BY tag_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}
