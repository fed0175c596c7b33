package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"recitation-backend/internal/domains/voice"
	"recitation-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) voice.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, v *voice.Voice) (int64, error) {
	query := `
		INSERT INTO voices (name, description, file_path, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING voice_id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query, v.Name, v.Description, v.FilePath, v.CreatedAt).Scan(&id)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return 0, voice.ErrVoiceNameTaken
		}
		return 0, fmt.Errorf("create voice: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*voice.Voice, error) {
	query := `
		SELECT voice_id, name, description, file_path, created_at
		FROM voices
		WHERE voice_id = $1
	`

	var v voice.Voice
	err := r.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Description, &v.FilePath, &v.CreatedAt)
	if err != nil {
		if utils.IsNoRows(err) {
			return nil, voice.ErrVoiceNotFound
		}
		return nil, fmt.Errorf("find voice by id: %w", err)
	}

	return &v, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]voice.Voice, error) {
	query := `
		SELECT voice_id, name, description, file_path, created_at
		FROM voices
		ORDER BY voice_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	defer rows.Close()

	var voices []voice.Voice
	for rows.Next() {
		var v voice.Voice
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.FilePath, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan voice: %w", err)
		}
		voices = append(voices, v)
	}

	return voices, rows.Err()
}
