package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recitation-backend/internal/domains/audiorequest"
	"recitation-backend/internal/domains/project"
	"recitation-backend/internal/shared/utils"
	pkgdb "recitation-backend/pkg/database"
)

type postgresAudioRequestRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) audiorequest.Repository {
	return &postgresAudioRequestRepository{pool: pool}
}

const requestColumns = `
	request_id, "Projects_id", "Projects_user_User_id",
	status, audio_file_path, requested_at, completed_at,
	start_verse, end_verse, include_tags
`

// Create inserts the request with a request_id allocated per project inside
// the transaction, so the (request_id, Projects_id, Projects_user_User_id)
// triple is assigned as one unit.
func (r *postgresAudioRequestRepository) Create(ctx context.Context, req *audiorequest.AudioRequest) (*audiorequest.AudioRequest, error) {
	return pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*audiorequest.AudioRequest, error) {
		query := `
			INSERT INTO audiorequests
				(request_id, "Projects_id", "Projects_user_User_id",
				 status, audio_file_path, start_verse, end_verse, include_tags)
			SELECT COALESCE(MAX(request_id), 0) + 1, $1, $2, $3, $4, $5, $6, $7
			FROM audiorequests
			WHERE "Projects_id" = $1 AND "Projects_user_User_id" = $2
			RETURNING request_id, requested_at
		`

		created := *req
		err := tx.QueryRow(ctx, query,
			req.Key.ProjectID,
			req.Key.OwnerID,
			string(req.Status),
			req.AudioFilePath,
			req.StartVerse,
			req.EndVerse,
			req.IncludeTags,
		).Scan(&created.Key.RequestID, &created.RequestedAt)
		if err != nil {
			if utils.IsForeignKeyViolation(err) {
				return nil, project.ErrProjectNotFound
			}
			return nil, err
		}

		return &created, nil
	})
}

func (r *postgresAudioRequestRepository) FindByKey(ctx context.Context, key audiorequest.RequestKey) (*audiorequest.AudioRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM audiorequests
		WHERE request_id = $1 AND "Projects_id" = $2 AND "Projects_user_User_id" = $3
	`

	row := r.pool.QueryRow(ctx, query, key.RequestID, key.ProjectID, key.OwnerID)
	req, err := scanRequest(row)
	if err != nil {
		if utils.IsNoRows(err) {
			return nil, audiorequest.ErrRequestNotFound
		}
		return nil, err
	}

	return req, nil
}

func (r *postgresAudioRequestRepository) ListForProject(ctx context.Context, key project.ProjectKey) ([]audiorequest.AudioRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM audiorequests
		WHERE "Projects_id" = $1 AND "Projects_user_User_id" = $2
		ORDER BY request_id
	`

	rows, err := r.pool.Query(ctx, query, key.ProjectID, key.OwnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]audiorequest.AudioRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus locks the row, checks the lifecycle step against the current
// status, and stamps completed_at when the new status is terminal.
func (r *postgresAudioRequestRepository) UpdateStatus(ctx context.Context, key audiorequest.RequestKey, next audiorequest.Status) (*audiorequest.AudioRequest, error) {
	return pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*audiorequest.AudioRequest, error) {
		var current audiorequest.Status
		err := tx.QueryRow(ctx, `
			SELECT status FROM audiorequests
			WHERE request_id = $1 AND "Projects_id" = $2 AND "Projects_user_User_id" = $3
			FOR UPDATE
		`, key.RequestID, key.ProjectID, key.OwnerID).Scan(&current)
		if err != nil {
			if utils.IsNoRows(err) {
				return nil, audiorequest.ErrRequestNotFound
			}
			return nil, err
		}

		if !current.CanTransitionTo(next) {
			return nil, audiorequest.ErrInvalidTransition
		}

		query := `
			UPDATE audiorequests
			SET status = $4,
			    completed_at = CASE WHEN $5 THEN NOW() ELSE completed_at END
			WHERE request_id = $1 AND "Projects_id" = $2 AND "Projects_user_User_id" = $3
			RETURNING ` + requestColumns

		row := tx.QueryRow(ctx, query,
			key.RequestID, key.ProjectID, key.OwnerID,
			string(next), next.IsTerminal(),
		)
		return scanRequest(row)
	})
}

func scanRequest(row pgx.Row) (*audiorequest.AudioRequest, error) {
	var req audiorequest.AudioRequest
	err := row.Scan(
		&req.Key.RequestID,
		&req.Key.ProjectID,
		&req.Key.OwnerID,
		&req.Status,
		&req.AudioFilePath,
		&req.RequestedAt,
		&req.CompletedAt,
		&req.StartVerse,
		&req.EndVerse,
		&req.IncludeTags,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
