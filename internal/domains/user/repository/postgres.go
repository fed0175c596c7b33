package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recitation-backend/internal/domains/user"
	"recitation-backend/internal/shared/utils"
	"recitation-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the pgx-backed user.Repository.
func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts a new account inside one transaction. Duplicate email or
// username is reported as a domain error whether it is caught by the
// pre-check or by the unique constraint (concurrent signups race there).
func (r *postgresRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var exists bool

		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM "user" WHERE email = $1)`, u.Email,
		).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("check email exists: %w", err)
		}
		if exists {
			return 0, user.ErrEmailAlreadyRegistered
		}

		err = tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM "user" WHERE "Username" = $1)`, u.Username,
		).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("check username exists: %w", err)
		}
		if exists {
			return 0, user.ErrUsernameAlreadyRegistered
		}

		query := `
			INSERT INTO "user" (first_name, "Username", email, password_hash, is_admin, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING "User_id"
		`

		var userID int64
		err = tx.QueryRow(ctx, query,
			u.FirstName,
			u.Username,
			u.Email,
			u.PasswordHash,
			u.IsAdmin,
			u.CreatedAt,
		).Scan(&userID)

		if err != nil {
			// The pre-checks lose races; the constraint is authoritative.
			switch utils.UniqueViolationColumn(err) {
			case "email":
				return 0, user.ErrEmailAlreadyRegistered
			case "username":
				return 0, user.ErrUsernameAlreadyRegistered
			}
			return 0, fmt.Errorf("create user: %w", err)
		}

		return userID, nil
	})
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT "User_id", first_name, "Username", email, password_hash, is_admin, created_at
		FROM "user"
		WHERE "User_id" = $1
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.FirstName,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.CreatedAt,
	)

	if err != nil {
		if utils.IsNoRows(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT "User_id", first_name, "Username", email, password_hash, is_admin, created_at
		FROM "user"
		WHERE email = $1
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.FirstName,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.CreatedAt,
	)

	if err != nil {
		if utils.IsNoRows(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &u, nil
}
