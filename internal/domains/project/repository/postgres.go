package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recitation-backend/internal/domains/project"
	"recitation-backend/internal/shared/utils"
	pkgdb "recitation-backend/pkg/database"
)

type postgresProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) project.Repository {
	return &postgresProjectRepository{pool: pool}
}

// Create inserts the project with a Project_id allocated per owner inside
// the transaction. The MAX+1 subselect and the insert run on the same tx,
// so two concurrent creates for one owner serialize on the composite PK.
func (r *postgresProjectRepository) Create(ctx context.Context, p *project.Project) (project.ProjectKey, error) {
	return pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (project.ProjectKey, error) {
		query := `
			INSERT INTO "Projects" ("Project_id", "User_id", name, voice_id, "quranversions_Version_id")
			SELECT COALESCE(MAX("Project_id"), 0) + 1, $1, $2, $3, $4
			FROM "Projects"
			WHERE "User_id" = $1
			RETURNING "Project_id"
		`

		var projectID int64
		err := tx.QueryRow(ctx, query, p.Key.OwnerID, p.Name, p.VoiceID, p.VersionID).Scan(&projectID)
		if err != nil {
			if utils.IsUniqueViolation(err) {
				return project.ProjectKey{}, project.ErrProjectNameTaken
			}
			if utils.IsForeignKeyViolation(err) {
				return project.ProjectKey{}, project.ErrInvalidReference
			}
			return project.ProjectKey{}, err
		}

		return project.ProjectKey{ProjectID: projectID, OwnerID: p.Key.OwnerID}, nil
	})
}

func (r *postgresProjectRepository) FindByKey(ctx context.Context, key project.ProjectKey) (*project.Project, error) {
	query := `
		SELECT "Project_id", "User_id", name, voice_id, "quranversions_Version_id"
		FROM "Projects"
		WHERE "Project_id" = $1 AND "User_id" = $2
	`

	var p project.Project
	err := r.pool.QueryRow(ctx, query, key.ProjectID, key.OwnerID).Scan(
		&p.Key.ProjectID,
		&p.Key.OwnerID,
		&p.Name,
		&p.VoiceID,
		&p.VersionID,
	)
	if err != nil {
		if utils.IsNoRows(err) {
			return nil, project.ErrProjectNotFound
		}
		return nil, err
	}

	return &p, nil
}

// ListViewsForOwner joins reference data with LEFT JOINs so a project whose
// voice or version row went missing still lists, with placeholders.
func (r *postgresProjectRepository) ListViewsForOwner(ctx context.Context, ownerID int64) ([]project.ProjectView, error) {
	query := `
		SELECT p."Project_id", p."User_id", p.name,
		       qv.name, qv.language, v.name
		FROM "Projects" p
		LEFT JOIN quranversions qv ON qv."Version_id" = p."quranversions_Version_id"
		LEFT JOIN voices v ON v.voice_id = p.voice_id
		WHERE p."User_id" = $1
		ORDER BY p."Project_id"
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]project.ProjectView, 0)
	for rows.Next() {
		var (
			view                             project.ProjectView
			versionName, language, voiceName sql.NullString
		)
		err := rows.Scan(
			&view.Key.ProjectID,
			&view.Key.OwnerID,
			&view.ProjectName,
			&versionName,
			&language,
			&voiceName,
		)
		if err != nil {
			return nil, err
		}

		view.QuranVersion = toRef(versionName)
		view.Language = toRef(language)
		view.Voice = toRef(voiceName)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func toRef(s sql.NullString) project.Ref {
	if !s.Valid {
		return project.UnresolvedRef()
	}
	return project.ResolvedRef(s.String)
}
