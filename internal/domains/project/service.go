package project

import "context"

type Service interface {
	// CreateProject persists a project atomically with its owner binding.
	CreateProject(ctx context.Context, ownerID int64, req CreateProjectRequest) (*Project, error)

	// ListProjectsForUser returns a finite, restartable listing of the
	// owner's projects.
	ListProjectsForUser(ctx context.Context, ownerID int64) ([]ProjectView, error)

	// GetProject resolves a project by its full composite key.
	GetProject(ctx context.Context, key ProjectKey) (*Project, error)
}
