package service

import (
	"context"

	"recitation-backend/internal/domains/project"
	"recitation-backend/pkg/logger"
)

type projectService struct {
	repo project.Repository
}

func NewProjectService(repo project.Repository) project.Service {
	return &projectService{repo: repo}
}

// CreateProject validates the submission and persists the project. The
// Project_id half of the key is allocated by the repository inside the
// insert transaction, scoped to the owner.
func (s *projectService) CreateProject(ctx context.Context, ownerID int64, req project.CreateProjectRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &project.Project{
		Key:       project.ProjectKey{OwnerID: ownerID},
		Name:      req.Name,
		VoiceID:   req.VoiceID,
		VersionID: req.VersionID,
	}

	key, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.Key = key

	logger.Info("project created", map[string]interface{}{
		"project_id": key.ProjectID,
		"user_id":    key.OwnerID,
		"name":       p.Name,
	})

	return p, nil
}

func (s *projectService) ListProjectsForUser(ctx context.Context, ownerID int64) ([]project.ProjectView, error) {
	return s.repo.ListViewsForOwner(ctx, ownerID)
}

func (s *projectService) GetProject(ctx context.Context, key project.ProjectKey) (*project.Project, error) {
	return s.repo.FindByKey(ctx, key)
}
