package service

import (
	"context"

	"recitation-backend/internal/domains/audiorequest"
	"recitation-backend/internal/domains/project"
	"recitation-backend/pkg/logger"
)

type audioRequestService struct {
	repo     audiorequest.Repository
	projects project.Service
}

func NewAudioRequestService(repo audiorequest.Repository, projects project.Service) audiorequest.Service {
	return &audioRequestService{repo: repo, projects: projects}
}

// CreateRequest verifies the parent project under the caller's own key, then
// persists the request as pending.
func (s *audioRequestService) CreateRequest(ctx context.Context, projectKey project.ProjectKey, req audiorequest.CreateAudioRequestRequest) (*audiorequest.AudioRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetProject(ctx, projectKey); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &audiorequest.AudioRequest{
		Key: audiorequest.RequestKey{
			ProjectID: projectKey.ProjectID,
			OwnerID:   projectKey.OwnerID,
		},
		Status:        audiorequest.StatusPending,
		AudioFilePath: req.AudioFilePath,
		StartVerse:    req.StartVerse,
		EndVerse:      req.EndVerse,
		IncludeTags:   req.IncludeTags,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("audio request created", map[string]interface{}{
		"request_id": created.Key.RequestID,
		"project_id": created.Key.ProjectID,
		"user_id":    created.Key.OwnerID,
	})

	return created, nil
}

func (s *audioRequestService) GetRequest(ctx context.Context, key audiorequest.RequestKey) (*audiorequest.AudioRequest, error) {
	return s.repo.FindByKey(ctx, key)
}

func (s *audioRequestService) ListRequests(ctx context.Context, projectKey project.ProjectKey) ([]audiorequest.AudioRequest, error) {
	if _, err := s.projects.GetProject(ctx, projectKey); err != nil {
		return nil, err
	}
	return s.repo.ListForProject(ctx, projectKey)
}

func (s *audioRequestService) UpdateStatus(ctx context.Context, key audiorequest.RequestKey, req audiorequest.UpdateStatusRequest) (*audiorequest.AudioRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, key, req.Status)
	if err != nil {
		return nil, err
	}

	logger.Info("audio request status changed", map[string]interface{}{
		"request_id": key.RequestID,
		"project_id": key.ProjectID,
		"status":     string(updated.Status),
	})

	return updated, nil
}
