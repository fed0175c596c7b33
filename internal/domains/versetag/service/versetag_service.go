package service

import (
	"context"

	"recitation-backend/internal/domains/project"
	"recitation-backend/internal/domains/versetag"
	"recitation-backend/pkg/logger"
)

type verseTagService struct {
	repo     versetag.Repository
	projects project.Service
}

func NewVerseTagService(repo versetag.Repository, projects project.Service) versetag.Service {
	return &verseTagService{repo: repo, projects: projects}
}

// CreateVerseTag verifies the project under the caller's own key, then
// persists the annotation. The verse_tag_id half of the key is allocated by
// the repository inside the insert transaction, scoped per verse.
func (s *verseTagService) CreateVerseTag(ctx context.Context, projectKey project.ProjectKey, req versetag.CreateVerseTagRequest) (*versetag.VerseTag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetProject(ctx, projectKey); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &versetag.VerseTag{
		Key: versetag.VerseTagKey{
			VerseID: req.VerseID,
			TagID:   req.TagID,
		},
		Project:        projectKey,
		StartWordIndex: req.StartWordIndex,
		EndWordIndex:   req.EndWordIndex,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("verse tag created", map[string]interface{}{
		"verse_tag_id": created.Key.VerseTagID,
		"verse_id":     created.Key.VerseID,
		"tag_id":       created.Key.TagID,
		"project_id":   projectKey.ProjectID,
	})

	return created, nil
}

func (s *verseTagService) ListVerseTags(ctx context.Context, projectKey project.ProjectKey) ([]versetag.VerseTag, error) {
	if _, err := s.projects.GetProject(ctx, projectKey); err != nil {
		return nil, err
	}
	return s.repo.ListForProject(ctx, projectKey)
}
