package service

import (
	"context"

	"recitation-backend/internal/domains/tag"
)

type tagService struct {
	repo tag.Repository
}

func NewTagService(repo tag.Repository) tag.Service {
	return &tagService{repo: repo}
}

func (s *tagService) CreateTag(ctx context.Context, req tag.CreateTagRequest) (*tag.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := &tag.Tag{Name: req.Name}
	if req.Description != "" {
		t.Description = &req.Description
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id

	return t, nil
}

func (s *tagService) ListTags(ctx context.Context) ([]tag.Tag, error) {
	return s.repo.List(ctx)
}
