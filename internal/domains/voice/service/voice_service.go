package service

import (
	"context"
	"time"

	"recitation-backend/internal/domains/voice"
)

type voiceService struct {
	repo voice.Repository
}

func NewVoiceService(repo voice.Repository) voice.Service {
	return &voiceService{repo: repo}
}

func (s *voiceService) CreateVoice(ctx context.Context, req voice.CreateVoiceRequest) (*voice.Voice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v := &voice.Voice{
		Name:      req.Name,
		FilePath:  req.FilePath,
		CreatedAt: time.Now(),
	}
	if req.Description != "" {
		v.Description = &req.Description
	}

	id, err := s.repo.Create(ctx, v)
	if err != nil {
		return nil, err
	}
	v.ID = id

	return v, nil
}

func (s *voiceService) ListVoices(ctx context.Context) ([]voice.Voice, error) {
	return s.repo.List(ctx)
}
