package versetag

import (
	"context"

	"recitation-backend/internal/domains/project"
)

type Service interface {
	// CreateVerseTag annotates a verse on behalf of the caller's project.
	CreateVerseTag(ctx context.Context, projectKey project.ProjectKey, req CreateVerseTagRequest) (*VerseTag, error)

	ListVerseTags(ctx context.Context, projectKey project.ProjectKey) ([]VerseTag, error)
}
