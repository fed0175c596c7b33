package audiorequest

import (
	"context"

	"recitation-backend/internal/domains/project"
)

type Service interface {
	// CreateRequest registers a new pending request under the project. The
	// project key must already carry the caller's identity as owner, so a
	// foreign project id resolves to not-found, never to another user's data.
	CreateRequest(ctx context.Context, projectKey project.ProjectKey, req CreateAudioRequestRequest) (*AudioRequest, error)

	GetRequest(ctx context.Context, key RequestKey) (*AudioRequest, error)

	ListRequests(ctx context.Context, projectKey project.ProjectKey) ([]AudioRequest, error)

	UpdateStatus(ctx context.Context, key RequestKey, req UpdateStatusRequest) (*AudioRequest, error)
}
