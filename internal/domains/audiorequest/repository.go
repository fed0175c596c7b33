package audiorequest

import (
	"context"

	"recitation-backend/internal/domains/project"
)

// Repository persists AudioRequests. Create allocates the request_id scoped
// to the parent project inside the insert's transaction.
type Repository interface {
	Create(ctx context.Context, req *AudioRequest) (*AudioRequest, error)

	FindByKey(ctx context.Context, key RequestKey) (*AudioRequest, error)

	ListForProject(ctx context.Context, key project.ProjectKey) ([]AudioRequest, error)

	// UpdateStatus applies a lifecycle transition atomically: the current
	// status is read and checked under the same transaction as the write,
	// and completed_at is stamped exactly when the status turns terminal.
	UpdateStatus(ctx context.Context, key RequestKey, next Status) (*AudioRequest, error)
}
