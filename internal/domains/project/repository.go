package project

import "context"

// Repository persists Projects. Create allocates the Project_id scoped to
// its owner inside the insert's transaction, so the composite key
// (Project_id, User_id) is assigned together, never independently.
type Repository interface {
	Create(ctx context.Context, p *Project) (ProjectKey, error)

	// FindByKey resolves a Project by its full composite key only.
	FindByKey(ctx context.Context, key ProjectKey) (*Project, error)

	// ListViewsForOwner returns the owner's projects resolved against their
	// QuranVersion and Voice reference data; unresolved references degrade
	// to placeholders rather than failing the listing.
	ListViewsForOwner(ctx context.Context, ownerID int64) ([]ProjectView, error)
}
