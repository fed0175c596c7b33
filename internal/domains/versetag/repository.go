package versetag

import (
	"context"

	"recitation-backend/internal/domains/project"
)

// Repository persists VerseTags. Create allocates the verse_tag_id scoped
// to the annotated verse inside the insert's transaction.
type Repository interface {
	Create(ctx context.Context, vt *VerseTag) (*VerseTag, error)

	ListForProject(ctx context.Context, key project.ProjectKey) ([]VerseTag, error)
}
