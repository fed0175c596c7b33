package tag

import "context"

type Repository interface {
	Create(ctx context.Context, t *Tag) (int64, error)
	FindByID(ctx context.Context, id int64) (*Tag, error)
	List(ctx context.Context) ([]Tag, error)
}
