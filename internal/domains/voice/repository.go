package voice

import "context"

type Repository interface {
	Create(ctx context.Context, v *Voice) (int64, error)
	FindByID(ctx context.Context, id int64) (*Voice, error)
	List(ctx context.Context) ([]Voice, error)
}
