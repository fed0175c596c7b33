package tag

import "context"

type Service interface {
	CreateTag(ctx context.Context, req CreateTagRequest) (*Tag, error)
	ListTags(ctx context.Context) ([]Tag, error)
}
