package voice

import "context"

type Service interface {
	CreateVoice(ctx context.Context, req CreateVoiceRequest) (*Voice, error)
	ListVoices(ctx context.Context) ([]Voice, error)
}
