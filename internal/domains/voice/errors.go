package voice

import "errors"

var (
	ErrVoiceNotFound  = errors.New("voice not found")
	ErrVoiceNameTaken = errors.New("voice name already exists")
)
