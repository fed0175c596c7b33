package audiorequest

import "errors"

var (
	ErrRequestNotFound = errors.New("audio request not found")

	ErrInvalidStatus = errors.New("unknown audio request status")

	// ErrInvalidTransition means the requested status change is not a legal
	// lifecycle step; terminal requests never transition again.
	ErrInvalidTransition = errors.New("illegal audio request status transition")

	ErrInvalidVerseRange = errors.New("start_verse must not exceed end_verse")
)
