package versetag

import "errors"

var (
	// ErrInvalidReference means the referenced verse or tag does not exist.
	ErrInvalidReference = errors.New("referenced verse or tag does not exist")

	ErrInvalidWordRange = errors.New("start_word_index must not exceed end_word_index")
)
