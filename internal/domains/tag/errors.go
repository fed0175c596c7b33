package tag

import "errors"

var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrTagNameTaken = errors.New("tag name already exists")
)
