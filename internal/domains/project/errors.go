package project

import "errors"

var (
	// ErrProjectNotFound also covers the ownership-isolation case: a
	// Project_id that exists under a different owner resolves to nothing.
	ErrProjectNotFound = errors.New("project not found")

	ErrProjectNameTaken = errors.New("project name already exists")

	// ErrInvalidReference means the referenced voice or quran version does
	// not exist; the composite FK chain rejects the insert.
	ErrInvalidReference = errors.New("referenced voice or quran version does not exist")
)
