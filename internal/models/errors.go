package models

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyContent is returned when a knowledge document is created or
	// updated without any content.
	ErrEmptyContent = errors.New("content is required")
)
