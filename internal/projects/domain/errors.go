package domain

import "errors"

var (
	ErrNotFound       = errors.New("project not found")
	ErrNameRequired   = errors.New("project name required")
	ErrInvalidKind    = errors.New("invalid kind")
	ErrNotPersistable = errors.New("kind cannot be saved as a project")
)
