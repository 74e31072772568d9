package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrInvalidToken marks a rejected API credential.
	ErrInvalidToken = errors.New("invalid API token")

	// ErrInconsistentSnapshot marks an assignment referencing a subject id
	// that is absent from the subject catalog. The two datasets are expected
	// to be mutually consistent snapshots, so this is fatal rather than
	// something to skip over.
	ErrInconsistentSnapshot = errors.New("inconsistent snapshot")
)
