package dialogue

import "errors"

// Domain-specific errors for the dialogue package.
var (
	ErrEmptyUtterance = errors.New("utterance is empty")
	ErrMissingUser    = errors.New("user identity is required")
)
