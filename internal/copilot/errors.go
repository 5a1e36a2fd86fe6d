package copilot

import "errors"

// Domain-specific errors for the copilot package.
var (
	ErrEmptyQuestion = errors.New("question is empty")
)
