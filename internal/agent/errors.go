package agent

import "errors"

// Domain-specific errors for the agent package.
var (
	ErrEmptyMessage = errors.New("message is empty")
)
