package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrInvalidPriority = errors.New("priority must be one of: high, medium, low")
	ErrInvalidStatus   = errors.New("status must be one of: pending, done")
	ErrTaskNotFound    = errors.New("no matching task found")
	ErrEmptyUpdates    = errors.New("no updates provided")
)
