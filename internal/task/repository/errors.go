package repository

import "errors"

var (
	// ErrNotFound indicates the task does not exist in the store.
	ErrNotFound = errors.New("task not found")

	// ErrConnect indicates the store connection could not be established.
	ErrConnect = errors.New("failed to connect to task store")
)
