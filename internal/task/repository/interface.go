package repository

import (
	"context"

	"task-manager-agent/internal/model"
)

// Connector opens scoped connections to the task store. Each usecase
// operation acquires its own Store and releases it before returning.
type Connector interface {
	Connect(ctx context.Context) (Store, error)
}

// Store is a live connection to the task store.
type Store interface {
	InsertTask(ctx context.Context, t model.Task) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	Summarize(ctx context.Context, opt ListTasksOptions) (SummaryResult, error)

	// Close releases the connection. Safe to call on failure paths.
	Close(ctx context.Context) error
}

// SummaryResult holds aggregated counts plus the records they cover.
type SummaryResult struct {
	Total   int
	High    int
	Medium  int
	Low     int
	Pending int
	Done    int
	Tasks   []model.Task
}
