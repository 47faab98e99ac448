package task

import (
	"context"

	"task-manager-agent/internal/model"
)

// UseCase defines the business logic interface for the task domain.
//
// Every operation returns a result envelope instead of an error: store or
// matcher failures are folded into the envelope (success=false plus an
// error type tag) so callers can always render a reply to the user.
type UseCase interface {
	// AddTask creates a task with defaults applied and returns the refreshed list.
	AddTask(ctx context.Context, sc model.Scope, input AddInput) AddOutput

	// GetTasks lists tasks matching the optional date/priority/status filters.
	GetTasks(ctx context.Context, sc model.Scope, input ListInput) ListOutput

	// UpdateTask resolves the identifier against stored titles and applies updates.
	UpdateTask(ctx context.Context, sc model.Scope, input UpdateInput) UpdateOutput

	// DeleteTask resolves the identifier and removes the task.
	DeleteTask(ctx context.Context, sc model.Scope, identifier string) DeleteOutput

	// MarkDone sets the matched task's status to done.
	MarkDone(ctx context.Context, sc model.Scope, identifier string) UpdateOutput

	// SetPriority validates the priority then applies it to the matched task.
	SetPriority(ctx context.Context, sc model.Scope, identifier, priority string) UpdateOutput

	// GetTaskSummary aggregates counts over the (optionally filtered) task set.
	GetTaskSummary(ctx context.Context, sc model.Scope, input SummaryInput) SummaryOutput
}
