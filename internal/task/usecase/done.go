package usecase

import (
	"context"
	"fmt"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
)

// MarkDone delegates to UpdateTask with status done and rewrites the
// success message to completion semantics.
func (uc *implUseCase) MarkDone(ctx context.Context, sc model.Scope, identifier string) task.UpdateOutput {
	out := uc.UpdateTask(ctx, sc, task.UpdateInput{
		Identifier: identifier,
		Updates:    task.Updates{Status: string(model.StatusDone)},
	})
	if out.Success && out.Task != nil {
		out.Message = fmt.Sprintf("Task '%s' marked as done.", out.Task.Title)
	}
	return out
}

// SetPriority validates the priority before touching the store, then
// delegates to UpdateTask.
func (uc *implUseCase) SetPriority(ctx context.Context, sc model.Scope, identifier, priority string) task.UpdateOutput {
	p, ok := model.ParsePriority(priority)
	if !ok {
		return task.UpdateOutput{Result: analysisFailure(task.ErrInvalidPriority.Error())}
	}

	out := uc.UpdateTask(ctx, sc, task.UpdateInput{
		Identifier: identifier,
		Updates:    task.Updates{Priority: string(p)},
	})
	if out.Success && out.Task != nil {
		out.Message = fmt.Sprintf("Task '%s' priority set to %s.", out.Task.Title, p)
	}
	return out
}
