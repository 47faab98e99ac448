package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
)

// DeleteTask resolves the identifier the same way as UpdateTask and removes
// the matched record. Deletion is immediate; there is no soft-delete.
func (uc *implUseCase) DeleteTask(ctx context.Context, sc model.Scope, identifier string) task.DeleteOutput {
	if strings.TrimSpace(identifier) == "" {
		return task.DeleteOutput{Result: analysisFailure(task.ErrTaskNotFound.Error())}
	}

	store, release, err := uc.acquire(ctx)
	if err != nil {
		return task.DeleteOutput{Result: databaseFailure()}
	}
	defer release()

	matched, res := uc.resolveIdentifier(ctx, store, identifier)
	if !res.Success {
		return task.DeleteOutput{Result: res}
	}

	if err := store.DeleteTask(ctx, matched.ID); err != nil {
		uc.l.Errorf(ctx, "DeleteTask: delete failed for %s: %v", matched.ID, err)
		return task.DeleteOutput{Result: databaseFailure()}
	}

	uc.l.Infof(ctx, "DeleteTask: user=%s task=%s title=%q", sc.UserID, matched.ID, matched.Title)

	return task.DeleteOutput{
		Result: task.Result{
			Success: true,
			Message: fmt.Sprintf("Task '%s' deleted successfully.", matched.Title),
		},
		Task:  matched,
		Tasks: uc.listAll(ctx, store),
	}
}
