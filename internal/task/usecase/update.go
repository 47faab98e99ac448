package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
	"task-manager-agent/internal/task/repository"
)

// UpdateTask resolves the identifier through the matcher and applies the
// given updates. When resolution is ambiguous the failure message lists
// candidate titles so the user can retry with a sharper identifier.
func (uc *implUseCase) UpdateTask(ctx context.Context, sc model.Scope, input task.UpdateInput) task.UpdateOutput {
	if strings.TrimSpace(input.Identifier) == "" {
		return task.UpdateOutput{Result: analysisFailure(task.ErrTaskNotFound.Error())}
	}
	if input.Updates.IsEmpty() {
		return task.UpdateOutput{Result: analysisFailure(task.ErrEmptyUpdates.Error())}
	}

	opt, res := uc.buildUpdateOptions(input.Updates)
	if !res.Success {
		return task.UpdateOutput{Result: res}
	}

	store, release, err := uc.acquire(ctx)
	if err != nil {
		return task.UpdateOutput{Result: databaseFailure()}
	}
	defer release()

	matched, res := uc.resolveIdentifier(ctx, store, input.Identifier)
	if !res.Success {
		return task.UpdateOutput{Result: res}
	}

	updated, err := store.UpdateTask(ctx, matched.ID, opt)
	if err != nil {
		uc.l.Errorf(ctx, "UpdateTask: update failed for %s: %v", matched.ID, err)
		return task.UpdateOutput{Result: databaseFailure()}
	}

	uc.l.Infof(ctx, "UpdateTask: user=%s task=%s updates=%+v", sc.UserID, updated.ID, input.Updates)

	return task.UpdateOutput{
		Result: task.Result{
			Success: true,
			Message: fmt.Sprintf("Task '%s' updated successfully.", updated.Title),
		},
		Task:    &updated,
		Updates: input.Updates,
		Tasks:   uc.listAll(ctx, store),
	}
}

// buildUpdateOptions validates and converts the updates into repository
// options, parsing the date phrase when present.
func (uc *implUseCase) buildUpdateOptions(u task.Updates) (repository.UpdateTaskOptions, task.Result) {
	var opt repository.UpdateTaskOptions

	opt.Title = strings.TrimSpace(u.Title)

	if u.Priority != "" {
		p, ok := model.ParsePriority(u.Priority)
		if !ok {
			return opt, analysisFailure(task.ErrInvalidPriority.Error())
		}
		opt.Priority = p
	}
	if u.Status != "" {
		s, ok := model.ParseStatus(u.Status)
		if !ok {
			return opt, analysisFailure(task.ErrInvalidStatus.Error())
		}
		opt.Status = s
	}
	if u.Date != "" {
		parsed := uc.dateMath.ParseDate(u.Date, uc.now())
		opt.Date = &parsed
	}

	return opt, task.Result{Success: true}
}
