package usecase

import (
	"context"
	"fmt"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
)

// GetTasks lists tasks matching the optional filters, sorted ascending by
// date and capped by the repository limit.
func (uc *implUseCase) GetTasks(ctx context.Context, sc model.Scope, input task.ListInput) task.ListOutput {
	opt, res := uc.parseFilters(input.Date, input.Priority, input.Status)
	if !res.Success {
		return task.ListOutput{Result: res}
	}

	store, release, err := uc.acquire(ctx)
	if err != nil {
		return task.ListOutput{Result: databaseFailure()}
	}
	defer release()

	tasks, err := store.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "GetTasks: list failed: %v", err)
		return task.ListOutput{Result: databaseFailure()}
	}

	message := fmt.Sprintf("Found %d task(s)%s.", len(tasks), filterDescription(input.Date, opt))
	if len(tasks) == 0 {
		message = fmt.Sprintf("No tasks found%s.", filterDescription(input.Date, opt))
	}

	uc.l.Infof(ctx, "GetTasks: user=%s count=%d", sc.UserID, len(tasks))

	return task.ListOutput{
		Result: task.Result{Success: true, Message: message},
		Tasks:  tasks,
		Count:  len(tasks),
	}
}
