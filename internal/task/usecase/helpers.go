package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
	"task-manager-agent/internal/task/repository"
)

const (
	// storeFailureMessage is what users see when the store misbehaves.
	// Details stay in the logs.
	storeFailureMessage = "Something went wrong accessing your tasks. Please try again."

	// maxDisambiguationTitles caps how many candidate titles a
	// disambiguation message lists.
	maxDisambiguationTitles = 3
)

// acquire opens a scoped store connection. The returned release func is safe
// to defer: close failures are logged, never raised.
func (uc *implUseCase) acquire(ctx context.Context) (repository.Store, func(), error) {
	store, err := uc.connector.Connect(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: store connect failed: %v", err)
		return nil, nil, err
	}
	release := func() {
		if cerr := store.Close(ctx); cerr != nil {
			uc.l.Warnf(ctx, "task usecase: store close failed: %v", cerr)
		}
	}
	return store, release, nil
}

func analysisFailure(message string) task.Result {
	return task.Result{Success: false, Message: message, ErrorType: task.ErrorTypeAnalysis}
}

func databaseFailure() task.Result {
	return task.Result{Success: false, Message: storeFailureMessage, ErrorType: task.ErrorTypeDatabase}
}

// resolveIdentifier loads the task list and resolves identifier through the
// matcher. On failure the returned Result carries the user-facing message:
// a disambiguation listing when candidates exist, "not found" otherwise.
func (uc *implUseCase) resolveIdentifier(ctx context.Context, store repository.Store, identifier string) (*model.Task, task.Result) {
	all, err := store.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		return nil, databaseFailure()
	}

	if matched := uc.matcher.FindBestMatch(ctx, identifier, all); matched != nil {
		return matched, task.Result{Success: true}
	}

	candidates := uc.matcher.FindMultipleMatches(identifier, all, 0)
	if len(candidates) > 0 {
		titles := make([]string, 0, maxDisambiguationTitles)
		for i, c := range candidates {
			if i == maxDisambiguationTitles {
				break
			}
			titles = append(titles, fmt.Sprintf("'%s'", c.Task.Title))
		}
		return nil, analysisFailure(fmt.Sprintf(
			"Multiple tasks could match '%s': %s. Please be more specific.",
			identifier, strings.Join(titles, ", ")))
	}

	return nil, analysisFailure(fmt.Sprintf("No task found matching '%s'.", identifier))
}

// listAll returns the refreshed task list, degrading to nil on failure.
func (uc *implUseCase) listAll(ctx context.Context, store repository.Store) []model.Task {
	all, err := store.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Warnf(ctx, "task usecase: task list refresh failed: %v", err)
		return nil
	}
	return all
}

// parseFilters converts free-form filter strings into repository options.
// Returns a failed Result for unrecognized priority or status values.
func (uc *implUseCase) parseFilters(date, priority, status string) (repository.ListTasksOptions, task.Result) {
	var opt repository.ListTasksOptions

	if priority != "" {
		p, ok := model.ParsePriority(priority)
		if !ok {
			return opt, analysisFailure(task.ErrInvalidPriority.Error())
		}
		opt.Priority = p
	}
	if status != "" {
		s, ok := model.ParseStatus(status)
		if !ok {
			return opt, analysisFailure(task.ErrInvalidStatus.Error())
		}
		opt.Status = s
	}
	if date != "" {
		opt.DateRange = uc.dateMath.BuildDateFilter(date, uc.now())
	}

	return opt, task.Result{Success: true}
}

// filterDescription renders the applied filters for list messages,
// e.g. " for tomorrow with priority high".
func filterDescription(date string, opt repository.ListTasksOptions) string {
	var sb strings.Builder
	if date != "" && opt.DateRange != nil {
		sb.WriteString(" for ")
		sb.WriteString(strings.ToLower(strings.TrimSpace(date)))
	}
	if opt.Priority != "" {
		sb.WriteString(" with priority ")
		sb.WriteString(string(opt.Priority))
	}
	if opt.Status != "" {
		sb.WriteString(" with status ")
		sb.WriteString(string(opt.Status))
	}
	return sb.String()
}
