package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
	"task-manager-agent/pkg/gcalendar"
)

// AddTask creates a task, defaulting the date to now and the priority to
// medium, then returns the created record with the refreshed list. A
// calendar event is attempted best-effort and never blocks the operation.
func (uc *implUseCase) AddTask(ctx context.Context, sc model.Scope, input task.AddInput) task.AddOutput {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.AddOutput{Result: analysisFailure(task.ErrEmptyTitle.Error())}
	}

	priority := model.PriorityMedium
	if input.Priority != "" {
		p, ok := model.ParsePriority(input.Priority)
		if !ok {
			return task.AddOutput{Result: analysisFailure(task.ErrInvalidPriority.Error())}
		}
		priority = p
	}

	status := model.StatusPending
	if input.Status != "" {
		s, ok := model.ParseStatus(input.Status)
		if !ok {
			return task.AddOutput{Result: analysisFailure(task.ErrInvalidStatus.Error())}
		}
		status = s
	}

	date := uc.now()
	if input.Date != "" {
		date = uc.dateMath.ParseDate(input.Date, uc.now())
	}

	uc.l.Infof(ctx, "AddTask: user=%s title=%q priority=%s", sc.UserID, title, priority)

	store, release, err := uc.acquire(ctx)
	if err != nil {
		return task.AddOutput{Result: databaseFailure()}
	}
	defer release()

	created, err := store.InsertTask(ctx, model.Task{
		Title:    title,
		Date:     date,
		Priority: priority,
		Status:   status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "AddTask: insert failed for %q: %v", title, err)
		return task.AddOutput{Result: databaseFailure()}
	}

	uc.tryCreateCalendarEvent(ctx, created)

	return task.AddOutput{
		Result: task.Result{
			Success: true,
			Message: fmt.Sprintf("Task '%s' added successfully.", created.Title),
		},
		Task:  &created,
		Tasks: uc.listAll(ctx, store),
	}
}

// tryCreateCalendarEvent schedules a one-hour calendar event for the task,
// after checking the slot for existing events. Conflicts are reported as
// warnings only; failures are logged and swallowed.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil {
		return
	}

	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: t.Date,
		TimeMax: t.Date.Add(time.Hour),
	})
	if err != nil {
		uc.l.Warnf(ctx, "AddTask: calendar conflict check failed for %q (non-fatal): %v", t.Title, err)
	} else if len(existing) > 0 {
		uc.l.Warnf(ctx, "AddTask: %q overlaps %d existing calendar event(s), first %q", t.Title, len(existing), existing[0].Summary)
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:   t.Title,
		StartTime: t.Date,
		EndTime:   t.Date.Add(time.Hour),
		Timezone:  uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "AddTask: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
	}
}
