package usecase

import (
	"context"
	"fmt"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
)

// GetTaskSummary aggregates counts over the optionally filtered task set.
// An empty store is a valid all-zero summary, not a failure.
func (uc *implUseCase) GetTaskSummary(ctx context.Context, sc model.Scope, input task.SummaryInput) task.SummaryOutput {
	opt, res := uc.parseFilters(input.Date, input.Priority, input.Status)
	if !res.Success {
		return task.SummaryOutput{Result: res}
	}

	store, release, err := uc.acquire(ctx)
	if err != nil {
		return task.SummaryOutput{Result: databaseFailure()}
	}
	defer release()

	agg, err := store.Summarize(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "GetTaskSummary: aggregation failed: %v", err)
		return task.SummaryOutput{Result: databaseFailure()}
	}

	summary := task.Summary{
		Total:   agg.Total,
		High:    agg.High,
		Medium:  agg.Medium,
		Low:     agg.Low,
		Pending: agg.Pending,
		Done:    agg.Done,
	}

	uc.l.Infof(ctx, "GetTaskSummary: user=%s total=%d", sc.UserID, summary.Total)

	return task.SummaryOutput{
		Result: task.Result{
			Success: true,
			Message: summaryMessage(summary),
		},
		Summary: summary,
		Tasks:   agg.Tasks,
	}
}

func summaryMessage(s task.Summary) string {
	if s.Total == 0 {
		return "You have no tasks yet."
	}
	return fmt.Sprintf(
		"You have %d task(s): %d high, %d medium, %d low priority; %d pending, %d done.",
		s.Total, s.High, s.Medium, s.Low, s.Pending, s.Done)
}
