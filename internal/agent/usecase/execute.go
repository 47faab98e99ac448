package usecase

import (
	"context"
	"fmt"

	"task-manager-agent/internal/agent"
	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
)

// execute dispatches the classified operation to the task store adapter.
// Store failures are already folded into the returned envelope; only an
// unknown operation is handled here.
func (uc *implUseCase) execute(ctx context.Context, sc model.Scope, analysis agent.Analysis, logs *[]agent.StepLog) task.Outcomer {
	step := beginStep(logs, "Executing operation")
	uc.l.Infof(ctx, "agent: executing operation=%s", analysis.Operation)

	p := analysis.Parameters
	var out task.Outcomer

	switch analysis.Operation {
	case agent.OperationAddTask:
		title := p.Title
		if title == "" {
			title = "Untitled Task"
		}
		out = uc.tasks.AddTask(ctx, sc, task.AddInput{
			Title:    title,
			Date:     p.Date,
			Priority: p.Priority,
			Status:   p.Status,
		})

	case agent.OperationGetTasks:
		out = uc.tasks.GetTasks(ctx, sc, task.ListInput{
			Date:     p.DateRange,
			Priority: p.PriorityFilter,
			Status:   p.StatusFilter,
		})

	case agent.OperationUpdateTask:
		out = uc.tasks.UpdateTask(ctx, sc, task.UpdateInput{
			Identifier: p.TaskIdentifier,
			Updates:    updatesFromMap(p.Updates),
		})

	case agent.OperationDeleteTask:
		out = uc.tasks.DeleteTask(ctx, sc, p.TaskIdentifier)

	case agent.OperationMarkDone:
		out = uc.tasks.MarkDone(ctx, sc, p.TaskIdentifier)

	case agent.OperationPrioritize:
		priority := p.Priority
		if priority == "" {
			priority = string(model.PriorityMedium)
		}
		out = uc.tasks.SetPriority(ctx, sc, p.TaskIdentifier, priority)

	case agent.OperationSummarizeTasks:
		var in task.SummaryInput
		if p.FilterCriteria != nil {
			in = task.SummaryInput{
				Date:     p.FilterCriteria.DateRange,
				Priority: p.FilterCriteria.Priority,
				Status:   p.FilterCriteria.Status,
			}
		}
		out = uc.tasks.GetTaskSummary(ctx, sc, in)

	default:
		msg := fmt.Sprintf("Unknown operation: %s", analysis.Operation)
		if p.ErrorMessage != "" {
			msg = fmt.Sprintf("%s (analysis error: %s)", msg, p.ErrorMessage)
		}
		out = task.Result{
			Success:   false,
			Message:   msg,
			ErrorType: task.ErrorTypeAnalysis,
		}
	}

	res := out.Outcome()
	if res.Success {
		endStep(logs, step, agent.StepCompleted, "Operation completed successfully")
	} else {
		endStep(logs, step, agent.StepFailed, res.Message)
	}
	return out
}

// updatesFromMap converts the loosely-typed LLM update map into typed
// updates, tolerating a few synonym keys.
func updatesFromMap(m map[string]string) task.Updates {
	u := task.Updates{
		Title:    m["title"],
		Date:     m["date"],
		Priority: m["priority"],
		Status:   m["status"],
	}
	if u.Date == "" {
		u.Date = m["due_date"]
	}
	return u
}
