package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"task-manager-agent/internal/agent"
	"task-manager-agent/internal/model"
)

// ProcessMessage runs the three-stage pipeline: analyze the message into an
// operation, execute it against the task store, and render a reply. Each
// stage degrades on failure so a reply is always produced.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input agent.ProcessInput) (agent.ProcessOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return agent.ProcessOutput{}, agent.ErrEmptyMessage
	}

	var logs []agent.StepLog

	analysis := uc.analyze(ctx, input.Message, &logs)
	outcome := uc.execute(ctx, sc, analysis, &logs)
	reply := uc.respond(ctx, analysis.Operation, outcome, &logs)

	return agent.ProcessOutput{
		Reply:     reply,
		Operation: analysis.Operation,
		Result:    outcome.Outcome(),
		Payload:   outcome,
		Logs:      logs,
	}, nil
}

// beginStep appends a processing log entry and returns its index.
func beginStep(logs *[]agent.StepLog, message string) int {
	*logs = append(*logs, agent.StepLog{
		ID:      uuid.New().String(),
		Message: message,
		Status:  agent.StepProcessing,
	})
	return len(*logs) - 1
}

// endStep finalizes a log entry with its outcome.
func endStep(logs *[]agent.StepLog, idx int, status, message string) {
	(*logs)[idx].Status = status
	(*logs)[idx].Message = message
}
