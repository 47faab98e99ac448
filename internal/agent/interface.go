package agent

import (
	"context"

	"task-manager-agent/internal/model"
)

// UseCase drives one user message through the analyze, execute, respond
// pipeline.
type UseCase interface {
	// ProcessMessage classifies the message, runs the matching task
	// operation and renders a natural-language reply. Stage failures
	// degrade inside the pipeline; the returned error only covers
	// invalid input.
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
