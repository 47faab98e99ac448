package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"task-manager-agent/internal/agent"
	"task-manager-agent/internal/task"
	"task-manager-agent/pkg/llmprovider"
)

const respondTemperature = 0.3

// respond renders the operation outcome as natural language. When the LLM
// is unavailable it falls back to deterministic templates built from the
// result envelope.
func (uc *implUseCase) respond(ctx context.Context, op agent.Operation, outcome task.Outcomer, logs *[]agent.StepLog) string {
	step := beginStep(logs, "Generating response...")

	var reply string
	var err error

	if summary, ok := outcome.(task.SummaryOutput); ok && summary.Success {
		reply, err = uc.summaryReply(ctx, summary)
	} else {
		reply, err = uc.standardReply(ctx, op, outcome)
	}

	if err != nil {
		uc.l.Warnf(ctx, "agent: response LLM call failed, using fallback: %v", err)
		endStep(logs, step, agent.StepFailed, fmt.Sprintf("Response generation failed, using fallback: %v", err))
		return fallbackReply(outcome)
	}

	endStep(logs, step, agent.StepCompleted, "Response generated")
	return reply
}

func (uc *implUseCase) summaryReply(ctx context.Context, out task.SummaryOutput) (string, error) {
	data, err := json.MarshalIndent(out.Summary, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("%s\n\nTask Summary Data:\n%s\n\nGenerate a helpful summary response for the user.",
		agent.SummarizerPrompt, data)

	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: respondTemperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (uc *implUseCase) standardReply(ctx context.Context, op agent.Operation, outcome task.Outcomer) (string, error) {
	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("%s\n\nOperation: %s\nResult:\n%s\n\nGenerate a natural, helpful response for the user.",
		agent.ExecutorPrompt, op, data)

	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: respondTemperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// fallbackReply builds a deterministic reply from the result envelope.
func fallbackReply(outcome task.Outcomer) string {
	if summary, ok := outcome.(task.SummaryOutput); ok && summary.Success {
		s := summary.Summary
		return fmt.Sprintf(
			"Here's your task summary: %d total, %d pending, %d done, %d high priority.",
			s.Total, s.Pending, s.Done, s.High)
	}

	res := outcome.Outcome()
	if res.Success {
		if res.Message != "" {
			return res.Message
		}
		return "Operation completed successfully!"
	}
	if res.Message != "" {
		return fmt.Sprintf("Sorry, %s", res.Message)
	}
	return "Sorry, the operation failed."
}
