package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"task-manager-agent/internal/agent"
	"task-manager-agent/pkg/llmprovider"
)

const analysisTemperature = 0.1

// analyze classifies the user message into an operation with parameters.
// Any failure yields the UNKNOWN operation so the pipeline keeps moving.
func (uc *implUseCase) analyze(ctx context.Context, message string, logs *[]agent.StepLog) agent.Analysis {
	step := beginStep(logs, "Analyzing your request...")

	prompt := fmt.Sprintf("%s\n\nUser message: %s", agent.AnalysisPrompt, message)

	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: analysisTemperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "agent: analysis LLM call failed: %v", err)
		endStep(logs, step, agent.StepFailed, fmt.Sprintf("Analysis failed: %v", err))
		return agent.Analysis{
			Operation:  agent.OperationUnknown,
			Parameters: agent.Parameters{ErrorMessage: err.Error()},
		}
	}

	var analysis agent.Analysis
	if err := json.Unmarshal([]byte(stripCodeFences(resp.Text)), &analysis); err != nil {
		uc.l.Warnf(ctx, "agent: analysis response is not valid JSON: %v", err)
		endStep(logs, step, agent.StepFailed, fmt.Sprintf("Analysis failed: %v", err))
		return agent.Analysis{
			Operation:  agent.OperationUnknown,
			Parameters: agent.Parameters{ErrorMessage: err.Error()},
		}
	}

	if analysis.Operation == "" {
		analysis.Operation = agent.OperationUnknown
	}

	uc.l.Infof(ctx, "agent: classified operation=%s", analysis.Operation)
	endStep(logs, step, agent.StepCompleted, "Request analyzed")
	return analysis
}

// stripCodeFences removes markdown code block markers LLMs like to wrap
// JSON answers in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
