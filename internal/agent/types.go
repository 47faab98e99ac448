package agent

import "task-manager-agent/internal/task"

// Operation is the classified intent of a user message.
type Operation string

const (
	OperationAddTask        Operation = "ADD_TASK"
	OperationGetTasks       Operation = "GET_TASKS"
	OperationUpdateTask     Operation = "UPDATE_TASK"
	OperationDeleteTask     Operation = "DELETE_TASK"
	OperationMarkDone       Operation = "MARK_DONE"
	OperationPrioritize     Operation = "PRIORITIZE"
	OperationSummarizeTasks Operation = "SUMMARIZE_TASKS"
	OperationUnknown        Operation = "UNKNOWN"
)

// Parameters are the operation arguments the analysis stage extracts.
// The LLM fills only the fields relevant to the classified operation.
type Parameters struct {
	Title          string            `json:"title,omitempty"`
	Date           string            `json:"date,omitempty"`
	Priority       string            `json:"priority,omitempty"`
	Status         string            `json:"status,omitempty"`
	DateRange      string            `json:"date_range,omitempty"`
	PriorityFilter string            `json:"priority_filter,omitempty"`
	StatusFilter   string            `json:"status_filter,omitempty"`
	TaskIdentifier string            `json:"task_identifier,omitempty"`
	Updates        map[string]string `json:"updates,omitempty"`
	FilterCriteria *FilterCriteria   `json:"filter_criteria,omitempty"`

	// ErrorMessage carries the classification error when analysis falls
	// back to UNKNOWN, so later stages can surface it.
	ErrorMessage string `json:"error_message,omitempty"`
}

// FilterCriteria narrows a summary request.
type FilterCriteria struct {
	DateRange string `json:"date_range,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Analysis is the outcome of the analysis stage.
type Analysis struct {
	Operation  Operation  `json:"operation"`
	Parameters Parameters `json:"parameters"`
}

// Step log statuses.
const (
	StepProcessing = "processing"
	StepCompleted  = "completed"
	StepFailed     = "failed"
)

// StepLog records one pipeline stage transition for observability.
type StepLog struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ProcessInput is one incoming user message.
type ProcessInput struct {
	Message string
}

// ProcessOutput is the rendered pipeline result. Payload holds the concrete
// operation output (task.AddOutput, task.ListOutput, ...) for clients that
// want structured data alongside the reply.
type ProcessOutput struct {
	Reply     string      `json:"reply"`
	Operation Operation   `json:"operation"`
	Result    task.Result `json:"result"`
	Payload   any         `json:"payload,omitempty"`
	Logs      []StepLog   `json:"logs,omitempty"`
}
