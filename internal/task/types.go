package task

import "task-manager-agent/internal/model"

// Error type tags attached to failed results so the response layer can
// distinguish "we could not understand" from "the store broke".
const (
	ErrorTypeAnalysis = "analysis_failure"
	ErrorTypeDatabase = "database_failure"
)

// Result is the envelope shared by every store operation output.
type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorType string `json:"error_type,omitempty"`
}

// Outcome returns the envelope itself. Outputs embed Result, so any output
// satisfies Outcomer without knowing its concrete type.
func (r Result) Outcome() Result { return r }

// Outcomer is implemented by all operation outputs.
type Outcomer interface {
	Outcome() Result
}

// AddInput is the input for task creation. Date is a free-form phrase
// ("tomorrow", "2024-05-01"); empty fields get defaults.
type AddInput struct {
	Title    string
	Date     string
	Priority string
	Status   string
}

// AddOutput is the result of AddTask.
type AddOutput struct {
	Result
	Task  *model.Task  `json:"task,omitempty"`
	Tasks []model.Task `json:"tasks"`
}

// ListInput holds the optional conjunctive filters for GetTasks.
type ListInput struct {
	Date     string
	Priority string
	Status   string
}

// ListOutput is the result of GetTasks.
type ListOutput struct {
	Result
	Tasks []model.Task `json:"tasks"`
	Count int          `json:"count"`
}

// Updates holds the fields to change on a matched task.
// Empty fields are left untouched.
type Updates struct {
	Title    string `json:"title,omitempty"`
	Date     string `json:"date,omitempty"`
	Priority string `json:"priority,omitempty"`
	Status   string `json:"status,omitempty"`
}

// IsEmpty reports whether no field is set.
func (u Updates) IsEmpty() bool {
	return u.Title == "" && u.Date == "" && u.Priority == "" && u.Status == ""
}

// UpdateInput is the input for UpdateTask.
type UpdateInput struct {
	Identifier string
	Updates    Updates
}

// UpdateOutput is the result of UpdateTask, MarkDone and SetPriority.
type UpdateOutput struct {
	Result
	Task    *model.Task  `json:"task,omitempty"`
	Updates Updates      `json:"updates,omitempty"`
	Tasks   []model.Task `json:"tasks"`
}

// DeleteOutput is the result of DeleteTask.
type DeleteOutput struct {
	Result
	Task  *model.Task  `json:"task,omitempty"`
	Tasks []model.Task `json:"tasks"`
}

// SummaryInput holds the optional filters for GetTaskSummary.
type SummaryInput struct {
	Date     string
	Priority string
	Status   string
}

// Summary aggregates counts over a task set.
type Summary struct {
	Total   int `json:"total"`
	High    int `json:"high"`
	Medium  int `json:"medium"`
	Low     int `json:"low"`
	Pending int `json:"pending"`
	Done    int `json:"done"`
}

// SummaryOutput is the result of GetTaskSummary.
type SummaryOutput struct {
	Result
	Summary Summary      `json:"summary"`
	Tasks   []model.Task `json:"tasks"`
}
