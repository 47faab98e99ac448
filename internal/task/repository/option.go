package repository

import (
	"time"

	"task-manager-agent/internal/model"
	"task-manager-agent/pkg/datemath"
)

// ListTasksOptions holds the conjunctive filters for listing tasks.
// Zero values mean "no filter". Results are sorted ascending by date.
type ListTasksOptions struct {
	DateRange *datemath.DateRange
	Priority  model.Priority
	Status    model.Status
	Limit     int64 // default and hard cap: MaxListLimit
}

// MaxListLimit caps the number of records any list query returns.
const MaxListLimit = 100

// UpdateTaskOptions holds the fields to set on an existing task.
// Zero values are left untouched; UpdatedAt is always refreshed.
type UpdateTaskOptions struct {
	Title    string
	Date     *time.Time
	Priority model.Priority
	Status   model.Status
}
