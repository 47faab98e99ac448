package model

import (
	"strings"
	"time"
)

// Priority is the task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority normalizes a raw priority string. Returns false when the
// input is not one of high/medium/low.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityLow:
		return PriorityLow, true
	}
	return "", false
}

// Status is the task completion status.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// ParseStatus normalizes a raw status string. "completed" is accepted as an
// alias for done. Returns false for anything else.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusPending):
		return StatusPending, true
	case string(StatusDone), "completed":
		return StatusDone, true
	}
	return "", false
}

// Task represents a stored task record.
type Task struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Date      time.Time `bson:"date" json:"date"`
	Priority  Priority  `bson:"priority" json:"priority"`
	Status    Status    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NormalizedTitle returns the title trimmed and lower-cased, the form used
// for identifier matching.
func (t Task) NormalizedTitle() string {
	return strings.ToLower(strings.TrimSpace(t.Title))
}
