// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates the open/closed axis of a task.
type TaskStatus string

const (
	// StatusOpen marks a task as open.
	StatusOpen TaskStatus = "open"
	// StatusClosed marks a task as closed.
	StatusClosed TaskStatus = "closed"
)

// TaskStage enumerates workflow positions, independent of TaskStatus.
type TaskStage string

const (
	// StageBacklog holds tasks not yet scheduled.
	StageBacklog TaskStage = "backlog"
	// StageTodo holds scheduled tasks.
	StageTodo TaskStage = "todo"
	// StageInProgress holds tasks being worked on.
	StageInProgress TaskStage = "inprogress"
	// StageDone holds finished tasks.
	StageDone TaskStage = "done"
	// StageArchive holds tasks out of the active workflow.
	StageArchive TaskStage = "archive"
)

// TaskPriority enumerates task priorities.
type TaskPriority string

const (
	// PriorityLow is the lowest priority.
	PriorityLow TaskPriority = "low"
	// PriorityMedium is the default priority.
	PriorityMedium TaskPriority = "medium"
	// PriorityHigh is the highest priority.
	PriorityHigh TaskPriority = "high"
)

// Task is a domain model of a unit of work. Owners, Accountable and
// Subscribers carry user identifiers; ProjectID, when set, references the
// owning project.
type Task struct {
	ID          string
	Name        string
	Description string
	Status      TaskStatus
	Stage       *TaskStage
	Priority    TaskPriority
	Owners      []string
	Accountable []string
	Subscribers []string
	ProjectID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
