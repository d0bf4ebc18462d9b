// Package entities contains core business entities.
package entities

import "time"

// Project groups tasks. TaskIDs is the id list declared directly on the
// project, while ProjectTasks holds tasks whose foreign reference points back
// at it. The two are written independently and may diverge.
type Project struct {
	ID           string
	Name         string
	Description  string
	TaskIDs      []string
	ProjectTasks []Task
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TaskSummary counts tasks into exactly one bucket each: the five stage
// buckets are tried before the two status buckets, first match wins. Tasks
// matching none are excluded, so the bucket total may be below the task count.
type TaskSummary struct {
	Backlog    int64 `json:"backlog"`
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"inprogress"`
	Done       int64 `json:"done"`
	Archive    int64 `json:"archive"`
	Open       int64 `json:"open"`
	Closed     int64 `json:"closed"`
}
