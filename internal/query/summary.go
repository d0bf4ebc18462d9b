package query

import "github.com/DickensJuma/asha-pm/internal/entities"

// Summarize buckets tasks by stage first, then by status, first match wins.
// A task counts into at most one bucket; tasks matching neither a known stage
// nor an open/closed status are left out entirely.
func Summarize(tasks []entities.Task) entities.TaskSummary {
	var s entities.TaskSummary
	for _, t := range tasks {
		switch {
		case t.Stage != nil && *t.Stage == entities.StageBacklog:
			s.Backlog++
		case t.Stage != nil && *t.Stage == entities.StageTodo:
			s.Todo++
		case t.Stage != nil && *t.Stage == entities.StageInProgress:
			s.InProgress++
		case t.Stage != nil && *t.Stage == entities.StageDone:
			s.Done++
		case t.Stage != nil && *t.Stage == entities.StageArchive:
			s.Archive++
		case t.Status == entities.StatusOpen:
			s.Open++
		case t.Status == entities.StatusClosed:
			s.Closed++
		}
	}
	return s
}
