// Package domain contains application Usecases orchestrating domain logic by task.
package domain

import (
	"context"
	"fmt"

	"github.com/DickensJuma/asha-pm/internal/entities"
	"github.com/DickensJuma/asha-pm/internal/query"
)

// CreateTask creates a task. All referenced user ids and the optional project
// reference must exist at write time.
func (u *Usecase) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if task.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if !validStatus(task.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, task.Status)
	}
	if task.Stage != nil && !validStage(*task.Stage) {
		return nil, fmt.Errorf("%w: unknown stage %q", entities.ErrInvalidArgument, *task.Stage)
	}
	if !validPriority(task.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, task.Priority)
	}
	if err := u.checkTaskUserRefs(ctx, task); err != nil {
		return nil, err
	}
	if task.ProjectID != nil {
		if _, err := u.repo.GetProject(ctx, *task.ProjectID); err != nil {
			return nil, err
		}
	}

	res, err := u.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}
	u.log.Infow("task create", "task_id", res.ID)
	return res, nil
}

// Task returns a task by id. Associations are not eagerly loaded.
func (u *Usecase) Task(ctx context.Context, id string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTask(ctx, id)
}

// ListTasks returns the full task sequence.
func (u *Usecase) ListTasks(ctx context.Context) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTasks(ctx)
}

// UpdateTask applies the allow-listed fields of a partial update to an
// existing task. Stage is outside the update path.
func (u *Usecase) UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}

	existing, err := u.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.Status != nil {
		if !validStatus(*upd.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *upd.Status)
		}
		existing.Status = *upd.Status
	}
	if upd.Priority != nil {
		if !validPriority(*upd.Priority) {
			return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, *upd.Priority)
		}
		existing.Priority = *upd.Priority
	}
	if upd.Owners != nil {
		existing.Owners = *upd.Owners
	}
	if upd.Accountable != nil {
		existing.Accountable = *upd.Accountable
	}
	if upd.Subscribers != nil {
		existing.Subscribers = *upd.Subscribers
	}
	if existing.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if err := u.checkTaskUserRefs(ctx, *existing); err != nil {
		return nil, err
	}

	return u.repo.UpdateTask(ctx, *existing)
}

// DeleteTask removes a task and returns the deleted entity. Project task
// lists and team associations keep any reference to it.
func (u *Usecase) DeleteTask(ctx context.Context, id string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTask(ctx, id)
}

// TaskSummary buckets the full task sequence into the seven summary counters.
func (u *Usecase) TaskSummary(ctx context.Context) (entities.TaskSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return entities.TaskSummary{}, err
	}
	return query.Summarize(tasks), nil
}

func (u *Usecase) checkTaskUserRefs(ctx context.Context, task entities.Task) error {
	refs := make([]string, 0, len(task.Owners)+len(task.Accountable)+len(task.Subscribers))
	refs = append(refs, task.Owners...)
	refs = append(refs, task.Accountable...)
	refs = append(refs, task.Subscribers...)
	if len(refs) == 0 {
		return nil
	}

	missing, err := u.repo.MissingUsers(ctx, refs)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: task references unknown users %v", entities.ErrInvalidArgument, missing)
	}
	return nil
}
