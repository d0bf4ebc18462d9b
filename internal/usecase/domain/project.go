// Package domain contains application Usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"

	"github.com/DickensJuma/asha-pm/internal/entities"
)

// CreateProject creates a project. The tasks list on the payload is stored
// as-is; it does not set project_id on the referenced tasks.
func (u *Usecase) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if project.Name == "" {
		u.log.Errorw("failed to create project: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if err := u.checkTaskRefs(ctx, "tasks", project.TaskIDs); err != nil {
		return nil, err
	}

	return u.repo.CreateProject(ctx, project)
}

// Project returns a project by id with its projectTasks include.
func (u *Usecase) Project(ctx context.Context, id string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProject(ctx, id)
}

// ListProjects returns the full project sequence, includes loaded.
func (u *Usecase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListProjects(ctx)
}

// UpdateProject applies a partial update to an existing project.
func (u *Usecase) UpdateProject(ctx context.Context, id string, upd entities.ProjectUpdate) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}

	existing, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.TaskIDs != nil {
		if err := u.checkTaskRefs(ctx, "tasks", *upd.TaskIDs); err != nil {
			return nil, err
		}
		existing.TaskIDs = *upd.TaskIDs
	}
	if existing.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}

	return u.repo.UpdateProject(ctx, *existing)
}

// DeleteProject removes a project and returns the deleted entity. Tasks that
// reference it keep their project_id.
func (u *Usecase) DeleteProject(ctx context.Context, id string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteProject(ctx, id)
}
