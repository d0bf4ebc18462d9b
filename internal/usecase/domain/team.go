// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"

	"github.com/DickensJuma/asha-pm/internal/entities"
)

// CreateTeam creates a team, optionally with member and task associations.
// Every referenced id must exist at write time.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if team.Name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if err := u.checkUserRefs(ctx, "members", team.Members); err != nil {
		return nil, err
	}
	if err := u.checkTaskRefs(ctx, "tasks", team.Tasks); err != nil {
		return nil, err
	}

	return u.repo.CreateTeam(ctx, team)
}

// Team returns a team by id.
func (u *Usecase) Team(ctx context.Context, id string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, id)
}

// ListTeams returns the full team sequence.
func (u *Usecase) ListTeams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTeams(ctx)
}

// UpdateTeam applies a partial update to an existing team.
func (u *Usecase) UpdateTeam(ctx context.Context, id string, upd entities.TeamUpdate) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}

	existing, err := u.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.Members != nil {
		if err := u.checkUserRefs(ctx, "members", *upd.Members); err != nil {
			return nil, err
		}
		existing.Members = *upd.Members
	}
	if upd.Tasks != nil {
		if err := u.checkTaskRefs(ctx, "tasks", *upd.Tasks); err != nil {
			return nil, err
		}
		existing.Tasks = *upd.Tasks
	}
	if existing.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}

	return u.repo.UpdateTeam(ctx, *existing)
}

// DeleteTeam removes a team and its association rows only; members and tasks
// are never cascade-deleted.
func (u *Usecase) DeleteTeam(ctx context.Context, id string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTeam(ctx, id)
}

func (u *Usecase) checkUserRefs(ctx context.Context, field string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	missing, err := u.repo.MissingUsers(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s references unknown users %v", entities.ErrInvalidArgument, field, missing)
	}
	return nil
}

func (u *Usecase) checkTaskRefs(ctx context.Context, field string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	missing, err := u.repo.MissingTasks(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s references unknown tasks %v", entities.ErrInvalidArgument, field, missing)
	}
	return nil
}
