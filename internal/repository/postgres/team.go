package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DickensJuma/asha-pm/internal/entities"
)

const (
	insertTeamQuery = `INSERT INTO teams (id, name, description)
VALUES ($1, $2, $3)
RETURNING created_at, updated_at`

	selectTeamQuery = `SELECT id, name, description, created_at, updated_at
FROM teams
WHERE id = $1`

	listTeamsQuery = `SELECT id, name, description, created_at, updated_at
FROM teams
ORDER BY created_at, id`

	updateTeamQuery = `UPDATE teams
SET name = $2, description = $3, updated_at = now()
WHERE id = $1
RETURNING id, name, description, created_at, updated_at`

	deleteTeamQuery = `DELETE FROM teams
WHERE id = $1
RETURNING id, name, description, created_at, updated_at`

	teamMembersQuery = `SELECT user_id FROM team_users WHERE team_id = $1 ORDER BY user_id`
	teamTasksQuery   = `SELECT task_id FROM team_tasks WHERE team_id = $1 ORDER BY task_id`

	insertTeamUserQuery = `INSERT INTO team_users (team_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	insertTeamTaskQuery = `INSERT INTO team_tasks (team_id, task_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	deleteTeamUsersQuery = `DELETE FROM team_users WHERE team_id = $1`
	deleteTeamTasksQuery = `DELETE FROM team_tasks WHERE team_id = $1`
)

// CreateTeam inserts a team and its membership rows.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	team.ID = uuid.NewString()
	err := p.db.QueryRow(ctx, insertTeamQuery, team.ID, team.Name, team.Description).
		Scan(&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		p.log.Errorw("failed to create team", "error", err, "name", team.Name)
		return nil, fmt.Errorf("create team: %w", err)
	}

	if err := p.replaceTeamAssociations(ctx, team.ID, team.Members, team.Tasks); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team_id", team.ID, "members", len(team.Members))
	return &team, nil
}

// GetTeam returns a team with its member and task id lists.
func (p *Postgres) GetTeam(ctx context.Context, id string) (*entities.Team, error) {
	team, err := p.scanTeam(p.db.QueryRow(ctx, selectTeamQuery, id))
	if err != nil {
		return nil, err
	}
	if err := p.loadTeamAssociations(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// ListTeams returns all teams ordered by creation time, associations included.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		if err := p.loadTeamAssociations(ctx, &teams[i]); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

// UpdateTeam overwrites team columns and replaces its association rows.
func (p *Postgres) UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	res, err := p.scanTeam(p.db.QueryRow(ctx, updateTeamQuery, team.ID, team.Name, team.Description))
	if err != nil {
		return nil, err
	}

	if err := p.clearTeamAssociations(ctx, team.ID); err != nil {
		return nil, err
	}
	if err := p.replaceTeamAssociations(ctx, team.ID, team.Members, team.Tasks); err != nil {
		return nil, err
	}
	res.Members = team.Members
	res.Tasks = team.Tasks

	p.log.Infow("team updated", "team_id", team.ID)
	return res, nil
}

// DeleteTeam removes a team and only its association rows; members and tasks
// themselves are untouched.
func (p *Postgres) DeleteTeam(ctx context.Context, id string) (*entities.Team, error) {
	team, err := p.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.clearTeamAssociations(ctx, id); err != nil {
		return nil, err
	}
	if _, err := p.scanTeam(p.db.QueryRow(ctx, deleteTeamQuery, id)); err != nil {
		return nil, err
	}

	p.log.Infow("team deleted", "team_id", id)
	return team, nil
}

func (p *Postgres) replaceTeamAssociations(ctx context.Context, teamID string, members, tasks []string) error {
	for _, userID := range members {
		if _, err := p.db.Exec(ctx, insertTeamUserQuery, teamID, userID); err != nil {
			return fmt.Errorf("add team member: %w", err)
		}
	}
	for _, taskID := range tasks {
		if _, err := p.db.Exec(ctx, insertTeamTaskQuery, teamID, taskID); err != nil {
			return fmt.Errorf("add team task: %w", err)
		}
	}
	return nil
}

func (p *Postgres) clearTeamAssociations(ctx context.Context, teamID string) error {
	if _, err := p.db.Exec(ctx, deleteTeamUsersQuery, teamID); err != nil {
		return fmt.Errorf("clear team members: %w", err)
	}
	if _, err := p.db.Exec(ctx, deleteTeamTasksQuery, teamID); err != nil {
		return fmt.Errorf("clear team tasks: %w", err)
	}
	return nil
}

func (p *Postgres) loadTeamAssociations(ctx context.Context, team *entities.Team) error {
	members, err := p.collectIDs(ctx, teamMembersQuery, team.ID)
	if err != nil {
		return fmt.Errorf("team members: %w", err)
	}
	tasks, err := p.collectIDs(ctx, teamTasksQuery, team.ID)
	if err != nil {
		return fmt.Errorf("team tasks: %w", err)
	}
	team.Members = members
	team.Tasks = tasks
	return nil
}

func (p *Postgres) collectIDs(ctx context.Context, query, arg string) ([]string, error) {
	rows, err := p.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (p *Postgres) scanTeam(row pgx.Row) (*entities.Team, error) {
	var t entities.Team
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("scan team: %w", err)
	}
	return &t, nil
}
