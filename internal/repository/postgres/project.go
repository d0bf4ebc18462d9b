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
	insertProjectQuery = `INSERT INTO projects (id, name, description, tasks)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at`

	selectProjectQuery = `SELECT id, name, description, tasks, created_at, updated_at
FROM projects
WHERE id = $1`

	listProjectsQuery = `SELECT id, name, description, tasks, created_at, updated_at
FROM projects
ORDER BY created_at, id`

	updateProjectQuery = `UPDATE projects
SET name = $2, description = $3, tasks = $4, updated_at = now()
WHERE id = $1
RETURNING id, name, description, tasks, created_at, updated_at`

	deleteProjectQuery = `DELETE FROM projects
WHERE id = $1
RETURNING id, name, description, tasks, created_at, updated_at`

	projectTasksQuery = `SELECT id, name, description, status, stage, priority, owners, accountable, subscribers, project_id, created_at, updated_at
FROM tasks
WHERE project_id = $1
ORDER BY created_at, id`
)

// CreateProject inserts a project. The tasks column stores the id list as
// declared on the payload, independent of any task's project_id reference.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	project.ID = uuid.NewString()
	if project.TaskIDs == nil {
		project.TaskIDs = []string{}
	}
	err := p.db.QueryRow(ctx, insertProjectQuery,
		project.ID, project.Name, project.Description, project.TaskIDs,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		p.log.Errorw("failed to create project", "error", err, "name", project.Name)
		return nil, fmt.Errorf("create project: %w", err)
	}
	project.ProjectTasks = []entities.Task{}

	p.log.Infow("project created", "project_id", project.ID)
	return &project, nil
}

// GetProject returns a project with its foreign-key task include.
func (p *Postgres) GetProject(ctx context.Context, id string) (*entities.Project, error) {
	project, err := p.scanProject(p.db.QueryRow(ctx, selectProjectQuery, id))
	if err != nil {
		return nil, err
	}
	if err := p.loadProjectTasks(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ListProjects returns all projects ordered by creation time, each with its
// foreign-key task include.
func (p *Postgres) ListProjects(ctx context.Context) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.TaskIDs, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	for i := range projects {
		if err := p.loadProjectTasks(ctx, &projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// UpdateProject overwrites the mutable columns of an existing project.
func (p *Postgres) UpdateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	if project.TaskIDs == nil {
		project.TaskIDs = []string{}
	}
	res, err := p.scanProject(p.db.QueryRow(ctx, updateProjectQuery,
		project.ID, project.Name, project.Description, project.TaskIDs,
	))
	if err != nil {
		return nil, err
	}
	if err := p.loadProjectTasks(ctx, res); err != nil {
		return nil, err
	}

	p.log.Infow("project updated", "project_id", project.ID)
	return res, nil
}

// DeleteProject removes a project and returns the deleted row. Tasks keeping a
// project_id reference are left as they are.
func (p *Postgres) DeleteProject(ctx context.Context, id string) (*entities.Project, error) {
	res, err := p.scanProject(p.db.QueryRow(ctx, deleteProjectQuery, id))
	if err != nil {
		return nil, err
	}

	p.log.Infow("project deleted", "project_id", id)
	return res, nil
}

func (p *Postgres) loadProjectTasks(ctx context.Context, project *entities.Project) error {
	rows, err := p.db.Query(ctx, projectTasksQuery, project.ID)
	if err != nil {
		return fmt.Errorf("project tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return fmt.Errorf("project tasks: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("project tasks: %w", err)
	}
	project.ProjectTasks = tasks
	return nil
}

func (p *Postgres) scanProject(row pgx.Row) (*entities.Project, error) {
	var pr entities.Project
	err := row.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.TaskIDs, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	if pr.TaskIDs == nil {
		pr.TaskIDs = []string{}
	}
	pr.ProjectTasks = []entities.Task{}
	return &pr, nil
}
