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
	insertTaskQuery = `INSERT INTO tasks (id, name, description, status, stage, priority, owners, accountable, subscribers, project_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING created_at, updated_at`

	selectTaskQuery = `SELECT id, name, description, status, stage, priority, owners, accountable, subscribers, project_id, created_at, updated_at
FROM tasks
WHERE id = $1`

	listTasksQuery = `SELECT id, name, description, status, stage, priority, owners, accountable, subscribers, project_id, created_at, updated_at
FROM tasks
ORDER BY created_at, id`

	updateTaskQuery = `UPDATE tasks
SET name = $2, description = $3, status = $4, priority = $5, owners = $6, accountable = $7, subscribers = $8, updated_at = now()
WHERE id = $1
RETURNING id, name, description, status, stage, priority, owners, accountable, subscribers, project_id, created_at, updated_at`

	deleteTaskQuery = `DELETE FROM tasks
WHERE id = $1
RETURNING id, name, description, status, stage, priority, owners, accountable, subscribers, project_id, created_at, updated_at`

	missingTasksQuery = `SELECT w.id
FROM unnest($1::text[]) AS w(id)
WHERE NOT EXISTS (SELECT 1 FROM tasks t WHERE t.id = w.id)`
)

// CreateTask inserts a task with a server-generated identifier.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	task.ID = uuid.NewString()
	normalizeTaskRefs(&task)
	err := p.db.QueryRow(ctx, insertTaskQuery,
		task.ID, task.Name, task.Description, task.Status, task.Stage, task.Priority,
		task.Owners, task.Accountable, task.Subscribers, task.ProjectID,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		p.log.Errorw("failed to create task", "error", err, "name", task.Name)
		return nil, fmt.Errorf("create task: %w", err)
	}

	p.log.Infow("task created", "task_id", task.ID)
	return &task, nil
}

// GetTask returns a task by id. Project and team associations are not loaded.
func (p *Postgres) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	return p.scanTask(p.db.QueryRow(ctx, selectTaskQuery, id))
}

// ListTasks returns all tasks ordered by creation time.
func (p *Postgres) ListTasks(ctx context.Context) ([]entities.Task, error) {
	rows, err := p.db.Query(ctx, listTasksQuery)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask overwrites the allow-listed columns of an existing task. Stage
// and project_id are not touched by updates.
func (p *Postgres) UpdateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	normalizeTaskRefs(&task)
	res, err := p.scanTask(p.db.QueryRow(ctx, updateTaskQuery,
		task.ID, task.Name, task.Description, task.Status, task.Priority,
		task.Owners, task.Accountable, task.Subscribers,
	))
	if err != nil {
		return nil, err
	}

	p.log.Infow("task updated", "task_id", task.ID)
	return res, nil
}

// DeleteTask removes a task and returns the deleted row. Project task lists
// and team associations keep any references they hold.
func (p *Postgres) DeleteTask(ctx context.Context, id string) (*entities.Task, error) {
	res, err := p.scanTask(p.db.QueryRow(ctx, deleteTaskQuery, id))
	if err != nil {
		return nil, err
	}

	p.log.Infow("task deleted", "task_id", id)
	return res, nil
}

// MissingTasks returns the subset of ids with no matching task row.
func (p *Postgres) MissingTasks(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := p.db.Query(ctx, missingTasksQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("missing tasks: %w", err)
	}
	defer rows.Close()

	missing := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan missing task: %w", err)
		}
		missing = append(missing, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate missing tasks: %w", err)
	}

	return missing, nil
}

func (p *Postgres) scanTask(row pgx.Row) (*entities.Task, error) {
	t, err := scanTaskRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return t, nil
}

func scanTaskRow(row pgx.Row) (*entities.Task, error) {
	var t entities.Task
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Status, &t.Stage, &t.Priority,
		&t.Owners, &t.Accountable, &t.Subscribers, &t.ProjectID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	normalizeTaskRefs(&t)
	return &t, nil
}

// normalizeTaskRefs keeps the reference sets non-nil so text[] columns and
// JSON responses stay [] instead of null.
func normalizeTaskRefs(t *entities.Task) {
	if t.Owners == nil {
		t.Owners = []string{}
	}
	if t.Accountable == nil {
		t.Accountable = []string{}
	}
	if t.Subscribers == nil {
		t.Subscribers = []string{}
	}
}
