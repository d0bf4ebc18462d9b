// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/DickensJuma/asha-pm/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user persistence operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) (*entities.User, error)
	MissingUsers(ctx context.Context, ids []string) ([]string, error)
}

// TeamInterface exposes team persistence operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, id string) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) (*entities.Team, error)
}

// ProjectInterface exposes project persistence operations. Reads load the
// tasks referencing the project via foreign key into ProjectTasks.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	GetProject(ctx context.Context, id string) (*entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	UpdateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) (*entities.Project, error)
}

// TaskInterface exposes task persistence operations.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	ListTasks(ctx context.Context) ([]entities.Task, error)
	UpdateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) (*entities.Task, error)
	MissingTasks(ctx context.Context, ids []string) ([]string, error)
}
