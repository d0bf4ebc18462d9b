package usecase

import (
	"context"

	"github.com/DickensJuma/asha-pm/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	Register(ctx context.Context, user entities.User, password string) (*entities.Credentials, error)
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	User(ctx context.Context, id string) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, id string) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, id string, upd entities.TeamUpdate) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) (*entities.Team, error)
}

// ProjectUsecaseInterface abstracts project-related operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	Project(ctx context.Context, id string) (*entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	UpdateProject(ctx context.Context, id string, upd entities.ProjectUpdate) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) (*entities.Project, error)
}

// TaskUsecaseInterface abstracts task-related operations.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	Task(ctx context.Context, id string) (*entities.Task, error)
	ListTasks(ctx context.Context) ([]entities.Task, error)
	UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) (*entities.Task, error)
	TaskSummary(ctx context.Context) (entities.TaskSummary, error)
}
