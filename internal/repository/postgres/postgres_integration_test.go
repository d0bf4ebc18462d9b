package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DickensJuma/asha-pm/config"
	"github.com/DickensJuma/asha-pm/internal/entities"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	// users
	alice, err := repo.CreateUser(ctx, entities.User{
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$aaaaaaaaaaaaaaaaaaaaaa",
		FirstName:    "Alice",
		Role:         entities.RoleAdmin,
	})
	require.NoError(t, err)
	require.NotEmpty(t, alice.ID)
	require.False(t, alice.CreatedAt.IsZero())

	bob, err := repo.CreateUser(ctx, entities.User{
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$bbbbbbbbbbbbbbbbbbbbbb",
		FirstName:    "Bob",
		Role:         entities.RoleUser,
	})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, entities.User{
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$cccccccccccccccccccccc",
		Role:         entities.RoleUser,
	})
	require.ErrorIs(t, err, entities.ErrEmailExists)

	byEmail, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, byEmail.ID)
	require.Equal(t, alice.PasswordHash, byEmail.PasswordHash)

	_, err = repo.GetUser(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	missing, err := repo.MissingUsers(ctx, []string{alice.ID, "ghost", bob.ID})
	require.NoError(t, err)
	require.Equal(t, []string{"ghost"}, missing)

	alice.FirstName = "Alicia"
	updatedUser, err := repo.UpdateUser(ctx, *alice)
	require.NoError(t, err)
	require.Equal(t, "Alicia", updatedUser.FirstName)
	require.False(t, updatedUser.UpdatedAt.Before(updatedUser.CreatedAt))

	// tasks
	todo := entities.StageTodo
	task1, err := repo.CreateTask(ctx, entities.Task{
		Name:     "write handlers",
		Status:   entities.StatusOpen,
		Stage:    &todo,
		Priority: entities.PriorityHigh,
		Owners:   []string{alice.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, task1.Stage)
	require.Equal(t, entities.StageTodo, *task1.Stage)

	// projects: the declared tasks list and the FK-derived include are
	// written independently
	project, err := repo.CreateProject(ctx, entities.Project{
		Name:    "delivery",
		TaskIDs: []string{task1.ID},
	})
	require.NoError(t, err)
	require.Equal(t, []string{task1.ID}, project.TaskIDs)
	require.Empty(t, project.ProjectTasks)

	task2, err := repo.CreateTask(ctx, entities.Task{
		Name:        "review handlers",
		Status:      entities.StatusOpen,
		Priority:    entities.PriorityMedium,
		Accountable: []string{bob.ID},
		ProjectID:   &project.ID,
	})
	require.NoError(t, err)
	require.Nil(t, task2.Stage)
	require.NotNil(t, task2.Owners)
	require.Empty(t, task2.Owners)

	project, err = repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, []string{task1.ID}, project.TaskIDs)
	require.Len(t, project.ProjectTasks, 1)
	require.Equal(t, task2.ID, project.ProjectTasks[0].ID)

	// the task update path leaves stage untouched
	task1.Status = entities.StatusClosed
	task1, err = repo.UpdateTask(ctx, *task1)
	require.NoError(t, err)
	require.Equal(t, entities.StatusClosed, task1.Status)
	require.NotNil(t, task1.Stage)
	require.Equal(t, entities.StageTodo, *task1.Stage)

	// teams
	team, err := repo.CreateTeam(ctx, entities.Team{
		Name:    "backend",
		Members: []string{alice.ID, bob.ID},
		Tasks:   []string{task1.ID},
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{alice.ID, bob.ID}, team.Members)
	require.Equal(t, []string{task1.ID}, team.Tasks)

	team.Members = []string{bob.ID}
	team, err = repo.UpdateTeam(ctx, *team)
	require.NoError(t, err)
	require.Equal(t, []string{bob.ID}, team.Members)

	deletedTeam, err := repo.DeleteTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, team.ID, deletedTeam.ID)
	_, err = repo.GetTeam(ctx, team.ID)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	// team deletion removes only join rows
	_, err = repo.GetUser(ctx, bob.ID)
	require.NoError(t, err)
	_, err = repo.GetTask(ctx, task1.ID)
	require.NoError(t, err)

	// deleting a project leaves the task reference dangling
	_, err = repo.DeleteProject(ctx, project.ID)
	require.NoError(t, err)
	kept, err := repo.GetTask(ctx, task2.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.ProjectID)
	require.Equal(t, project.ID, *kept.ProjectID)

	deletedTask, err := repo.DeleteTask(ctx, task2.ID)
	require.NoError(t, err)
	require.Equal(t, task2.ID, deletedTask.ID)
	_, err = repo.GetTask(ctx, task2.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	_, err = repo.DeleteTask(ctx, task2.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestRepositoryListOrderIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	emails := []string{"c@example.com", "a@example.com", "b@example.com"}
	ids := make([]string, 0, len(emails))
	for _, email := range emails {
		u, err := repo.CreateUser(ctx, entities.User{
			Email:        email,
			PasswordHash: "$2a$10$aaaaaaaaaaaaaaaaaaaaaa",
			Role:         entities.RoleUser,
		})
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}

	// listings come back in insertion order regardless of payload
	for i := 0; i < 3; i++ {
		users, err := repo.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		for i, u := range users {
			require.Equal(t, ids[i], u.ID)
			require.Equal(t, emails[i], u.Email)
		}
	}
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=asha_pm_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8084, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Auth:   config.AuthConfig{JWTSecret: "integration-secret", TokenTTL: time.Hour},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "asha_pm_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=asha_pm_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
