package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DickensJuma/asha-pm/internal/auth"
	"github.com/DickensJuma/asha-pm/internal/entities"
	"github.com/DickensJuma/asha-pm/internal/transport/http/middleware"
	"github.com/DickensJuma/asha-pm/internal/usecase"
)

type usecaseMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*usecaseMock)(nil)

func (m *usecaseMock) Register(ctx context.Context, user entities.User, password string) (*entities.Credentials, error) {
	args := m.Called(ctx, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Credentials), args.Error(1)
}

func (m *usecaseMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *usecaseMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *usecaseMock) User(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *usecaseMock) UpdateUser(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *usecaseMock) DeleteUser(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *usecaseMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *usecaseMock) Team(ctx context.Context, id string) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *usecaseMock) ListTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *usecaseMock) UpdateTeam(ctx context.Context, id string, upd entities.TeamUpdate) (*entities.Team, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *usecaseMock) DeleteTeam(ctx context.Context, id string) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *usecaseMock) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *usecaseMock) Project(ctx context.Context, id string) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *usecaseMock) ListProjects(ctx context.Context) ([]entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *usecaseMock) UpdateProject(ctx context.Context, id string, upd entities.ProjectUpdate) (*entities.Project, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *usecaseMock) DeleteProject(ctx context.Context, id string) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *usecaseMock) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *usecaseMock) Task(ctx context.Context, id string) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *usecaseMock) ListTasks(ctx context.Context) ([]entities.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *usecaseMock) UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *usecaseMock) DeleteTask(ctx context.Context, id string) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *usecaseMock) TaskSummary(ctx context.Context) (entities.TaskSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.TaskSummary), args.Error(1)
}

func newTestApp(uc usecase.InterfaceUsecase, creds *auth.Credentials) *fiber.App {
	log := zap.NewNop().Sugar()
	app := fiber.New()
	NewHandler(log, uc).Register(app, middleware.Auth(creds, log))
	return app
}

func testCreds() *auth.Credentials {
	return auth.New("test-secret", time.Hour)
}

func jsonRequest(method, target string, payload any) *http.Request {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(payload)
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func TestRegisterRouteIsPublic(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc, testCreds())

	uc.On("Register", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Email == "a@x.com"
	}), "pw1").Return(&entities.Credentials{
		User:  entities.User{ID: "u1", Email: "a@x.com", Role: entities.RoleUser},
		Token: "tok",
	}, nil)

	req := jsonRequest(http.MethodPost, "/api/v1/users/register", map[string]string{
		"email":    "a@x.com",
		"password": "pw1",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Result struct {
			User struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
			Token string `json:"token"`
		} `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "u1", body.Result.User.ID)
	require.Equal(t, "tok", body.Result.Token)
}

func TestRegisterRouteNeverEchoesPassword(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc, testCreds())

	uc.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(&entities.Credentials{
		User: entities.User{ID: "u1", Email: "a@x.com", PasswordHash: "$2a$10$hash"},
	}, nil)

	req := jsonRequest(http.MethodPost, "/api/v1/users/register", map[string]string{
		"email":    "a@x.com",
		"password": "super-secret",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw bytes.Buffer
	_, err = raw.ReadFrom(resp.Body)
	require.NoError(t, err)
	require.NotContains(t, raw.String(), "super-secret")
	require.NotContains(t, raw.String(), "$2a$10$hash")
}

func TestLoginFailureStatus(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc, testCreds())

	uc.On("Login", mock.Anything, "a@x.com", "wrong").Return("", entities.ErrAuthentication)

	req := jsonRequest(http.MethodPost, "/api/v1/users/login", map[string]string{
		"email":    "a@x.com",
		"password": "wrong",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc, testCreds())

	targets := []string{
		"/api/v1/users/",
		"/api/v1/teams/",
		"/api/v1/projects/",
		"/api/v1/tasks/",
		"/api/v1/tasks/summary/report",
	}
	for _, target := range targets {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, target)
	}
	uc.AssertNotCalled(t, "ListUsers", mock.Anything)
	uc.AssertNotCalled(t, "ListTasks", mock.Anything)
}

func TestProtectedRouteAcceptsBearerToken(t *testing.T) {
	uc := &usecaseMock{}
	creds := testCreds()
	app := newTestApp(uc, creds)

	uc.On("ListUsers", mock.Anything).Return([]entities.User{{ID: "u1", Email: "a@x.com"}}, nil)

	token, err := creds.IssueToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Results, 1)
	require.Equal(t, "u1", body.Results[0].ID)
}

func TestTaskSummaryRoute(t *testing.T) {
	uc := &usecaseMock{}
	creds := testCreds()
	app := newTestApp(uc, creds)

	uc.On("TaskSummary", mock.Anything).Return(entities.TaskSummary{Todo: 2, Open: 1}, nil)

	token, err := creds.IssueToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/summary/report", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Result struct {
			Todo   int64 `json:"todo"`
			Open   int64 `json:"open"`
			Closed int64 `json:"closed"`
		} `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, int64(2), body.Result.Todo)
	require.Equal(t, int64(1), body.Result.Open)
	require.Equal(t, int64(0), body.Result.Closed)

	// the summary route must win over the :task_id parameter route
	uc.AssertNotCalled(t, "Task", mock.Anything, mock.Anything)
}

func TestGetTaskNotFoundStatus(t *testing.T) {
	uc := &usecaseMock{}
	creds := testCreds()
	app := newTestApp(uc, creds)

	uc.On("Task", mock.Anything, "ghost").Return(nil, entities.ErrTaskNotFound)

	token, err := creds.IssueToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/ghost", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
