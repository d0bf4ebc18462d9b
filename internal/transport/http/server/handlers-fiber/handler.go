// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DickensJuma/asha-pm/internal/usecase"
)

// Handler exposes the domain services over HTTP using the service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register wires all routes under /api/v1. Routes other than register, login
// and the health check require a bearer session token.
func (h *Handler) Register(app *fiber.App, requireAuth fiber.Handler) {
	v1 := app.Group("/api/v1")

	users := v1.Group("/users")
	users.Post("/register", h.RegisterUser)
	users.Post("/login", h.LoginUser)
	users.Get("/", requireAuth, h.GetAllUsers)
	users.Get("/:user_id", requireAuth, h.GetUserByID)
	users.Put("/:user_id", requireAuth, h.UpdateUser)
	users.Delete("/:user_id", requireAuth, h.DeleteUser)

	teams := v1.Group("/teams", requireAuth)
	teams.Get("/", h.GetAllTeams)
	teams.Get("/:team_id", h.GetTeamByID)
	teams.Post("/create", h.CreateTeam)
	teams.Put("/:team_id", h.UpdateTeam)
	teams.Delete("/:team_id", h.DeleteTeam)

	projects := v1.Group("/projects", requireAuth)
	projects.Get("/", h.GetAllProjects)
	projects.Get("/:project_id", h.GetProjectByID)
	projects.Post("/create", h.CreateProject)
	projects.Put("/:project_id", h.UpdateProject)
	projects.Delete("/:project_id", h.DeleteProject)

	tasks := v1.Group("/tasks", requireAuth)
	tasks.Get("/", h.GetAllTasks)
	tasks.Get("/summary/report", h.GetTaskSummary)
	tasks.Get("/:task_id", h.GetTaskByID)
	tasks.Post("/create", h.CreateTask)
	tasks.Put("/:task_id", h.UpdateTask)
	tasks.Delete("/:task_id", h.DeleteTask)
}
