package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/DickensJuma/asha-pm/internal/api"
	"github.com/DickensJuma/asha-pm/internal/mapper"
)

// CreateProject creates a project.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var body api.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	project, err := h.uc.CreateProject(c.Context(), mapper.FromCreateProjectRequest(body))
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(resultEnvelope{Result: mapper.ToAPIProject(*project)})
}

// GetAllProjects returns a paginated window of all projects, includes loaded.
func (h *Handler) GetAllProjects(c *fiber.Ctx) error {
	projects, err := h.uc.ListProjects(c.Context())
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err.Error())
		return writeError(c, err)
	}
	return paginated(c, mapper.ToAPIProjectList(projects))
}

// GetProjectByID returns a single project with its projectTasks include.
func (h *Handler) GetProjectByID(c *fiber.Ctx) error {
	project, err := h.uc.Project(c.Context(), c.Params("project_id"))
	if err != nil {
		h.log.Errorw("failed to get project", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPIProject(*project)})
}

// UpdateProject applies a partial update.
func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	var body api.UpdateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	project, err := h.uc.UpdateProject(c.Context(), c.Params("project_id"), mapper.FromUpdateProjectRequest(body))
	if err != nil {
		h.log.Errorw("failed to update project", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPIProject(*project)})
}

// DeleteProject removes a project and returns the deleted entity.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	project, err := h.uc.DeleteProject(c.Context(), c.Params("project_id"))
	if err != nil {
		h.log.Errorw("failed to delete project", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPIProject(*project)})
}
