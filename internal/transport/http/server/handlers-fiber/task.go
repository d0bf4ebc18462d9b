package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/DickensJuma/asha-pm/internal/api"
	"github.com/DickensJuma/asha-pm/internal/mapper"
)

// CreateTask creates a task.
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	var body api.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	task, err := h.uc.CreateTask(c.Context(), mapper.FromCreateTaskRequest(body))
	if err != nil {
		h.log.Errorw("failed to create task", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(resultEnvelope{Result: mapper.ToAPITask(*task)})
}

// GetAllTasks returns a paginated window of all tasks.
func (h *Handler) GetAllTasks(c *fiber.Ctx) error {
	tasks, err := h.uc.ListTasks(c.Context())
	if err != nil {
		h.log.Errorw("failed to list tasks", "error", err.Error())
		return writeError(c, err)
	}
	return paginated(c, mapper.ToAPITaskList(tasks))
}

// GetTaskByID returns a single task.
func (h *Handler) GetTaskByID(c *fiber.Ctx) error {
	task, err := h.uc.Task(c.Context(), c.Params("task_id"))
	if err != nil {
		h.log.Errorw("failed to get task", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPITask(*task)})
}

// UpdateTask applies the allow-listed fields of a partial update.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	var body api.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	task, err := h.uc.UpdateTask(c.Context(), c.Params("task_id"), mapper.FromUpdateTaskRequest(body))
	if err != nil {
		h.log.Errorw("failed to update task", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPITask(*task)})
}

// DeleteTask removes a task and returns the deleted entity.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	task, err := h.uc.DeleteTask(c.Context(), c.Params("task_id"))
	if err != nil {
		h.log.Errorw("failed to delete task", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPITask(*task)})
}

// GetTaskSummary returns the seven-bucket task summary.
func (h *Handler) GetTaskSummary(c *fiber.Ctx) error {
	summary, err := h.uc.TaskSummary(c.Context())
	if err != nil {
		h.log.Errorw("failed to summarize tasks", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: summary})
}
