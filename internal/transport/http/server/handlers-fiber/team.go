package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/DickensJuma/asha-pm/internal/api"
	"github.com/DickensJuma/asha-pm/internal/mapper"
)

// CreateTeam creates a team with optional member/task associations.
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	team, err := h.uc.CreateTeam(c.Context(), mapper.FromCreateTeamRequest(body))
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(resultEnvelope{Result: mapper.ToAPITeam(*team)})
}

// GetAllTeams returns a paginated window of all teams.
func (h *Handler) GetAllTeams(c *fiber.Ctx) error {
	teams, err := h.uc.ListTeams(c.Context())
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return paginated(c, mapper.ToAPITeamList(teams))
}

// GetTeamByID returns a single team.
func (h *Handler) GetTeamByID(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("team_id"))
	if err != nil {
		h.log.Errorw("failed to get team", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPITeam(*team)})
}

// UpdateTeam applies a partial update.
func (h *Handler) UpdateTeam(c *fiber.Ctx) error {
	var body api.UpdateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	team, err := h.uc.UpdateTeam(c.Context(), c.Params("team_id"), mapper.FromUpdateTeamRequest(body))
	if err != nil {
		h.log.Errorw("failed to update team", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPITeam(*team)})
}

// DeleteTeam removes a team; only its association rows go with it.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	team, err := h.uc.DeleteTeam(c.Context(), c.Params("team_id"))
	if err != nil {
		h.log.Errorw("failed to delete team", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPITeam(*team)})
}
