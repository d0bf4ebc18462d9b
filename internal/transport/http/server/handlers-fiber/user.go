package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/DickensJuma/asha-pm/internal/api"
	"github.com/DickensJuma/asha-pm/internal/mapper"
)

// RegisterUser creates a user account and returns it with a session token.
func (h *Handler) RegisterUser(c *fiber.Ctx) error {
	var body api.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	creds, err := h.uc.Register(c.Context(), mapper.FromRegisterRequest(body), body.Password)
	if err != nil {
		h.log.Errorw("failed to register user", "error", err.Error())
		return writeError(c, err)
	}

	resp := api.Credentials{User: mapper.ToAPIUser(creds.User), Token: creds.Token}
	return c.Status(http.StatusCreated).JSON(resultEnvelope{Result: resp})
}

// LoginUser verifies credentials and returns a session token.
func (h *Handler) LoginUser(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	token, err := h.uc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		h.log.Errorw("failed to login user", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Token string `json:"token"`
	}{Token: token}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: resp})
}

// GetAllUsers returns a paginated window of all users.
func (h *Handler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return paginated(c, mapper.ToAPIUserList(users))
}

// GetUserByID returns a single user.
func (h *Handler) GetUserByID(c *fiber.Ctx) error {
	usr, err := h.uc.User(c.Context(), c.Params("user_id"))
	if err != nil {
		h.log.Errorw("failed to get user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPIUser(*usr)})
}

// UpdateUser applies a partial profile update.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var body api.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	usr, err := h.uc.UpdateUser(c.Context(), c.Params("user_id"), mapper.FromUpdateUserRequest(body))
	if err != nil {
		h.log.Errorw("failed to update user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPIUser(*usr)})
}

// DeleteUser removes a user and returns the deleted entity.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	usr, err := h.uc.DeleteUser(c.Context(), c.Params("user_id"))
	if err != nil {
		h.log.Errorw("failed to delete user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(resultEnvelope{Result: mapper.ToAPIUser(*usr)})
}
