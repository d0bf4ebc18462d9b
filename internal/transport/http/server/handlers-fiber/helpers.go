package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/DickensJuma/asha-pm/internal/api"
	"github.com/DickensJuma/asha-pm/internal/entities"
	"github.com/DickensJuma/asha-pm/internal/query"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrTaskNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrEmailExists):
		status = http.StatusBadRequest
		code = api.CodeEmailExists
		msg = "email already registered"
	case errors.Is(err, entities.ErrAuthentication):
		status = http.StatusUnauthorized
		code = api.CodeUnauthorized
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
}

type resultEnvelope struct {
	Result any `json:"result"`
}

// paginated windows the full listed sequence per the page/perPage query
// parameters and wraps it in the results/next envelope.
func paginated[T any](c *fiber.Ctx, items []T) error {
	page := c.QueryInt("page", query.DefaultPage)
	limit := c.QueryInt("perPage", c.QueryInt("limit", query.DefaultLimit))
	return c.Status(http.StatusOK).JSON(query.Paginate(items, page, limit))
}
