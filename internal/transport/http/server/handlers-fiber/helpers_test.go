package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/DickensJuma/asha-pm/internal/api"
	"github.com/DickensJuma/asha-pm/internal/entities"
	"github.com/DickensJuma/asha-pm/internal/query"
)

func decodeError(t *testing.T, resp *http.Response) api.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestWriteErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   api.ErrorCode
	}{
		{"invalid argument", entities.ErrInvalidArgument, http.StatusBadRequest, api.CodeInvalidArgument},
		{"wrapped invalid argument", fmt.Errorf("%w: name is required", entities.ErrInvalidArgument), http.StatusBadRequest, api.CodeInvalidArgument},
		{"user not found", entities.ErrUserNotFound, http.StatusNotFound, api.CodeNotFound},
		{"team not found", entities.ErrTeamNotFound, http.StatusNotFound, api.CodeNotFound},
		{"project not found", entities.ErrProjectNotFound, http.StatusNotFound, api.CodeNotFound},
		{"task not found", entities.ErrTaskNotFound, http.StatusNotFound, api.CodeNotFound},
		{"email exists", entities.ErrEmailExists, http.StatusBadRequest, api.CodeEmailExists},
		{"authentication", entities.ErrAuthentication, http.StatusUnauthorized, api.CodeUnauthorized},
		{"unknown", fmt.Errorf("pool exhausted"), http.StatusInternalServerError, api.CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)

			require.Equal(t, tc.wantStatus, resp.StatusCode)
			body := decodeError(t, resp)
			require.Equal(t, tc.wantCode, body.Error.Code)
			require.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestWriteErrorNotFoundHidesEntity(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrTaskNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body := decodeError(t, resp)
	require.Equal(t, "resource not found", body.Error.Message)
}

func TestWriteErrorInternalHidesCause(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("dial tcp 10.0.0.4:5432: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body := decodeError(t, resp)
	require.Equal(t, "internal error", body.Error.Message)
	require.NotContains(t, body.Error.Message, "5432")
}

func TestInvalidBody(t *testing.T) {
	app := fiber.New()
	app.Get("/", invalidBody)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	require.Equal(t, api.CodeInvalidArgument, body.Error.Code)
}

func TestPaginatedWindowsAndEnvelope(t *testing.T) {
	items := make([]api.User, 25)
	for i := range items {
		items[i] = api.User{ID: fmt.Sprintf("u%02d", i)}
	}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return paginated(c, items)
	})

	cases := []struct {
		name      string
		target    string
		wantLen   int
		wantFirst string
		wantNext  *query.NextPage
	}{
		{"defaults", "/", 10, "u00", &query.NextPage{Page: 2, Limit: 10}},
		{"second page", "/?page=2&perPage=10", 10, "u10", &query.NextPage{Page: 3, Limit: 10}},
		{"tail page", "/?page=3&perPage=10", 5, "u20", nil},
		{"limit alias", "/?page=2&limit=10", 10, "u10", &query.NextPage{Page: 3, Limit: 10}},
		{"beyond range", "/?page=9&perPage=10", 0, "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)

			var body query.Page[api.User]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Len(t, body.Results, tc.wantLen)
			if tc.wantFirst != "" {
				require.Equal(t, tc.wantFirst, body.Results[0].ID)
			}
			require.Equal(t, tc.wantNext, body.Next)
		})
	}
}
