package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitstack/exercise-tracker/internal/api/metrics"
	"github.com/fitstack/exercise-tracker/internal/core/ports"
)

// UserHandler handles HTTP requests for user registration and listing.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Username"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Register(c.Request().Context(), req.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create user"})
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, userResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
	})
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list users"})
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse{ID: u.ID.Hex(), Username: u.Username})
	}
	return c.JSON(http.StatusOK, resp)
}
