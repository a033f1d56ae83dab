package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fitstack/exercise-tracker/internal/api/metrics"
	"github.com/fitstack/exercise-tracker/internal/core/domain"
	"github.com/fitstack/exercise-tracker/internal/core/ports"
)

// ExerciseHandler handles HTTP requests for exercise logging and retrieval.
type ExerciseHandler struct {
	service ports.ExerciseService
}

func NewExerciseHandler(service ports.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// Add handles POST /api/users/:_id/exercises.
//
// @Summary      Log an exercise against a user
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        _id   path      string              true  "User id"
// @Param        body  body      addExerciseRequest  true  "Exercise details"
// @Success      201   {object}  exerciseResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/{_id}/exercises [post]
func (h *ExerciseHandler) Add(c echo.Context) error {
	var req addExerciseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.Add(c.Request().Context(), ports.AddExerciseInput{
		UserID:      c.Param("_id"),
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrInvalidDate):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to save exercise"})
	}

	metrics.ExercisesCreatedTotal.WithLabelValues(dateSource(req.Date)).Inc()
	return c.JSON(http.StatusCreated, exerciseResponse{
		ID:          result.UserID,
		Username:    result.Username,
		Description: result.Description,
		Duration:    result.Duration,
		Date:        domain.FormatDate(result.Date),
	})
}

// Logs handles GET /api/users/:_id/logs.
//
// @Summary      Retrieve a user's exercise log
// @Tags         exercises
// @Produce      json
// @Param        _id    path      string  true   "User id"
// @Param        from   query     string  false  "Inclusive lower date bound (YYYY-MM-DD)"
// @Param        to     query     string  false  "Inclusive upper date bound (YYYY-MM-DD)"
// @Param        limit  query     int     false  "Max entries returned (default 500)"
// @Success      200    {object}  logResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /api/users/{_id}/logs [get]
func (h *ExerciseHandler) Logs(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.LogQueryDuration)
	defer timer.ObserveDuration()

	input := ports.GetLogsInput{
		UserID: c.Param("_id"),
		From:   c.QueryParam("from"),
		To:     c.QueryParam("to"),
		Limit:  c.QueryParam("limit"),
	}

	result, err := h.service.GetLogs(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidLimit):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to retrieve log"})
	}

	metrics.LogRequestsTotal.WithLabelValues(filterShape(input)).Inc()

	entries := make([]logEntryResponse, 0, len(result.Log))
	for _, e := range result.Log {
		entries = append(entries, logEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        domain.FormatDate(e.Date),
		})
	}

	return c.JSON(http.StatusOK, logResponse{
		Username: result.Username,
		Count:    result.Count,
		ID:       result.UserID,
		Log:      entries,
	})
}

func dateSource(date string) string {
	if date == "" {
		return "server"
	}
	return "client"
}

func filterShape(in ports.GetLogsInput) string {
	switch {
	case in.From != "" && in.To != "":
		return "range"
	case in.From != "":
		return "from"
	case in.To != "":
		return "to"
	}
	return "none"
}
