package handler

import (
	"net/http"

	"fleet/internal/delivery/http/response"
	"fleet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for the admin dashboard handler.
type StatsHandler struct {
	uc usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Dashboard returns the aggregate counts for the admin dashboard.
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.uc.GetDashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard stats retrieved")
}
