package http

import (
	"net/http"

	"github.com/blezecon/skalebitz/internal/adapter/middleware"
	"github.com/blezecon/skalebitz/internal/usecase/stats"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct{ uc *stats.Usecase }

func NewStatsHandler(uc *stats.Usecase) *StatsHandler { return &StatsHandler{uc: uc} }

// GetOverview is the public marketplace headline: capital at work, active
// deal count, average yield, and the featured shortlist.
func (h *StatsHandler) GetOverview(c echo.Context) error {
	o, err := h.uc.ComputeOverview(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *StatsHandler) GetInvestorDashboard(c echo.Context) error {
	d, err := h.uc.ComputeDashboard(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *StatsHandler) ListInvestorDeals(c echo.Context) error {
	deals, err := h.uc.ListInvestorDeals(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"deals": deals})
}
