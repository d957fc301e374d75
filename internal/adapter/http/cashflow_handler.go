package http

import (
	"net/http"

	"github.com/blezecon/skalebitz/internal/usecase/cashflow"

	"github.com/labstack/echo/v4"
)

type CashflowHandler struct{ uc *cashflow.Usecase }

func NewCashflowHandler(uc *cashflow.Usecase) *CashflowHandler {
	return &CashflowHandler{uc: uc}
}

// GetDealCashflows reconstructs the deal's per-cycle repayment schedule.
func (h *CashflowHandler) GetDealCashflows(c echo.Context) error {
	rows, err := h.uc.BuildSchedule(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"cashflows": rows})
}

// GetDealPerformance reports the deal's derived risk metrics.
func (h *CashflowHandler) GetDealPerformance(c echo.Context) error {
	p, err := h.uc.ComputePerformance(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
