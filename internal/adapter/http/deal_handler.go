package http

import (
	"net/http"

	"github.com/blezecon/skalebitz/internal/adapter/middleware"
	dealuc "github.com/blezecon/skalebitz/internal/usecase/deal"

	"github.com/labstack/echo/v4"
)

type DealHandler struct{ uc *dealuc.Usecase }

func NewDealHandler(uc *dealuc.Usecase) *DealHandler { return &DealHandler{uc: uc} }

type createDealReq struct {
	Name             string  `json:"business_name"`
	Sector           string  `json:"sector"`
	FacilitySize     float64 `json:"facility_size" validate:"required,gt=0,dec2"`
	TargetYield      float64 `json:"target_yield" validate:"gte=0"`
	Status           string  `json:"status"`
	Location         string  `json:"location"`
	TenorMonths      int     `json:"tenor_months" validate:"gte=0"`
	Risk             string  `json:"risk"`
	RepaymentCadence string  `json:"repayment_cadence"`
}

func (h *DealHandler) CreateDeal(c echo.Context) error {
	var req createDealReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return failedValidation(c, err)
	}
	d, err := h.uc.Create(c.Request().Context(), dealuc.CreateDealInput{
		MsmeUserID:       middleware.UserID(c),
		Name:             req.Name,
		Sector:           req.Sector,
		FacilitySize:     req.FacilitySize,
		TargetYield:      req.TargetYield,
		Status:           req.Status,
		Location:         req.Location,
		TenorMonths:      req.TenorMonths,
		Risk:             req.Risk,
		RepaymentCadence: req.RepaymentCadence,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"deal": d})
}

func (h *DealHandler) ListDeals(c echo.Context) error {
	deals, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"deals": deals})
}

func (h *DealHandler) GetDeal(c echo.Context) error {
	d, err := h.uc.Get(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"deal": d})
}

func (h *DealHandler) ListDealInvestments(c echo.Context) error {
	out, err := h.uc.Investments(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DealHandler) ListUserLogs(c echo.Context) error {
	logs, err := h.uc.Logs(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"logs": logs})
}
