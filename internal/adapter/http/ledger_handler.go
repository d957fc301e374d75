package http

import (
	"net/http"

	"github.com/blezecon/skalebitz/internal/adapter/middleware"
	"github.com/blezecon/skalebitz/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type investReq struct {
	Amount   float64 `json:"amount" validate:"required,gt=0,dec2"`
	ToUserID string  `json:"to_user_id" validate:"omitempty,hex32"`
}

// Invest commits the authenticated investor's capital to a deal.
func (h *LedgerHandler) Invest(c echo.Context) error {
	var req investReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return failedValidation(c, err)
	}
	res, err := h.uc.Commit(c.Request().Context(), ledger.CommitInput{
		DealID:     c.Param("deal_id"),
		InvestorID: middleware.UserID(c),
		Amount:     req.Amount,
		ToUserID:   req.ToUserID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

type repaymentReq struct {
	FromUserID string  `json:"from_user_id" validate:"required,hex32"`
	ToUserID   string  `json:"to_user_id" validate:"required,hex32"`
	Amount     float64 `json:"amount" validate:"required,gt=0,dec2"`
	Type       string  `json:"type" validate:"omitempty,oneof=repayment refund"`
}

func (h *LedgerHandler) RecordRepayment(c echo.Context) error {
	var req repaymentReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return failedValidation(c, err)
	}
	dto, err := h.uc.RecordRepayment(c.Request().Context(), ledger.RepaymentInput{
		InvestmentID: c.Param("investment_id"),
		FromUserID:   req.FromUserID,
		ToUserID:     req.ToUserID,
		Amount:       req.Amount,
		Type:         req.Type,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"transaction": dto})
}
