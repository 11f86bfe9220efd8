package http

import (
	"net/http"

	paymentuc "aaraazi-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *paymentuc.Usecase }

func NewPaymentHandler(uc *paymentuc.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type recordPaymentReq struct {
	InstallmentID string  `json:"installment_id" validate:"required,hex32"`
	Amount        float64 `json:"amount"         validate:"required,gt=0,dec2"`
	PaymentDate   string  `json:"payment_date"   validate:"required,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method" validate:"required,paymethod"`
	Notes         string  `json:"notes,omitempty"`
}

func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	planID := c.Param("plan_id")
	if planID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing plan_id path param"})
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	when, _ := parseDate(req.PaymentDate)
	dto, err := h.uc.RecordPayment(c.Request().Context(), paymentuc.RecordPaymentInput{
		PlanID:        planID,
		InstallmentID: req.InstallmentID,
		Amount:        req.Amount,
		PaymentDate:   when,
		Method:        req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

type sweepOverdueReq struct {
	ReferenceDate string `json:"reference_date" validate:"required,datetime=2006-01-02"`
}

func (h *PaymentHandler) SweepOverdue(c echo.Context) error {
	var req sweepOverdueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	ref, _ := parseDate(req.ReferenceDate)
	n, err := h.uc.SweepOverdue(c.Request().Context(), ref)
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"swept": n})
}

func (h *PaymentHandler) GetPlanStats(c echo.Context) error {
	planID := c.Param("plan_id")
	stats, err := h.uc.Stats(c.Request().Context(), planID)
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, stats)
}
