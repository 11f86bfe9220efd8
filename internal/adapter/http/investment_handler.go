package http

import (
	"net/http"

	invuc "aaraazi-backend/internal/usecase/investment"

	"github.com/labstack/echo/v4"
)

type InvestmentHandler struct{ uc *invuc.Usecase }

func NewInvestmentHandler(uc *invuc.Usecase) *InvestmentHandler { return &InvestmentHandler{uc: uc} }

type createInvestmentReq struct {
	InvestorID       string  `json:"investor_id"       validate:"required,hex32"`
	InvestorName     string  `json:"investor_name"     validate:"required"`
	PropertyID       string  `json:"property_id"       validate:"required,hex32"`
	SharePercentage  float64 `json:"share_percentage"  validate:"required,gt=0,lte=100,dec2"`
	InvestmentAmount float64 `json:"investment_amount" validate:"required,gt=0,dec2"`
}

func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	var req createInvestmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), invuc.CreateInvestmentInput{
		InvestorID:       req.InvestorID,
		InvestorName:     req.InvestorName,
		PropertyID:       req.PropertyID,
		SharePercentage:  req.SharePercentage,
		InvestmentAmount: req.InvestmentAmount,
	})
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

type recordEntryReq struct {
	Category   string  `json:"category,omitempty"`
	Amount     float64 `json:"amount"      validate:"required,gt=0,dec2"`
	OccurredAt string  `json:"occurred_at" validate:"required,datetime=2006-01-02"`
	Note       string  `json:"note,omitempty"`
}

func (h *InvestmentHandler) recordEntry(c echo.Context, record func(invuc.RecordEntryInput) error) error {
	propertyID := c.Param("property_id")
	if propertyID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing property_id path param"})
	}
	var req recordEntryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	when, _ := parseDate(req.OccurredAt)
	if err := record(invuc.RecordEntryInput{
		PropertyID: propertyID,
		Category:   req.Category,
		Amount:     req.Amount,
		OccurredAt: when,
		Note:       req.Note,
	}); err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "recorded"})
}

func (h *InvestmentHandler) RecordIncome(c echo.Context) error {
	return h.recordEntry(c, func(in invuc.RecordEntryInput) error {
		return h.uc.RecordIncome(c.Request().Context(), in)
	})
}

func (h *InvestmentHandler) RecordExpense(c echo.Context) error {
	return h.recordEntry(c, func(in invuc.RecordEntryInput) error {
		return h.uc.RecordExpense(c.Request().Context(), in)
	})
}

func (h *InvestmentHandler) ListInvestments(c echo.Context) error {
	propertyID := c.Param("property_id")
	dtos, err := h.uc.ListByProperty(c.Request().Context(), propertyID)
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}
