package http

import (
	"net/http"
	"time"

	planDomain "aaraazi-backend/internal/domain/plan"
	planuc "aaraazi-backend/internal/usecase/plan"

	"github.com/labstack/echo/v4"
)

type PlanHandler struct{ uc *planuc.Usecase }

func NewPlanHandler(uc *planuc.Usecase) *PlanHandler { return &PlanHandler{uc: uc} }

type createPlanReq struct {
	SaleCycleID          string   `json:"sale_cycle_id"          validate:"required,hex32"`
	PropertyID           string   `json:"property_id"            validate:"required,hex32"`
	BuyerID              string   `json:"buyer_id"               validate:"required,hex32"`
	BuyerName            string   `json:"buyer_name"             validate:"required"`
	TotalAmount          float64  `json:"total_amount"           validate:"required,gt=0,dec2"`
	DownPayment          float64  `json:"down_payment"           validate:"gte=0,dec2"`
	NumberOfInstallments int      `json:"number_of_installments" validate:"required,gte=1"`
	StartDate            string   `json:"start_date"             validate:"required,datetime=2006-01-02"`
	Frequency            string   `json:"frequency"              validate:"required,freq"`
	CustomDates          []string `json:"custom_dates,omitempty" validate:"omitempty,dive,datetime=2006-01-02"`
}

func (h *PlanHandler) CreatePlan(c echo.Context) error {
	var req createPlanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	start, _ := parseDate(req.StartDate)
	custom := make([]time.Time, 0, len(req.CustomDates))
	for _, d := range req.CustomDates {
		t, _ := parseDate(d)
		custom = append(custom, t)
	}

	dto, err := h.uc.Create(c.Request().Context(), planuc.CreatePlanInput{
		SaleCycleID:          req.SaleCycleID,
		PropertyID:           req.PropertyID,
		BuyerID:              req.BuyerID,
		BuyerName:            req.BuyerName,
		TotalAmount:          req.TotalAmount,
		DownPayment:          req.DownPayment,
		NumberOfInstallments: req.NumberOfInstallments,
		StartDate:            start,
		Frequency:            planDomain.Frequency(req.Frequency),
		CustomDates:          custom,
	})
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PlanHandler) GetPlan(c echo.Context) error {
	planID := c.Param("plan_id")
	dto, err := h.uc.Get(c.Request().Context(), planID)
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}
