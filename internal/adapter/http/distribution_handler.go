package http

import (
	"net/http"

	distuc "aaraazi-backend/internal/usecase/distribution"

	"github.com/labstack/echo/v4"
)

type DistributionHandler struct{ uc *distuc.Usecase }

func NewDistributionHandler(uc *distuc.Usecase) *DistributionHandler {
	return &DistributionHandler{uc: uc}
}

type saleDistributionReq struct {
	SalePrice float64 `json:"sale_price" validate:"required,gt=0,dec2"`
	SaleDate  string  `json:"sale_date"  validate:"required,datetime=2006-01-02"`
	DealID    string  `json:"deal_id,omitempty"    validate:"omitempty,hex32"`
	ActorID   string  `json:"actor_id,omitempty"   validate:"omitempty,hex32"`
	ActorName string  `json:"actor_name,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

func (h *DistributionHandler) PreviewDistribution(c echo.Context) error {
	propertyID := c.Param("property_id")
	var req saleDistributionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	saleDate, _ := parseDate(req.SaleDate)
	dto, err := h.uc.Calculate(c.Request().Context(), propertyID, req.SalePrice, saleDate)
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DistributionHandler) ExecuteDistribution(c echo.Context) error {
	propertyID := c.Param("property_id")
	var req saleDistributionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	saleDate, _ := parseDate(req.SaleDate)
	dtos, err := h.uc.Execute(c.Request().Context(), distuc.ExecuteInput{
		PropertyID: propertyID,
		SalePrice:  req.SalePrice,
		SaleDate:   saleDate,
		ActorID:    req.ActorID,
		ActorName:  req.ActorName,
		DealID:     req.DealID,
		Notes:      req.Notes,
	})
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dtos)
}

type markPaidReq struct {
	PaymentDate      string `json:"payment_date"   validate:"required,datetime=2006-01-02"`
	PaymentMethod    string `json:"payment_method" validate:"required,paymethod"`
	PaymentReference string `json:"payment_reference,omitempty"`
}

func (h *DistributionHandler) MarkPaid(c echo.Context) error {
	distributionID := c.Param("distribution_id")
	var req markPaidReq
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
	dto, err := h.uc.MarkPaid(c.Request().Context(), distuc.MarkPaidInput{
		DistributionID:   distributionID,
		PaymentDate:      when,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

type cancelReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *DistributionHandler) Cancel(c echo.Context) error {
	distributionID := c.Param("distribution_id")
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Cancel(c.Request().Context(), distributionID, req.Reason)
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DistributionHandler) GetDistribution(c echo.Context) error {
	distributionID := c.Param("distribution_id")
	dto, err := h.uc.Get(c.Request().Context(), distributionID)
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DistributionHandler) ListDistributions(c echo.Context) error {
	propertyID := c.Param("property_id")
	dtos, err := h.uc.ListByProperty(c.Request().Context(), propertyID)
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}
