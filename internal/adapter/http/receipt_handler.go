package http

import (
	"net/http"
	"time"

	receiptDomain "aaraazi-backend/internal/domain/receipt"
	receiptuc "aaraazi-backend/internal/usecase/receipt"

	"github.com/labstack/echo/v4"
)

type ReceiptHandler struct{ uc *receiptuc.Usecase }

func NewReceiptHandler(uc *receiptuc.Usecase) *ReceiptHandler { return &ReceiptHandler{uc: uc} }

type issueReceiptReq struct {
	Amount        float64 `json:"amount"          validate:"required,gt=0,dec2"`
	PaymentDate   string  `json:"payment_date"    validate:"required,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method"  validate:"required,paymethod"`
	Purpose       string  `json:"purpose"         validate:"required,purpose"`
	ChequeNumber  string  `json:"cheque_number,omitempty"`
	ChequeBank    string  `json:"cheque_bank,omitempty"`
	ChequeDate    string  `json:"cheque_date,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	TransferBank  string  `json:"transfer_bank,omitempty"`
	TransferRef   string  `json:"transfer_reference,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	PlanID        string  `json:"plan_id,omitempty"        validate:"omitempty,hex32"`
	InstallmentID string  `json:"installment_id,omitempty" validate:"omitempty,hex32"`
	IssuedBy      string  `json:"issued_by"       validate:"required,hex32"`
	IssuedByName  string  `json:"issued_by_name"  validate:"required"`
	Notes         string  `json:"notes,omitempty"`
}

func (h *ReceiptHandler) IssueReceipt(c echo.Context) error {
	var req issueReceiptReq
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
	var chequeDate *time.Time
	if req.ChequeDate != "" {
		d, _ := parseDate(req.ChequeDate)
		chequeDate = &d
	}

	dto, err := h.uc.Issue(c.Request().Context(), receiptuc.IssueReceiptInput{
		Amount:        req.Amount,
		PaymentDate:   when,
		Method:        receiptDomain.Method(req.PaymentMethod),
		Purpose:       receiptDomain.Purpose(req.Purpose),
		ChequeNumber:  req.ChequeNumber,
		ChequeBank:    req.ChequeBank,
		ChequeDate:    chequeDate,
		TransferBank:  req.TransferBank,
		TransferRef:   req.TransferRef,
		TransactionID: req.TransactionID,
		PlanID:        req.PlanID,
		InstallmentID: req.InstallmentID,
		IssuedBy:      req.IssuedBy,
		IssuedByName:  req.IssuedByName,
		Notes:         req.Notes,
	})
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ReceiptHandler) GetReceipt(c echo.Context) error {
	receiptID := c.Param("receipt_id")
	dto, err := h.uc.Get(c.Request().Context(), receiptID)
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}
