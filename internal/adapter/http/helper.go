package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	distDomain "aaraazi-backend/internal/domain/distribution"
	invDomain "aaraazi-backend/internal/domain/investment"
	planDomain "aaraazi-backend/internal/domain/plan"
	receiptDomain "aaraazi-backend/internal/domain/receipt"
	distuc "aaraazi-backend/internal/usecase/distribution"
	invuc "aaraazi-backend/internal/usecase/investment"
	paymentuc "aaraazi-backend/internal/usecase/payment"
	planuc "aaraazi-backend/internal/usecase/plan"
	receiptuc "aaraazi-backend/internal/usecase/receipt"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) { return time.Parse(dateLayout, s) }

// errStatus maps domain/usecase errors to HTTP status codes so every
// handler reports failures the same way.
func errStatus(err error) int {
	switch {
	case errors.Is(err, planDomain.ErrNotFound),
		errors.Is(err, planDomain.ErrInstallmentNotFound),
		errors.Is(err, receiptDomain.ErrNotFound),
		errors.Is(err, invDomain.ErrNotFound),
		errors.Is(err, distDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, invDomain.ErrShareOverflow),
		errors.Is(err, distDomain.ErrNotPending),
		errors.Is(err, distDomain.ErrNoActiveInvestments),
		errors.Is(err, distDomain.ErrSharesNotFullyOwned),
		errors.Is(err, paymentuc.ErrOverpayment),
		errors.Is(err, receiptuc.ErrNumberConflict):
		return http.StatusConflict
	case errors.Is(err, planuc.ErrInvalidTotal),
		errors.Is(err, planuc.ErrInvalidDownPayment),
		errors.Is(err, planuc.ErrInvalidCount),
		errors.Is(err, planuc.ErrInvalidFrequency),
		errors.Is(err, planuc.ErrCustomDates),
		errors.Is(err, paymentuc.ErrInvalidAmount),
		errors.Is(err, receiptuc.ErrInvalidAmount),
		errors.Is(err, receiptuc.ErrInvalidMethod),
		errors.Is(err, receiptuc.ErrInvalidPurpose),
		errors.Is(err, receiptuc.ErrMissingChequeFields),
		errors.Is(err, receiptuc.ErrMissingTransferRef),
		errors.Is(err, receiptuc.ErrMissingTransactionID),
		errors.Is(err, invuc.ErrInvalidShare),
		errors.Is(err, invuc.ErrInvalidAmount),
		errors.Is(err, invuc.ErrInvalidCategory),
		errors.Is(err, distuc.ErrInvalidSalePrice),
		errors.Is(err, distDomain.ErrReasonRequired):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
