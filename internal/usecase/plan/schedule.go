package plan

import (
	"errors"
	"time"

	domain "aaraazi-backend/internal/domain/plan"
	"aaraazi-backend/pkg/id"
	"aaraazi-backend/pkg/money"
)

var (
	ErrInvalidTotal       = errors.New("total amount must be positive")
	ErrInvalidDownPayment = errors.New("down payment must be >= 0 and < total amount")
	ErrInvalidCount       = errors.New("number of installments must be >= 1")
	ErrInvalidFrequency   = errors.New("unknown frequency")
	ErrCustomDates        = errors.New("custom frequency requires a due date per installment")
)

// addMonthsClamped steps t forward by months, clamping the day of month to
// the target month's last day (Jan 31 + 1 month = Feb 28, not Mar 3).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// BuildSchedule materializes the installment sequence for a plan. The
// remaining amount (total - down) is split evenly to cents; the rounding
// remainder goes to the last installment so the amounts always sum exactly
// to the remaining amount. The first installment is due at startDate, each
// successive one a frequency step later; custom frequency uses the i-th
// supplied date verbatim.
func BuildSchedule(total, down float64, n int, start time.Time, freq domain.Frequency, customDates []time.Time) ([]domain.Installment, error) {
	if total <= 0 {
		return nil, ErrInvalidTotal
	}
	if down < 0 || down >= total {
		return nil, ErrInvalidDownPayment
	}
	if n < 1 {
		return nil, ErrInvalidCount
	}
	if !freq.Valid() {
		return nil, ErrInvalidFrequency
	}

	step, calendar := freq.MonthStep()
	if !calendar && len(customDates) < n {
		return nil, ErrCustomDates
	}

	amounts := money.SplitEven(money.Sub(total, down), n)
	out := make([]domain.Installment, n)
	for i := 0; i < n; i++ {
		due := start
		if calendar {
			due = addMonthsClamped(start, step*i)
		} else {
			due = customDates[i]
		}
		out[i] = domain.Installment{
			InstallmentID: id.NewID32(),
			Number:        i + 1,
			DueDate:       due,
			Amount:        amounts[i],
			PaidAmount:    0,
			Status:        domain.InstallmentPending,
		}
	}
	return out, nil
}
