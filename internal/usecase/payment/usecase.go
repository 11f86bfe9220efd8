package payment

import (
	"context"
	"errors"
	"time"

	domain "aaraazi-backend/internal/domain/plan"
	"aaraazi-backend/internal/domain/uow"
	"aaraazi-backend/internal/metrics"
	"aaraazi-backend/pkg/money"
)

var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	// ErrOverpayment is returned only in strict mode; the default ledger
	// accepts amounts past the installment's outstanding balance.
	ErrOverpayment = errors.New("payment exceeds installment outstanding balance")
)

type Usecase struct {
	repo   domain.Repository
	uow    uow.UnitOfWork
	strict bool
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, strict bool) *Usecase {
	return &Usecase{repo: r, uow: tx, strict: strict}
}

// RecordPayment credits an installment inside a plan-locked transaction, so
// concurrent payments against one plan serialize instead of losing updates.
func (u *Usecase) RecordPayment(ctx context.Context, in RecordPaymentInput) (*PaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var dto *PaymentDTO
	err := u.uow.WithinPlanTx(ctx, in.PlanID, func(r uow.Repos, p *domain.Plan) error {
		ins := p.FindInstallment(in.InstallmentID)
		if ins == nil {
			return domain.ErrInstallmentNotFound
		}
		if u.strict && in.Amount > ins.Outstanding() {
			return ErrOverpayment
		}

		ins.PaidAmount = money.Add(ins.PaidAmount, in.Amount)
		paidDate := in.PaymentDate
		ins.PaidDate = &paidDate
		ins.PaymentMethod = in.Method
		if in.Notes != "" {
			ins.Notes = in.Notes
		}
		ins.RecomputeStatus()
		if err := r.Plans.SaveInstallment(ctx, ins); err != nil {
			return err
		}

		p.RecomputeStatus()
		if err := r.Plans.Save(ctx, p); err != nil {
			return err
		}

		dto = &PaymentDTO{
			PlanID:        p.PlanID,
			PlanStatus:    string(p.Status),
			InstallmentID: ins.InstallmentID,
			Number:        ins.Number,
			Amount:        ins.Amount,
			PaidAmount:    ins.PaidAmount,
			Outstanding:   ins.Outstanding(),
			Status:        string(ins.Status),
			PaidDate:      ins.PaidDate,
		}
		return nil
	})
	if err != nil {
		metrics.PaymentsRecorded.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.PaymentsRecorded.WithLabelValues("ok").Inc()
	return dto, nil
}

// SweepOverdue flips pending installments whose due date has passed the
// reference date. Explicit batch operation; status is not derived at read
// time, so callers run this on load (or on a schedule). Each plan is swept
// under the same row lock payments take, and the flip decision is made on
// the locked re-read, so the sweep never overwrites a concurrently
// recorded payment with a stale snapshot.
func (u *Usecase) SweepOverdue(ctx context.Context, referenceDate time.Time) (int, error) {
	plans, err := u.repo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, stale := range plans {
		err := u.uow.WithinPlanTx(ctx, stale.PlanID, func(r uow.Repos, p *domain.Plan) error {
			for i := range p.Installments {
				ins := &p.Installments[i]
				if ins.Status != domain.InstallmentPending || !ins.DueDate.Before(referenceDate) {
					continue
				}
				ins.Status = domain.InstallmentOverdue
				if err := r.Plans.SaveInstallment(ctx, ins); err != nil {
					return err
				}
				swept++
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
	}
	metrics.InstallmentsOverdue.Add(float64(swept))
	return swept, nil
}

// Stats is a pure aggregation over one plan.
func (u *Usecase) Stats(ctx context.Context, planID string) (*PlanStats, error) {
	p, err := u.repo.GetByPlanID(ctx, planID)
	if err != nil {
		return nil, err
	}

	stats := &PlanStats{PlanID: p.PlanID}
	paidTowardsInstallments := 0.0
	var next *domain.Installment
	for i := range p.Installments {
		ins := &p.Installments[i]
		paidTowardsInstallments = money.Add(paidTowardsInstallments, ins.PaidAmount)
		switch ins.Status {
		case domain.InstallmentPending:
			stats.Pending++
		case domain.InstallmentPartial:
			stats.Partial++
		case domain.InstallmentPaid:
			stats.Paid++
		case domain.InstallmentOverdue:
			stats.Overdue++
		}
		if ins.Status == domain.InstallmentPending || ins.Status == domain.InstallmentOverdue {
			// earliest due date wins; ties go to the lower installment number,
			// which is the iteration order
			if next == nil || ins.DueDate.Before(next.DueDate) {
				next = ins
			}
		}
	}

	stats.TotalPaid = money.Add(p.DownPayment, paidTowardsInstallments)
	stats.RemainingBalance = money.Sub(p.TotalAmount, stats.TotalPaid)
	if p.RemainingAmount > 0 {
		stats.CompletionPct = money.Round2(paidTowardsInstallments / p.RemainingAmount * 100)
	}
	if next != nil {
		stats.NextDue = &NextDueDTO{
			InstallmentID: next.InstallmentID,
			Number:        next.Number,
			DueDate:       next.DueDate.Format("2006-01-02"),
			Amount:        next.Amount,
			Outstanding:   next.Outstanding(),
			Status:        string(next.Status),
		}
	}
	return stats, nil
}
