package investment

import (
	"context"
	"errors"

	domain "aaraazi-backend/internal/domain/investment"
	"aaraazi-backend/internal/domain/transaction"
	"aaraazi-backend/internal/domain/uow"
	"aaraazi-backend/pkg/id"
	"aaraazi-backend/pkg/money"
)

// shareEpsilon absorbs float drift when summing share percentages.
const shareEpsilon = 0.01

var (
	ErrInvalidShare    = errors.New("share percentage must be in (0, 100]")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidCategory = errors.New("expense category must start with expense-")
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Create adds a fractional stake, rejecting any stake that would push the
// property's active share total past 100. The check and the insert share a
// tx, so two concurrent creations cannot oversubscribe a property.
func (u *Usecase) Create(ctx context.Context, in CreateInvestmentInput) (*InvestmentDTO, error) {
	if in.SharePercentage <= 0 || in.SharePercentage > 100 {
		return nil, ErrInvalidShare
	}
	if in.InvestmentAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	var dto *InvestmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		active, err := r.Investments.ListActiveByPropertyForUpdate(ctx, in.PropertyID)
		if err != nil {
			return err
		}
		total := in.SharePercentage
		for _, inv := range active {
			total += inv.SharePercentage
		}
		if total > 100+shareEpsilon {
			return domain.ErrShareOverflow
		}

		inv := &domain.Investment{
			InvestmentID:     id.NewID32(),
			InvestorID:       in.InvestorID,
			InvestorName:     in.InvestorName,
			PropertyID:       in.PropertyID,
			SharePercentage:  in.SharePercentage,
			InvestmentAmount: in.InvestmentAmount,
			Status:           domain.StatusActive,
		}
		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}
		dto = toDTO(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// RecordIncome appends a rental-income ledger entry and credits each active
// stake's running income proportionally to its share.
func (u *Usecase) RecordIncome(ctx context.Context, in RecordEntryInput) error {
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t := &transaction.Transaction{
			TransactionID: id.NewID32(),
			PropertyID:    in.PropertyID,
			Category:      transaction.CategoryRentalIncome,
			Amount:        in.Amount,
			OccurredAt:    in.OccurredAt,
			Note:          in.Note,
		}
		if err := r.Transactions.Create(ctx, t); err != nil {
			return err
		}
		return u.bumpActive(ctx, r, in.PropertyID, func(inv *domain.Investment) {
			inv.RentalIncome = money.Add(inv.RentalIncome, money.Share(in.Amount, inv.SharePercentage))
		})
	})
}

// RecordExpense mirrors RecordIncome for expense-* categories.
func (u *Usecase) RecordExpense(ctx context.Context, in RecordEntryInput) error {
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !transaction.IsExpense(in.Category) {
		return ErrInvalidCategory
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t := &transaction.Transaction{
			TransactionID: id.NewID32(),
			PropertyID:    in.PropertyID,
			Category:      in.Category,
			Amount:        in.Amount,
			OccurredAt:    in.OccurredAt,
			Note:          in.Note,
		}
		if err := r.Transactions.Create(ctx, t); err != nil {
			return err
		}
		return u.bumpActive(ctx, r, in.PropertyID, func(inv *domain.Investment) {
			inv.TotalExpenses = money.Add(inv.TotalExpenses, money.Share(in.Amount, inv.SharePercentage))
		})
	})
}

func (u *Usecase) bumpActive(ctx context.Context, r uow.Repos, propertyID string, apply func(*domain.Investment)) error {
	active, err := r.Investments.ListActiveByPropertyForUpdate(ctx, propertyID)
	if err != nil {
		return err
	}
	for _, inv := range active {
		apply(inv)
		if err := r.Investments.Save(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}

func (u *Usecase) ListByProperty(ctx context.Context, propertyID string) ([]*InvestmentDTO, error) {
	invs, err := u.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]*InvestmentDTO, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toDTO(inv))
	}
	return out, nil
}
