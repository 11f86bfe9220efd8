package distribution

import (
	"context"
	"errors"
	"math"
	"time"

	domain "aaraazi-backend/internal/domain/distribution"
	invDomain "aaraazi-backend/internal/domain/investment"
	"aaraazi-backend/internal/domain/transaction"
	"aaraazi-backend/internal/domain/uow"
	"aaraazi-backend/internal/metrics"
	"aaraazi-backend/pkg/id"
	"aaraazi-backend/pkg/money"
)

const shareEpsilon = 0.01

var ErrInvalidSalePrice = errors.New("sale price must be positive")

type Usecase struct {
	repo        domain.Repository
	investments invDomain.Repository
	ledger      transaction.Repository
	uow         uow.UnitOfWork
	strict      bool
}

func NewUsecase(r domain.Repository, invs invDomain.Repository, ledger transaction.Repository, tx uow.UnitOfWork, strict bool) *Usecase {
	return &Usecase{repo: r, investments: invs, ledger: ledger, uow: tx, strict: strict}
}

// Allocation policy: the pooled capital gain is reallocated by share
// percentage (cent remainder to the last investor, so the gains sum back to
// the pool); rental income and expenses come from each investment's own
// running totals, which already accumulated by share as entries were
// recorded.
func buildBreakdown(invs []*invDomain.Investment, salePrice, capitalGain float64) []InvestorBreakdownDTO {
	out := make([]InvestorBreakdownDTO, 0, len(invs))
	allocated := 0.0
	for i, inv := range invs {
		gain := money.Share(capitalGain, inv.SharePercentage)
		if i == len(invs)-1 {
			gain = money.Sub(capitalGain, allocated)
		}
		allocated = money.Add(allocated, gain)

		profit := money.Sub(money.Add(gain, inv.RentalIncome), inv.TotalExpenses)
		roi := 0.0
		if inv.InvestmentAmount > 0 {
			roi = money.Round2(profit / inv.InvestmentAmount * 100)
		}
		out = append(out, InvestorBreakdownDTO{
			InvestmentID:     inv.InvestmentID,
			InvestorID:       inv.InvestorID,
			InvestorName:     inv.InvestorName,
			SharePercentage:  inv.SharePercentage,
			InvestmentAmount: inv.InvestmentAmount,
			SalePriceShare:   money.Share(salePrice, inv.SharePercentage),
			CapitalGain:      gain,
			RentalIncome:     inv.RentalIncome,
			Expenses:         inv.TotalExpenses,
			NetProfit:        profit,
			TotalReturn:      money.Add(inv.InvestmentAmount, profit),
			ROI:              roi,
		})
	}
	return out
}

func (u *Usecase) preview(ctx context.Context, invs []*invDomain.Investment, ledger transaction.Repository, propertyID string, salePrice float64, saleDate time.Time) (*SalePreviewDTO, error) {
	if len(invs) == 0 {
		return nil, domain.ErrNoActiveInvestments
	}

	totalPurchase := 0.0
	for _, inv := range invs {
		totalPurchase = money.Add(totalPurchase, inv.InvestmentAmount)
	}
	capitalGain := money.Sub(salePrice, totalPurchase)

	totalIncome, err := ledger.SumIncome(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := ledger.SumExpenses(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	return &SalePreviewDTO{
		PropertyID:         propertyID,
		SalePrice:          salePrice,
		SaleDate:           saleDate.Format("2006-01-02"),
		TotalPurchasePrice: totalPurchase,
		CapitalGain:        capitalGain,
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetProfit:          money.Sub(money.Add(capitalGain, totalIncome), totalExpenses),
		Investors:          buildBreakdown(invs, salePrice, capitalGain),
	}, nil
}

// Calculate is the advisory half of the sale flow: pure function of the
// property's active stakes and transaction ledger, no state change.
func (u *Usecase) Calculate(ctx context.Context, propertyID string, salePrice float64, saleDate time.Time) (*SalePreviewDTO, error) {
	if salePrice <= 0 {
		return nil, ErrInvalidSalePrice
	}
	invs, err := u.investments.ListActiveByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return u.preview(ctx, invs, u.ledger, propertyID, salePrice, saleDate)
}

// Execute creates one pending distribution per active stake and flips every
// stake to exited, all inside a single tx: either the whole sale applies or
// none of it does.
func (u *Usecase) Execute(ctx context.Context, in ExecuteInput) ([]*DistributionDTO, error) {
	if in.SalePrice <= 0 {
		return nil, ErrInvalidSalePrice
	}

	var dtos []*DistributionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		invs, err := r.Investments.ListActiveByPropertyForUpdate(ctx, in.PropertyID)
		if err != nil {
			return err
		}
		if len(invs) == 0 {
			return domain.ErrNoActiveInvestments
		}
		if u.strict {
			sum := 0.0
			for _, inv := range invs {
				sum += inv.SharePercentage
			}
			if math.Abs(sum-100) > shareEpsilon {
				return domain.ErrSharesNotFullyOwned
			}
		}

		pv, err := u.preview(ctx, invs, r.Transactions, in.PropertyID, in.SalePrice, in.SaleDate)
		if err != nil {
			return err
		}

		dtos = make([]*DistributionDTO, 0, len(invs))
		for i, inv := range invs {
			row := pv.Investors[i]
			d := &domain.Distribution{
				DistributionID:   id.NewID32(),
				PropertyID:       in.PropertyID,
				DealID:           in.DealID,
				InvestmentID:     inv.InvestmentID,
				InvestorID:       inv.InvestorID,
				InvestorName:     inv.InvestorName,
				SharePercentage:  row.SharePercentage,
				InvestmentAmount: row.InvestmentAmount,
				SalePrice:        in.SalePrice,
				SalePriceShare:   row.SalePriceShare,
				SaleDate:         in.SaleDate,
				CapitalGain:      row.CapitalGain,
				RentalIncome:     row.RentalIncome,
				Expenses:         row.Expenses,
				NetProfit:        row.NetProfit,
				TotalReturn:      row.TotalReturn,
				ROI:              row.ROI,
				Status:           domain.StatusPending,
				Notes:            in.Notes,
				CreatedBy:        in.ActorID,
				CreatedByName:    in.ActorName,
			}
			if err := r.Distributions.Create(ctx, d); err != nil {
				return err
			}

			inv.Exit(in.SaleDate, row.TotalReturn, row.NetProfit, row.ROI, d.DistributionID)
			if err := r.Investments.Save(ctx, inv); err != nil {
				return err
			}
			dtos = append(dtos, toDTO(d))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.DistributionsExecuted.Inc()
	return dtos, nil
}

// MarkPaid moves a pending distribution to its terminal paid state.
func (u *Usecase) MarkPaid(ctx context.Context, in MarkPaidInput) (*DistributionDTO, error) {
	var dto *DistributionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Distributions.GetByDistributionIDForUpdate(ctx, in.DistributionID)
		if err != nil {
			return err
		}
		if d.Status != domain.StatusPending {
			return domain.ErrNotPending
		}
		d.Status = domain.StatusPaid
		paidAt := in.PaymentDate
		d.DistributionDate = &paidAt
		d.PaymentMethod = in.PaymentMethod
		d.PaymentReference = in.PaymentReference
		if err := r.Distributions.Save(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Cancel moves a pending distribution to cancelled and reverts the linked
// investment to active, clearing its exit fields.
func (u *Usecase) Cancel(ctx context.Context, distributionID, reason string) (*DistributionDTO, error) {
	if reason == "" {
		return nil, domain.ErrReasonRequired
	}

	var dto *DistributionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Distributions.GetByDistributionIDForUpdate(ctx, distributionID)
		if err != nil {
			return err
		}
		if d.Status != domain.StatusPending {
			return domain.ErrNotPending
		}
		d.Status = domain.StatusCancelled
		d.CancelReason = reason
		if err := r.Distributions.Save(ctx, d); err != nil {
			return err
		}

		inv, err := r.Investments.GetByInvestmentIDForUpdate(ctx, d.InvestmentID)
		if err != nil {
			return err
		}
		inv.ReverseExit()
		if err := r.Investments.Save(ctx, inv); err != nil {
			return err
		}

		dto = toDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, distributionID string) (*DistributionDTO, error) {
	d, err := u.repo.GetByDistributionID(ctx, distributionID)
	if err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

func (u *Usecase) ListByProperty(ctx context.Context, propertyID string) ([]*DistributionDTO, error) {
	ds, err := u.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]*DistributionDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDTO(d))
	}
	return out, nil
}
