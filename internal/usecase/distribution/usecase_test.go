package distribution

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	domain "aaraazi-backend/internal/domain/distribution"
	invDomain "aaraazi-backend/internal/domain/investment"
	"aaraazi-backend/internal/domain/uow"
	"aaraazi-backend/internal/testutil/distributionmock"
	"aaraazi-backend/internal/testutil/investmentmock"
	"aaraazi-backend/internal/testutil/transactionmock"
	"aaraazi-backend/internal/testutil/uowmock"
)

const propertyID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	uc      *Usecase
	dists   *distributionmock.Repo
	invs    *investmentmock.Repo
	ledger  *transactionmock.Repo
	active  []*invDomain.Investment
	created []*domain.Distribution
}

func newFixture(strict bool, active ...*invDomain.Investment) *fixture {
	f := &fixture{active: active}
	f.invs = &investmentmock.Repo{
		ListActiveByPropertyFn: func(ctx context.Context, pid string) ([]*invDomain.Investment, error) {
			return f.active, nil
		},
	}
	f.invs.ListActiveByPropertyForUpdateFn = f.invs.ListActiveByPropertyFn
	f.invs.GetByInvestmentIDForUpdateFn = func(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
		for _, inv := range f.active {
			if inv.InvestmentID == investmentID {
				return inv, nil
			}
		}
		return nil, invDomain.ErrNotFound
	}
	f.dists = &distributionmock.Repo{
		CreateFn: func(ctx context.Context, d *domain.Distribution) error {
			f.created = append(f.created, d)
			return nil
		},
	}
	f.ledger = &transactionmock.Repo{}
	tx := uowmock.New(uow.Repos{
		Distributions: f.dists,
		Investments:   f.invs,
		Transactions:  f.ledger,
	})
	f.uc = NewUsecase(f.dists, f.invs, f.ledger, tx, strict)
	return f
}

func stake(id string, pct, amount, income, expenses float64) *invDomain.Investment {
	return &invDomain.Investment{
		InvestmentID:     id,
		InvestorID:       "0000" + id[4:],
		PropertyID:       propertyID,
		SharePercentage:  pct,
		InvestmentAmount: amount,
		RentalIncome:     income,
		TotalExpenses:    expenses,
		Status:           invDomain.StatusActive,
	}
}

func TestCalculateSplitsGainByShare(t *testing.T) {
	f := newFixture(false,
		stake("11110000111100001111000011110000", 60, 600000, 12000, 3000),
		stake("22220000222200002222000022220000", 40, 400000, 8000, 2000),
	)
	f.ledger.SumIncomeFn = func(ctx context.Context, pid string) (float64, error) { return 20000, nil }
	f.ledger.SumExpensesFn = func(ctx context.Context, pid string) (float64, error) { return 5000, nil }

	pv, err := f.uc.Calculate(context.Background(), propertyID, 1200000, date(2025, time.June, 1))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if pv.TotalPurchasePrice != 1000000 {
		t.Errorf("purchase total = %v, want 1000000", pv.TotalPurchasePrice)
	}
	if pv.CapitalGain != 200000 {
		t.Errorf("capital gain = %v, want 200000", pv.CapitalGain)
	}
	if pv.NetProfit != 215000 {
		t.Errorf("net profit = %v, want 215000", pv.NetProfit)
	}
	if len(pv.Investors) != 2 {
		t.Fatalf("breakdown has %d rows", len(pv.Investors))
	}
	a, b := pv.Investors[0], pv.Investors[1]
	if a.CapitalGain != 120000 || b.CapitalGain != 80000 {
		t.Errorf("gains = %v, %v, want 120000, 80000", a.CapitalGain, b.CapitalGain)
	}
	if a.SalePriceShare != 720000 || b.SalePriceShare != 480000 {
		t.Errorf("sale shares = %v, %v", a.SalePriceShare, b.SalePriceShare)
	}
	if a.NetProfit != 129000 { // 120000 + 12000 - 3000
		t.Errorf("investor 1 net = %v, want 129000", a.NetProfit)
	}
	if a.TotalReturn != 729000 {
		t.Errorf("investor 1 return = %v, want 729000", a.TotalReturn)
	}
	if a.ROI != 21.5 {
		t.Errorf("investor 1 roi = %v, want 21.5", a.ROI)
	}
}

func TestCalculateGainConservation(t *testing.T) {
	// 3 at 33.33/33.33/33.34 over an indivisible gain: the per-investor
	// gains must still sum exactly to the pool
	f := newFixture(false,
		stake("11110000111100001111000011110000", 33.33, 100, 0, 0),
		stake("22220000222200002222000022220000", 33.33, 100, 0, 0),
		stake("33330000333300003333000033330000", 33.34, 100, 0, 0),
	)

	pv, err := f.uc.Calculate(context.Background(), propertyID, 400, date(2025, time.June, 1))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if pv.CapitalGain != 100 {
		t.Fatalf("capital gain = %v, want 100", pv.CapitalGain)
	}
	var sum float64
	for _, row := range pv.Investors {
		sum += row.CapitalGain
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("investor gains sum to %v, want exactly 100", sum)
	}
	if pv.Investors[0].CapitalGain != 33.33 {
		t.Errorf("first gain = %v, want 33.33", pv.Investors[0].CapitalGain)
	}
}

func TestCalculateNegativeGain(t *testing.T) {
	f := newFixture(false, stake("11110000111100001111000011110000", 100, 500000, 0, 0))

	pv, err := f.uc.Calculate(context.Background(), propertyID, 400000, date(2025, time.June, 1))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if pv.CapitalGain != -100000 {
		t.Errorf("capital gain = %v, want -100000", pv.CapitalGain)
	}
	if pv.Investors[0].ROI != -20 {
		t.Errorf("roi = %v, want -20", pv.Investors[0].ROI)
	}
}

func TestCalculateZeroInvestmentROI(t *testing.T) {
	inv := stake("11110000111100001111000011110000", 100, 0, 0, 0)
	inv.InvestmentAmount = 0
	f := newFixture(false, inv)

	pv, err := f.uc.Calculate(context.Background(), propertyID, 1000, date(2025, time.June, 1))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if pv.Investors[0].ROI != 0 {
		t.Errorf("roi = %v, want 0 for zero-amount stake", pv.Investors[0].ROI)
	}
}

func TestCalculateErrors(t *testing.T) {
	f := newFixture(false)
	if _, err := f.uc.Calculate(context.Background(), propertyID, 0, date(2025, time.June, 1)); !errors.Is(err, ErrInvalidSalePrice) {
		t.Fatalf("zero price: got %v", err)
	}
	if _, err := f.uc.Calculate(context.Background(), propertyID, 1000, date(2025, time.June, 1)); !errors.Is(err, domain.ErrNoActiveInvestments) {
		t.Fatalf("no stakes: got %v", err)
	}
}

func TestExecuteCreatesPendingAndExitsStakes(t *testing.T) {
	a := stake("11110000111100001111000011110000", 60, 600000, 0, 0)
	b := stake("22220000222200002222000022220000", 40, 400000, 0, 0)
	f := newFixture(false, a, b)

	saleDate := date(2025, time.June, 1)
	dtos, err := f.uc.Execute(context.Background(), ExecuteInput{
		PropertyID: propertyID,
		SalePrice:  1200000,
		SaleDate:   saleDate,
		ActorID:    "cccc0000cccc0000cccc0000cccc0000",
		ActorName:  "Admin",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(dtos) != 2 || len(f.created) != 2 {
		t.Fatalf("created %d distributions, want 2", len(f.created))
	}
	for _, d := range f.created {
		if d.Status != domain.StatusPending {
			t.Errorf("distribution %s status = %s, want pending", d.DistributionID, d.Status)
		}
	}
	for _, inv := range []*invDomain.Investment{a, b} {
		if inv.Status != invDomain.StatusExited {
			t.Errorf("stake %s status = %s, want exited", inv.InvestmentID, inv.Status)
		}
		if inv.ExitDate == nil || !inv.ExitDate.Equal(saleDate) {
			t.Errorf("stake %s exit date = %v", inv.InvestmentID, inv.ExitDate)
		}
		if inv.DistributionID == "" {
			t.Errorf("stake %s has no distribution back-link", inv.InvestmentID)
		}
	}
	if a.ExitValue != 720000 { // 600000 principal + 120000 gain
		t.Errorf("stake a exit value = %v, want 720000", a.ExitValue)
	}
}

func TestExecuteRollsBackOnCreateFailure(t *testing.T) {
	a := stake("11110000111100001111000011110000", 100, 500000, 0, 0)
	f := newFixture(false, a)
	boom := errors.New("insert failed")
	f.dists.CreateFn = func(ctx context.Context, d *domain.Distribution) error { return boom }

	_, err := f.uc.Execute(context.Background(), ExecuteInput{
		PropertyID: propertyID, SalePrice: 600000, SaleDate: date(2025, time.June, 1),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want insert error", err)
	}
	// the failing create runs before the stake flips, so nothing is half-applied
	if a.Status != invDomain.StatusActive {
		t.Errorf("stake status = %s, want active after failed execute", a.Status)
	}
}

func TestExecuteStrictShareSum(t *testing.T) {
	f := newFixture(true, stake("11110000111100001111000011110000", 80, 800000, 0, 0))

	_, err := f.uc.Execute(context.Background(), ExecuteInput{
		PropertyID: propertyID, SalePrice: 1000000, SaleDate: date(2025, time.June, 1),
	})
	if !errors.Is(err, domain.ErrSharesNotFullyOwned) {
		t.Fatalf("got %v, want ErrSharesNotFullyOwned", err)
	}

	// lenient mode distributes whatever is owned
	f2 := newFixture(false, stake("11110000111100001111000011110000", 80, 800000, 0, 0))
	if _, err := f2.uc.Execute(context.Background(), ExecuteInput{
		PropertyID: propertyID, SalePrice: 1000000, SaleDate: date(2025, time.June, 1),
	}); err != nil {
		t.Fatalf("lenient execute: %v", err)
	}
}

func TestMarkPaid(t *testing.T) {
	f := newFixture(false)
	d := &domain.Distribution{
		DistributionID: "dddd0000dddd0000dddd0000dddd0000",
		Status:         domain.StatusPending,
	}
	f.dists.GetByDistributionIDForUpdateFn = func(ctx context.Context, id string) (*domain.Distribution, error) {
		if id == d.DistributionID {
			return d, nil
		}
		return nil, domain.ErrNotFound
	}

	paidAt := date(2025, time.July, 1)
	dto, err := f.uc.MarkPaid(context.Background(), MarkPaidInput{
		DistributionID:   d.DistributionID,
		PaymentDate:      paidAt,
		PaymentMethod:    "bank-transfer",
		PaymentReference: "TRX-991",
	})
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if dto.Status != "paid" {
		t.Errorf("status = %s, want paid", dto.Status)
	}
	if d.DistributionDate == nil || !d.DistributionDate.Equal(paidAt) {
		t.Errorf("distribution date = %v", d.DistributionDate)
	}
	if d.PaymentReference != "TRX-991" {
		t.Errorf("reference = %q", d.PaymentReference)
	}

	// terminal states refuse further transitions
	if _, err := f.uc.MarkPaid(context.Background(), MarkPaidInput{DistributionID: d.DistributionID, PaymentDate: paidAt}); !errors.Is(err, domain.ErrNotPending) {
		t.Fatalf("double pay: got %v, want ErrNotPending", err)
	}
	if _, err := f.uc.Cancel(context.Background(), d.DistributionID, "mistake"); !errors.Is(err, domain.ErrNotPending) {
		t.Fatalf("cancel paid: got %v, want ErrNotPending", err)
	}
}

func TestCancelRevertsInvestment(t *testing.T) {
	inv := stake("11110000111100001111000011110000", 100, 500000, 0, 0)
	inv.Exit(date(2025, time.June, 1), 600000, 100000, 20, "dddd0000dddd0000dddd0000dddd0000")
	f := newFixture(false, inv)
	d := &domain.Distribution{
		DistributionID: "dddd0000dddd0000dddd0000dddd0000",
		InvestmentID:   inv.InvestmentID,
		Status:         domain.StatusPending,
	}
	f.dists.GetByDistributionIDForUpdateFn = func(ctx context.Context, id string) (*domain.Distribution, error) {
		return d, nil
	}

	dto, err := f.uc.Cancel(context.Background(), d.DistributionID, "buyer backed out")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if dto.Status != "cancelled" || dto.CancelReason != "buyer backed out" {
		t.Errorf("dto = %+v", dto)
	}
	if inv.Status != invDomain.StatusActive {
		t.Errorf("stake status = %s, want active after cancel", inv.Status)
	}
	if inv.ExitDate != nil || inv.ExitValue != 0 || inv.DistributionID != "" {
		t.Errorf("exit fields not cleared: %+v", inv)
	}
}

func TestCancelRequiresReason(t *testing.T) {
	f := newFixture(false)
	if _, err := f.uc.Cancel(context.Background(), "dddd0000dddd0000dddd0000dddd0000", ""); !errors.Is(err, domain.ErrReasonRequired) {
		t.Fatalf("got %v, want ErrReasonRequired", err)
	}
}
