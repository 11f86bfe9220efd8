package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	planDomain "aaraazi-backend/internal/domain/plan"
	"aaraazi-backend/internal/domain/uow"
	"aaraazi-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openUowTestDB migrates every table, so UoW can orchestrate all repos.
func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&planSQLite{}, &installmentSQLite{}, &receiptSQLite{},
		&investmentSQLite{}, &distributionSQLite{}, &transactionSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	receiptRepo := NewReceiptRepository(db)
	planRepo := NewPlanRepository(db)

	planID := id.NewID32()
	receiptID := id.NewID32()

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		p := makePlan(planID)
		if err := r.Plans.Create(ctx, p); err != nil {
			return err
		}
		rec := makeReceipt(receiptID, "RCP-2503-0001")
		rec.PlanID = planID
		rec.InstallmentID = p.Installments[0].InstallmentID
		return r.Receipts.Create(ctx, rec)
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := planRepo.GetByPlanID(ctx, planID); err != nil {
		t.Fatalf("plan not visible after commit: %v", err)
	}
	if _, err := receiptRepo.GetByReceiptID(ctx, receiptID); err != nil {
		t.Fatalf("receipt not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	receiptRepo := NewReceiptRepository(db)
	planRepo := NewPlanRepository(db)

	planID := id.NewID32()
	receiptID := id.NewID32()
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Plans.Create(ctx, makePlan(planID)); err != nil {
			return err
		}
		if err := r.Receipts.Create(ctx, makeReceipt(receiptID, "RCP-2503-0001")); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := planRepo.GetByPlanID(ctx, planID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected plan not found after rollback, got %v", err)
	}
	if _, err := receiptRepo.GetByReceiptID(ctx, receiptID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected receipt not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinPlanTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	planRepo := NewPlanRepository(db)

	planID := id.NewID32()
	if err := planRepo.Create(ctx, makePlan(planID)); err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	paidAt := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	if err := guow.WithinPlanTx(ctx, planID, func(r uow.Repos, p *planDomain.Plan) error {
		if p == nil || p.PlanID != planID || len(p.Installments) != 2 {
			t.Fatalf("unexpected plan passed to fn: %+v", p)
		}

		ins := &p.Installments[0]
		ins.PaidAmount = ins.Amount
		ins.PaidDate = &paidAt
		ins.RecomputeStatus()
		return r.Plans.SaveInstallment(ctx, ins)
	}); err != nil {
		t.Fatalf("WithinPlanTx commit err: %v", err)
	}

	got, err := planRepo.GetByPlanID(ctx, planID)
	if err != nil {
		t.Fatalf("GetByPlanID post-commit: %v", err)
	}
	if got.Installments[0].Status != planDomain.InstallmentPaid {
		t.Fatalf("installment not paid after commit, got %s", got.Installments[0].Status)
	}
}

func TestGormUoW_WithinPlanTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	planRepo := NewPlanRepository(db)

	planID := id.NewID32()
	if err := planRepo.Create(ctx, makePlan(planID)); err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	sentinel := errors.New("stop")
	_ = guow.WithinPlanTx(ctx, planID, func(r uow.Repos, p *planDomain.Plan) error {
		ins := &p.Installments[0]
		ins.PaidAmount = ins.Amount
		ins.RecomputeStatus()
		if err := r.Plans.SaveInstallment(ctx, ins); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	got, err := planRepo.GetByPlanID(ctx, planID)
	if err != nil {
		t.Fatalf("post-rollback GetByPlanID: %v", err)
	}
	if got.Installments[0].Status != planDomain.InstallmentPending {
		t.Fatalf("expected pending after rollback, got %s", got.Installments[0].Status)
	}
	if got.Installments[0].PaidAmount != 0 {
		t.Fatalf("paid amount not rolled back: %v", got.Installments[0].PaidAmount)
	}
}

func TestGormUoW_WithinPlanTx_PlanNotFound(t *testing.T) {
	db := openUowTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinPlanTx(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", func(r uow.Repos, p *planDomain.Plan) error {
		t.Fatalf("callback should not run when plan missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
