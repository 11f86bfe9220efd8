package mysql

import (
	"context"
	"testing"
	"time"

	txDomain "aaraazi-backend/internal/domain/transaction"
	"aaraazi-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type transactionSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	TransactionID string    `gorm:"size:32;column:transaction_id"`
	PropertyID    string    `gorm:"size:32;column:property_id"`
	Category      string    `gorm:"column:category"`
	Amount        float64   `gorm:"column:amount"`
	OccurredAt    time.Time `gorm:"column:occurred_at"`
	Note          string    `gorm:"column:note"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (transactionSQLite) TableName() string { return "property_transactions" }

func openTransactionTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&transactionSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedEntry(t *testing.T, repo *TransactionRepository, propertyID, category string, amount float64, day int) {
	t.Helper()
	err := repo.Create(context.Background(), &txDomain.Transaction{
		TransactionID: id.NewID32(),
		PropertyID:    propertyID,
		Category:      category,
		Amount:        amount,
		OccurredAt:    time.Date(2025, time.April, day, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create %s: %v", category, err)
	}
}

func TestTransactionSums(t *testing.T) {
	db := openTransactionTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	propertyID := id.NewID32()
	seedEntry(t, repo, propertyID, txDomain.CategoryRentalIncome, 10_000, 1)
	seedEntry(t, repo, propertyID, txDomain.CategoryRentalIncome, 5_000, 2)
	seedEntry(t, repo, propertyID, "expense-maintenance", 2_000, 3)
	seedEntry(t, repo, propertyID, "expense-tax", 1_500, 4)
	// other property's entries must not leak into the sums
	seedEntry(t, repo, id.NewID32(), txDomain.CategoryRentalIncome, 99_999, 5)

	income, err := repo.SumIncome(ctx, propertyID)
	if err != nil {
		t.Fatalf("SumIncome: %v", err)
	}
	if income != 15_000 {
		t.Errorf("income = %v, want 15000", income)
	}

	expenses, err := repo.SumExpenses(ctx, propertyID)
	if err != nil {
		t.Fatalf("SumExpenses: %v", err)
	}
	if expenses != 3_500 {
		t.Errorf("expenses = %v, want 3500", expenses)
	}
}

func TestTransactionSumsEmpty(t *testing.T) {
	db := openTransactionTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	income, err := repo.SumIncome(ctx, id.NewID32())
	if err != nil || income != 0 {
		t.Fatalf("SumIncome on empty ledger = %v, %v", income, err)
	}
	expenses, err := repo.SumExpenses(ctx, id.NewID32())
	if err != nil || expenses != 0 {
		t.Fatalf("SumExpenses on empty ledger = %v, %v", expenses, err)
	}
}

func TestTransactionListByProperty(t *testing.T) {
	db := openTransactionTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	propertyID := id.NewID32()
	seedEntry(t, repo, propertyID, "expense-maintenance", 2_000, 20)
	seedEntry(t, repo, propertyID, txDomain.CategoryRentalIncome, 10_000, 5)

	got, err := repo.ListByProperty(ctx, propertyID)
	if err != nil {
		t.Fatalf("ListByProperty: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByProperty returned %d, want 2", len(got))
	}
	if !got[0].OccurredAt.Before(got[1].OccurredAt) {
		t.Errorf("entries not ordered by occurrence: %v, %v", got[0].OccurredAt, got[1].OccurredAt)
	}
}
