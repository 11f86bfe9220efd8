package transaction

import (
	"strings"
	"time"
)

// Category tags a property ledger entry. Income entries use
// CategoryRentalIncome; expense entries carry an "expense-" prefix
// (expense-maintenance, expense-tax, ...).
const (
	CategoryRentalIncome = "rental-income"
	ExpensePrefix        = "expense-"
)

func IsExpense(category string) bool { return strings.HasPrefix(category, ExpensePrefix) }

// Transaction is one income or expense entry in a property's ledger.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string    `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	PropertyID    string    `gorm:"size:32;index:idx_transactions_property" json:"property_id"`
	Category      string    `gorm:"size:32;index" json:"category"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	OccurredAt    time.Time `gorm:"type:date;index" json:"occurred_at"`
	Note          string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "property_transactions" }
