package receipt

import "context"

type Repository interface {
	Create(ctx context.Context, r *Receipt) error
	GetByReceiptID(ctx context.Context, receiptID string) (*Receipt, error)
	// Count returns the number of receipts ever issued (drives the
	// sequential part of the receipt number).
	Count(ctx context.Context) (int64, error)
}
