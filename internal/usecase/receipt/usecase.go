package receipt

import (
	"context"
	"errors"
	"time"

	planDomain "aaraazi-backend/internal/domain/plan"
	domain "aaraazi-backend/internal/domain/receipt"
	"aaraazi-backend/internal/domain/uow"
	"aaraazi-backend/internal/metrics"
	"aaraazi-backend/pkg/id"

	"gorm.io/gorm"
)

var (
	ErrInvalidAmount        = errors.New("receipt amount must be positive")
	ErrInvalidMethod        = errors.New("unknown payment method")
	ErrInvalidPurpose       = errors.New("unknown receipt purpose")
	ErrMissingChequeFields  = errors.New("cheque receipts require cheque number, bank and date")
	ErrMissingTransferRef   = errors.New("bank-transfer receipts require bank and reference")
	ErrMissingTransactionID = errors.New("online receipts require a transaction id")
	// ErrNumberConflict means another issuer claimed the same sequence
	// between our count and insert; the request is safe to retry.
	ErrNumberConflict = errors.New("receipt number already claimed, retry")
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx, now: time.Now}
}

func validateMethodFields(in IssueReceiptInput) error {
	switch in.Method {
	case domain.MethodCheque:
		if in.ChequeNumber == "" || in.ChequeBank == "" || in.ChequeDate == nil {
			return ErrMissingChequeFields
		}
	case domain.MethodBankTransfer:
		if in.TransferBank == "" || in.TransferRef == "" {
			return ErrMissingTransferRef
		}
	case domain.MethodOnline:
		if in.TransactionID == "" {
			return ErrMissingTransactionID
		}
	}
	return nil
}

// Issue creates an immutable receipt with the next sequential number and,
// when the payment targets an installment, stamps the receipt id back onto
// it. Numbering reads a non-locking count, so two concurrent issuers can
// both compute the same sequence; the unique index on receipt_number makes
// the loser fail with ErrNumberConflict instead of a duplicate.
func (u *Usecase) Issue(ctx context.Context, in IssueReceiptInput) (*ReceiptDTO, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !in.Method.Valid() {
		return nil, ErrInvalidMethod
	}
	if !in.Purpose.Valid() {
		return nil, ErrInvalidPurpose
	}
	if err := validateMethodFields(in); err != nil {
		return nil, err
	}

	var dto *ReceiptDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		n, err := r.Receipts.Count(ctx)
		if err != nil {
			return err
		}

		rec := &domain.Receipt{
			ReceiptID:     id.NewID32(),
			ReceiptNumber: domain.FormatNumber(u.now().UTC(), n+1),
			Amount:        in.Amount,
			PaymentDate:   in.PaymentDate,
			Method:        in.Method,
			Purpose:       in.Purpose,
			ChequeNumber:  in.ChequeNumber,
			ChequeBank:    in.ChequeBank,
			ChequeDate:    in.ChequeDate,
			TransferBank:  in.TransferBank,
			TransferRef:   in.TransferRef,
			TransactionID: in.TransactionID,
			PlanID:        in.PlanID,
			InstallmentID: in.InstallmentID,
			IssuedBy:      in.IssuedBy,
			IssuedByName:  in.IssuedByName,
			Notes:         in.Notes,
		}
		if err := r.Receipts.Create(ctx, rec); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrNumberConflict
			}
			return err
		}

		if in.PlanID != "" && in.InstallmentID != "" {
			p, err := r.Plans.GetByPlanIDForUpdate(ctx, in.PlanID)
			if err != nil {
				return err
			}
			ins := p.FindInstallment(in.InstallmentID)
			if ins == nil {
				return planDomain.ErrInstallmentNotFound
			}
			ins.ReceiptID = rec.ReceiptID
			if err := r.Plans.SaveInstallment(ctx, ins); err != nil {
				return err
			}
		}

		dto = toDTO(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ReceiptsIssued.Inc()
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, receiptID string) (*ReceiptDTO, error) {
	r, err := u.repo.GetByReceiptID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	return toDTO(r), nil
}
