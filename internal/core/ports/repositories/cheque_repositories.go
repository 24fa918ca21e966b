package repositories

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// ChequeRepository persists cheques and their one-to-one detail records,
// both keyed by cheque number.
type ChequeRepository interface {
	SaveCheque(ctx context.Context, cheque domain.Cheque) error
	FindChequeByNumber(ctx context.Context, chequeNumber string) (*domain.Cheque, error)
	ListCheques(ctx context.Context) ([]domain.Cheque, error)
	UpdateChequeStatus(ctx context.Context, chequeNumber string, status domain.ChequeStatus) error
	DeleteCheque(ctx context.Context, chequeNumber string) error

	FindChequeDetail(ctx context.Context, chequeNumber string) (*domain.ChequeDetail, error)
	SaveChequeDetail(ctx context.Context, detail domain.ChequeDetail) error
	// UpdateChequeDetail writes only the changed fields of an existing record.
	UpdateChequeDetail(ctx context.Context, chequeNumber string, changes domain.ChequeDetailChanges) error
}
