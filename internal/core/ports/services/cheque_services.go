package services

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
)

// ChequeSvcFacade is the cheque-register surface consumed by the transport
// layer.
type ChequeSvcFacade interface {
	ListCheques(ctx context.Context) ([]domain.Cheque, error)
	GetCheque(ctx context.Context, chequeNumber string) (*domain.Cheque, error)
	CreateCheque(ctx context.Context, req dto.CreateChequeRequest) (*domain.Cheque, error)
	DeleteCheque(ctx context.Context, chequeNumber string) error
	SetStatus(ctx context.Context, chequeNumber string, status string) (*domain.Cheque, error)

	GetDetails(ctx context.Context, chequeNumber string) (*domain.ChequeDetail, error)
	// UpsertDetails lazily creates the detail record, or applies a diff-only
	// partial update. The boolean reports whether anything changed; an empty
	// diff is a no-op, not an error.
	UpsertDetails(ctx context.Context, chequeNumber string, req dto.UpsertChequeDetailsRequest) (*domain.ChequeDetail, bool, error)
}
