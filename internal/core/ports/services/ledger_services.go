package services

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
)

// LedgerSvcFacade is the account-ledger surface consumed by the transport
// layer.
type LedgerSvcFacade interface {
	ListAccounts(ctx context.Context) ([]domain.AccountWithBalance, error)
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error

	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)
	AddTransaction(ctx context.Context, accountID string, req dto.AddTransactionRequest) (*domain.Transaction, error)
	EditTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error

	ComputeBalances(ctx context.Context, accountID string) (*domain.AccountBalances, error)
	BuildStatement(ctx context.Context, accountID, startDate, endDate string) (*domain.AccountStatement, error)
}
