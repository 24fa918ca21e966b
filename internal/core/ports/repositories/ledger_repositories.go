package repositories

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// AccountRepository persists ledger accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// DeleteAccount removes the account and cascades to its transactions.
	DeleteAccount(ctx context.Context, accountID string) error
}

// TransactionRepository persists the debit/credit entries of accounts.
// Listings are ordered by date ascending, creation order breaking ties.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}
