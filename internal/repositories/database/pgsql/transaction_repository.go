package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	"github.com/shopbooks/shopbooks_backend/internal/models"
	"github.com/shopbooks/shopbooks_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger
// transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, account_id, txn_date, debit, credit, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.AccountID,
		modelTxn.Date,
		modelTxn.Debit,
		modelTxn.Credit,
		modelTxn.Details,
		modelTxn.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a single ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, txn_date, debit, credit, details, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var modelTxn models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.AccountID,
		&modelTxn.Date,
		&modelTxn.Debit,
		&modelTxn.Credit,
		&modelTxn.Details,
		&modelTxn.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by id %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactionsByAccount retrieves an account's entries ordered by date
// ascending; entries on the same date keep insertion order.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, txn_date, debit, credit, details, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY txn_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var txn models.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.AccountID,
			&txn.Date,
			&txn.Debit,
			&txn.Credit,
			&txn.Details,
			&txn.CreatedAt,
		)
		return txn, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// UpdateTransaction rewrites the amounts and details of an entry. The date
// and account binding never change after insert.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET debit = $2, credit = $3, details = $4
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.Debit,
		modelTxn.Credit,
		modelTxn.Details,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", modelTxn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a single ledger entry.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
