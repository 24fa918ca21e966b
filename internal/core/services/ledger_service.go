package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
	"github.com/shopbooks/shopbooks_backend/internal/utils"
	"github.com/shopbooks/shopbooks_backend/internal/utils/bookkeeping"
)

// LedgerService owns accounts and their debit/credit transaction history and
// derives all balance figures.
type LedgerService struct {
	accountRepo portsrepo.AccountRepository
	txnRepo     portsrepo.TransactionRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// ListAccounts returns every account with its carried-forward balance.
func (s *LedgerService) ListAccounts(ctx context.Context) ([]domain.AccountWithBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	result := make([]domain.AccountWithBalance, 0, len(accounts))
	for _, acc := range accounts {
		txns, err := s.txnRepo.ListTransactionsByAccount(ctx, acc.AccountID)
		if err != nil {
			logger.Error("Failed to list transactions for balance", slog.String("error", err.Error()), slog.String("account_id", acc.AccountID))
			return nil, fmt.Errorf("failed to compute balance for account %s: %w", acc.AccountID, err)
		}
		balance := bookkeeping.CarriedForward(txns)
		side := domain.DebitBalance
		if balance.IsNegative() {
			side = domain.CreditBalance
		}
		result = append(result, domain.AccountWithBalance{
			Account: acc,
			Balance: balance,
			Side:    side,
		})
	}
	return result, nil
}

// CreateAccount creates a new, empty ledger account. The name is trimmed and
// must be non-empty and unique.
func (s *LedgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}

	account := domain.Account{
		AccountID: uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_name", name))
		}
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("account_name", name))
	return &account, nil
}

// DeleteAccount removes an account and all of its transactions.
func (s *LedgerService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}

// ListTransactions returns an account's transactions ordered by date
// ascending.
func (s *LedgerService) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

// AddTransaction records a debit or credit against an account. Exactly one
// side must be populated; the unused side is normalized to zero.
func (s *LedgerService) AddTransaction(ctx context.Context, accountID string, req dto.AddTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	date, err := utils.NormalizeDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if date == "" {
		return nil, fmt.Errorf("%w: transaction date is required", apperrors.ErrValidation)
	}

	debit := req.Debit.Decimal
	credit := req.Credit.Decimal
	if debit.IsNegative() || credit.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	if debit.IsZero() && credit.IsZero() {
		return nil, fmt.Errorf("%w: either a debit or a credit amount is required", apperrors.ErrValidation)
	}
	if !debit.IsZero() && !credit.IsZero() {
		return nil, fmt.Errorf("%w: a transaction is either a debit or a credit, not both", apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Date:          date,
		Debit:         debit,
		Credit:        credit,
		Details:       strings.TrimSpace(req.Details),
		CreatedAt:     time.Now(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Transaction added", slog.String("transaction_id", txn.TransactionID), slog.String("account_id", accountID))
	return &txn, nil
}

// EditTransaction applies a partial update to a transaction. The date is
// preserved; supplying neither an amount nor details is rejected.
func (s *LedgerService) EditTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	debit := req.Debit.Decimal
	credit := req.Credit.Decimal
	hasDetails := req.Details != nil && strings.TrimSpace(*req.Details) != ""
	if debit.IsZero() && credit.IsZero() && !hasDetails {
		return nil, fmt.Errorf("%w: nothing to change", apperrors.ErrValidation)
	}
	if debit.IsNegative() || credit.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	if !debit.IsZero() && !credit.IsZero() {
		return nil, fmt.Errorf("%w: a transaction is either a debit or a credit, not both", apperrors.ErrValidation)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	// Setting one side always clears the other.
	if !debit.IsZero() {
		txn.Debit = debit
		txn.Credit = decimal.Zero
	} else if !credit.IsZero() {
		txn.Credit = credit
		txn.Debit = decimal.Zero
	}
	if req.Details != nil {
		txn.Details = strings.TrimSpace(*req.Details)
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction removes a single transaction.
func (s *LedgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// ComputeBalances derives the four balance figures for an account. Brought
// forward uses the wall-clock date at query time; the figure intentionally
// moves across calendar days for otherwise-identical data.
func (s *LedgerService) ComputeBalances(ctx context.Context, accountID string) (*domain.AccountBalances, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}

	balances := bookkeeping.Balances(txns, utils.Today())
	return &balances, nil
}

// BuildStatement exports the transactions inside [startDate, endDate]
// inclusive plus a totals row scoped to that window.
func (s *LedgerService) BuildStatement(ctx context.Context, accountID, startDate, endDate string) (*domain.AccountStatement, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	start, err := utils.NormalizeDate(startDate)
	if err != nil || start == "" {
		return nil, fmt.Errorf("%w: invalid statement start date", apperrors.ErrValidation)
	}
	end, err := utils.NormalizeDate(endDate)
	if err != nil || end == "" {
		return nil, fmt.Errorf("%w: invalid statement end date", apperrors.ErrValidation)
	}
	if start > end {
		return nil, fmt.Errorf("%w: statement start date is after end date", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}

	rows := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if utils.DateInRange(txn.Date, start, end) {
			rows = append(rows, txn)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no transactions in range %s to %s", apperrors.ErrNotFound, start, end)
	}

	debits, credits := bookkeeping.LedgerTotals(rows)
	return &domain.AccountStatement{
		AccountID:    account.AccountID,
		AccountName:  account.Name,
		StartDate:    start,
		EndDate:      end,
		Rows:         rows,
		TotalDebits:  bookkeeping.Round2(debits),
		TotalCredits: bookkeeping.Round2(credits),
	}, nil
}
