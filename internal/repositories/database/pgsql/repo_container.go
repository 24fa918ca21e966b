package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	txnRepo := newPgxTransactionRepository(dbPool)
	chequeRepo := newPgxChequeRepository(dbPool)
	reportRepo := newPgxReportRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		TxnRepo:     txnRepo,
		ChequeRepo:  chequeRepo,
		ReportRepo:  reportRepo,
	}
}
