package services

import (
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos.AccountRepo, repos.TxnRepo),
		Cheque: NewChequeService(repos.ChequeRepo),
		Report: NewReportService(repos.ReportRepo),
	}
}
