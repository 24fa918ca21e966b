package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service layer.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	TxnRepo     TransactionRepository
	ChequeRepo  ChequeRepository
	ReportRepo  ReportRepository
}
