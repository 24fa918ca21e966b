package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// AddTransactionRequest defines the data needed to record a transaction.
// Exactly one of debit/credit must be non-zero; the unused side is
// normalized to zero.
type AddTransactionRequest struct {
	Date    string        `json:"date"`
	Debit   domain.Amount `json:"debit"`
	Credit  domain.Amount `json:"credit"`
	Details string        `json:"details"`
}

// UpdateTransactionRequest defines the partial update of a transaction.
// The date is not editable through this operation. Supplying neither an
// amount nor details is rejected as having nothing to change.
type UpdateTransactionRequest struct {
	Debit   domain.Amount `json:"debit"`
	Credit  domain.Amount `json:"credit"`
	Details *string       `json:"details"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Date      string          `json:"date"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Details   string          `json:"details"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.TransactionID,
		AccountID: txn.AccountID,
		Date:      txn.Date,
		Debit:     txn.Debit,
		Credit:    txn.Credit,
		Details:   txn.Details,
	}
}

// ToListTransactionsResponse converts a slice of transactions.
func ToListTransactionsResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// StatementParams defines the query parameters of a statement export.
type StatementParams struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

// StatementResponse is the exported date-ranged account report: the rows in
// range plus a totals row scoped to them.
type StatementResponse struct {
	AccountID    string                `json:"account_id"`
	AccountName  string                `json:"account_name"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	Rows         []TransactionResponse `json:"rows"`
	TotalDebits  decimal.Decimal       `json:"total_debits"`
	TotalCredits decimal.Decimal       `json:"total_credits"`
}

// ToStatementResponse converts a domain.AccountStatement to its DTO.
func ToStatementResponse(st *domain.AccountStatement) StatementResponse {
	return StatementResponse{
		AccountID:    st.AccountID,
		AccountName:  st.AccountName,
		StartDate:    st.StartDate,
		EndDate:      st.EndDate,
		Rows:         ToListTransactionsResponse(st.Rows),
		TotalDebits:  st.TotalDebits,
		TotalCredits: st.TotalCredits,
	}
}
