package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row for a ledger entry. Exactly one of Debit
// and Credit is non-zero; the date is stored as a YYYY-MM-DD string so range
// filters and ordering are plain text comparisons.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key
	AccountID     string          `json:"accountID"`     // FK -> accounts, cascade delete
	Date          string          `json:"date"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Details       string          `json:"details"`
	CreatedAt     time.Time       `json:"createdAt"`
}
