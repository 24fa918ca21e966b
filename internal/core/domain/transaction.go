package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single debit or credit entry against an account.
// Exactly one of Debit/Credit is non-zero; setting one side always clears
// the other. Date is a calendar-date string (YYYY-MM-DD) compared lexically.
type Transaction struct {
	TransactionID string          `json:"id"`
	AccountID     string          `json:"account_id"`
	Date          string          `json:"date"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Details       string          `json:"details"`
	CreatedAt     time.Time       `json:"created_at"`
}
