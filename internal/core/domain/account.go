package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a named business ledger account within the core domain.
// Balances are never stored on the account; they are derived from the
// account's transactions on every read.
type Account struct {
	AccountID string    `json:"id"`   // Primary key (UUID)
	Name      string    `json:"name"` // Unique, trimmed, non-empty
	CreatedAt time.Time `json:"created_at"`
}

// BalanceSide labels which side of the ledger a derived balance falls on.
// Debits minus credits positive is a debit balance, negative a credit balance
// (displayed as an absolute value with this label).
type BalanceSide string

const (
	DebitBalance  BalanceSide = "Debit"
	CreditBalance BalanceSide = "Credit"
)

// AccountBalances holds the derived balance figures for a single account.
// CarriedForward covers the full transaction set; BroughtForward applies the
// same rule restricted to transactions dated strictly before today, so the
// two diverge only when today's-dated transactions exist.
type AccountBalances struct {
	TotalDebits    decimal.Decimal `json:"total_debits"`
	TotalCredits   decimal.Decimal `json:"total_credits"`
	BroughtForward decimal.Decimal `json:"brought_forward"`
	CarriedForward decimal.Decimal `json:"carried_forward"`
}

// Side reports the side of the carried-forward balance.
func (b AccountBalances) Side() BalanceSide {
	if b.CarriedForward.IsNegative() {
		return CreditBalance
	}
	return DebitBalance
}

// AccountWithBalance pairs an account with its carried-forward balance for
// listing views.
type AccountWithBalance struct {
	Account
	Balance decimal.Decimal `json:"balance"`
	Side    BalanceSide     `json:"balance_side"`
}

// AccountStatement is the data behind a date-ranged account report: the
// transactions inside [StartDate, EndDate] plus a totals row scoped to that
// window. Rendering (PDF, tables) is the presentation layer's concern.
type AccountStatement struct {
	AccountID    string          `json:"account_id"`
	AccountName  string          `json:"account_name"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Rows         []Transaction   `json:"rows"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
}
