package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required"`
}

// AccountResponse defines the data returned for an account. Balance is the
// carried-forward figure, signed; Side labels which side it falls on.
type AccountResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Side    string          `json:"balance_side"`
}

// ToAccountResponse converts a domain.AccountWithBalance to its DTO.
func ToAccountResponse(acc domain.AccountWithBalance) AccountResponse {
	return AccountResponse{
		ID:      acc.AccountID,
		Name:    acc.Name,
		Balance: acc.Balance,
		Side:    string(acc.Side),
	}
}

// ToListAccountsResponse converts a slice of accounts with balances.
func ToListAccountsResponse(accounts []domain.AccountWithBalance) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return res
}

// BalancesResponse defines the data returned for an account balance query.
type BalancesResponse struct {
	AccountID      string          `json:"account_id"`
	TotalDebits    decimal.Decimal `json:"total_debits"`
	TotalCredits   decimal.Decimal `json:"total_credits"`
	BroughtForward decimal.Decimal `json:"brought_forward"`
	CarriedForward decimal.Decimal `json:"carried_forward"`
	Side           string          `json:"balance_side"`
}

// ToBalancesResponse converts derived balances to their DTO.
func ToBalancesResponse(accountID string, b domain.AccountBalances) BalancesResponse {
	return BalancesResponse{
		AccountID:      accountID,
		TotalDebits:    b.TotalDebits,
		TotalCredits:   b.TotalCredits,
		BroughtForward: b.BroughtForward,
		CarriedForward: b.CarriedForward,
		Side:           string(b.Side()),
	}
}
