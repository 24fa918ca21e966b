package models

import "time"

// Account is the database row for a ledger account.
type Account struct {
	AccountID string    `json:"accountID"` // Primary Key
	Name      string    `json:"name"`      // Unique
	CreatedAt time.Time `json:"createdAt"`
}
