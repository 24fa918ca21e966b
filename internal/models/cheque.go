package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cheque is the database row for a registered cheque, keyed by cheque number.
type Cheque struct {
	ChequeNumber string          `json:"chequeNumber"` // Primary Key
	BankDrawn    string          `json:"bankDrawn"`
	Payer        string          `json:"payer"`
	Payee        string          `json:"payee"`
	Amount       decimal.Decimal `json:"amount"`
	AdminCharge  decimal.Decimal `json:"adminCharge"`
	NetToPayee   decimal.Decimal `json:"netToPayee"`
	DatePosted   string          `json:"datePosted"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ChequeDetail is the optional one-to-one payer identification row for a
// cheque.
type ChequeDetail struct {
	ChequeNumber string `json:"chequeNumber"` // Primary Key, FK -> cheques, cascade delete
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	IDType       string `json:"idType"`
	IDNumber     string `json:"idNumber"`
	DateOfIssue  string `json:"dateOfIssue"`
	DateOfExpiry string `json:"dateOfExpiry"`
	DateOfBirth  string `json:"dateOfBirth"`
}
