package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeStatus is a cheque's position in the presentment lifecycle.
type ChequeStatus string

const (
	Unpresented ChequeStatus = "Unpresented"
	Deposited   ChequeStatus = "Deposited"
	Cleared     ChequeStatus = "Cleared"
	Cancelled   ChequeStatus = "Cancelled"
)

// Valid reports whether s is a member of the status set.
func (s ChequeStatus) Valid() bool {
	switch s {
	case Unpresented, Deposited, Cleared, Cancelled:
		return true
	}
	return false
}

// Cheque is one tracked cheque, keyed naturally by its cheque number.
// NetToPayee is Amount minus AdminCharge unless explicitly supplied.
type Cheque struct {
	ChequeNumber string          `json:"cheque_number"`
	BankDrawn    string          `json:"bank_drawn"`
	Payer        string          `json:"payer"`
	Payee        string          `json:"payee"`
	Amount       decimal.Decimal `json:"amount"`
	AdminCharge  decimal.Decimal `json:"admin_charge"`
	NetToPayee   decimal.Decimal `json:"net_to_payee"`
	DatePosted   string          `json:"date_posted"` // YYYY-MM-DD
	Status       ChequeStatus    `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IDType is the kind of identification captured with a cheque's payer
// details.
type IDType string

const (
	NationalID     IDType = "National ID"
	DriversLicense IDType = "Driver's License"
	Passport       IDType = "Passport"
)

// Valid reports whether t is a member of the identification type set.
func (t IDType) Valid() bool {
	switch t {
	case NationalID, DriversLicense, Passport:
		return true
	}
	return false
}

// ChequeDetail is the optional one-to-one record of payer identification
// attached to a cheque. It is created lazily on the first save; later saves
// are diff-only partial updates.
type ChequeDetail struct {
	ChequeNumber string `json:"cheque_number"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"` // digits only, max 20 chars
	IDType       IDType `json:"id_type"`
	IDNumber     string `json:"id_number"`
	DateOfIssue  string `json:"date_of_issue"`  // YYYY-MM-DD
	DateOfExpiry string `json:"date_of_expiry"` // YYYY-MM-DD
	DateOfBirth  string `json:"date_of_birth"`  // YYYY-MM-DD
}

// IsBlank reports whether every field of the detail record is empty. An
// all-blank record may not be created.
func (d ChequeDetail) IsBlank() bool {
	return d.Address == "" &&
		d.PhoneNumber == "" &&
		d.IDType == "" &&
		d.IDNumber == "" &&
		d.DateOfIssue == "" &&
		d.DateOfExpiry == "" &&
		d.DateOfBirth == ""
}

// ChequeDetailChanges carries only the fields whose normalized value differs
// from the stored record. Nil means unchanged.
type ChequeDetailChanges struct {
	Address      *string
	PhoneNumber  *string
	IDType       *IDType
	IDNumber     *string
	DateOfIssue  *string
	DateOfExpiry *string
	DateOfBirth  *string
}

// Empty reports whether the diff contains no changed fields, in which case an
// update is a no-op rather than an error.
func (c ChequeDetailChanges) Empty() bool {
	return c.Address == nil &&
		c.PhoneNumber == nil &&
		c.IDType == nil &&
		c.IDNumber == nil &&
		c.DateOfIssue == nil &&
		c.DateOfExpiry == nil &&
		c.DateOfBirth == nil
}

// Apply returns a copy of d with the changed fields overwritten.
func (c ChequeDetailChanges) Apply(d ChequeDetail) ChequeDetail {
	if c.Address != nil {
		d.Address = *c.Address
	}
	if c.PhoneNumber != nil {
		d.PhoneNumber = *c.PhoneNumber
	}
	if c.IDType != nil {
		d.IDType = *c.IDType
	}
	if c.IDNumber != nil {
		d.IDNumber = *c.IDNumber
	}
	if c.DateOfIssue != nil {
		d.DateOfIssue = *c.DateOfIssue
	}
	if c.DateOfExpiry != nil {
		d.DateOfExpiry = *c.DateOfExpiry
	}
	if c.DateOfBirth != nil {
		d.DateOfBirth = *c.DateOfBirth
	}
	return d
}
