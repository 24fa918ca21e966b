package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// CreateChequeRequest defines the data needed to register a cheque.
// NetToPayee is derived from amount minus admin charge unless supplied.
type CreateChequeRequest struct {
	ChequeNumber string         `json:"cheque_number"`
	BankDrawn    string         `json:"bank_drawn"`
	Payer        string         `json:"payer"`
	Payee        string         `json:"payee"`
	Amount       domain.Amount  `json:"amount"`
	AdminCharge  domain.Amount  `json:"admin_charge"`
	NetToPayee   *domain.Amount `json:"net_to_payee"`
	DatePosted   string         `json:"date_posted"`
	Status       string         `json:"status" binding:"omitempty,oneof=Unpresented Deposited Cleared Cancelled"`
}

// UpdateChequeStatusRequest defines the single-field status write.
type UpdateChequeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChequeResponse defines the data returned for a cheque.
type ChequeResponse struct {
	ChequeNumber string          `json:"cheque_number"`
	BankDrawn    string          `json:"bank_drawn"`
	Payer        string          `json:"payer"`
	Payee        string          `json:"payee"`
	Amount       decimal.Decimal `json:"amount"`
	AdminCharge  decimal.Decimal `json:"admin_charge"`
	NetToPayee   decimal.Decimal `json:"net_to_payee"`
	DatePosted   string          `json:"date_posted"`
	Status       string          `json:"status"`
}

// ToChequeResponse converts a domain.Cheque to its DTO.
func ToChequeResponse(c *domain.Cheque) ChequeResponse {
	return ChequeResponse{
		ChequeNumber: c.ChequeNumber,
		BankDrawn:    c.BankDrawn,
		Payer:        c.Payer,
		Payee:        c.Payee,
		Amount:       c.Amount,
		AdminCharge:  c.AdminCharge,
		NetToPayee:   c.NetToPayee,
		DatePosted:   c.DatePosted,
		Status:       string(c.Status),
	}
}

// ToListChequesResponse converts a slice of cheques.
func ToListChequesResponse(cheques []domain.Cheque) []ChequeResponse {
	res := make([]ChequeResponse, len(cheques))
	for i := range cheques {
		res[i] = ToChequeResponse(&cheques[i])
	}
	return res
}

// UpsertChequeDetailsRequest defines the lazy-create / diffed-update write of
// a cheque's payer identification. Pointers distinguish "not supplied" from
// "set to empty": on update only supplied fields participate in the diff.
type UpsertChequeDetailsRequest struct {
	Address      *string `json:"address"`
	PhoneNumber  *string `json:"phone_number"`
	IDType       *string `json:"id_type"` // validated against the ID type set in the service
	IDNumber     *string `json:"id_number"`
	DateOfIssue  *string `json:"date_of_issue"`
	DateOfExpiry *string `json:"date_of_expiry"`
	DateOfBirth  *string `json:"date_of_birth"`
}

// ChequeDetailResponse defines the data returned for a cheque detail record.
// Changed reports whether the write modified anything; a no-op update comes
// back with Changed=false.
type ChequeDetailResponse struct {
	ChequeNumber string `json:"cheque_number"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	IDType       string `json:"id_type"`
	IDNumber     string `json:"id_number"`
	DateOfIssue  string `json:"date_of_issue"`
	DateOfExpiry string `json:"date_of_expiry"`
	DateOfBirth  string `json:"date_of_birth"`
	Changed      *bool  `json:"changed,omitempty"`
}

// ToChequeDetailResponse converts a domain.ChequeDetail to its DTO.
func ToChequeDetailResponse(d *domain.ChequeDetail) ChequeDetailResponse {
	return ChequeDetailResponse{
		ChequeNumber: d.ChequeNumber,
		Address:      d.Address,
		PhoneNumber:  d.PhoneNumber,
		IDType:       string(d.IDType),
		IDNumber:     d.IDNumber,
		DateOfIssue:  d.DateOfIssue,
		DateOfExpiry: d.DateOfExpiry,
		DateOfBirth:  d.DateOfBirth,
	}
}
