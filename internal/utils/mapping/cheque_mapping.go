package mapping

import (
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/models"
)

// ToModelCheque converts a domain Cheque to a model Cheque
func ToModelCheque(d domain.Cheque) models.Cheque {
	return models.Cheque{
		ChequeNumber: d.ChequeNumber,
		BankDrawn:    d.BankDrawn,
		Payer:        d.Payer,
		Payee:        d.Payee,
		Amount:       d.Amount,
		AdminCharge:  d.AdminCharge,
		NetToPayee:   d.NetToPayee,
		DatePosted:   d.DatePosted,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainCheque converts a model Cheque to a domain Cheque
func ToDomainCheque(m models.Cheque) domain.Cheque {
	return domain.Cheque{
		ChequeNumber: m.ChequeNumber,
		BankDrawn:    m.BankDrawn,
		Payer:        m.Payer,
		Payee:        m.Payee,
		Amount:       m.Amount,
		AdminCharge:  m.AdminCharge,
		NetToPayee:   m.NetToPayee,
		DatePosted:   m.DatePosted,
		Status:       domain.ChequeStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainChequeSlice converts a slice of model Cheques to a slice of domain Cheques
func ToDomainChequeSlice(ms []models.Cheque) []domain.Cheque {
	ds := make([]domain.Cheque, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCheque(m)
	}
	return ds
}

// ToModelChequeDetail converts a domain ChequeDetail to a model ChequeDetail
func ToModelChequeDetail(d domain.ChequeDetail) models.ChequeDetail {
	return models.ChequeDetail{
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

// ToDomainChequeDetail converts a model ChequeDetail to a domain ChequeDetail
func ToDomainChequeDetail(m models.ChequeDetail) domain.ChequeDetail {
	return domain.ChequeDetail{
		ChequeNumber: m.ChequeNumber,
		Address:      m.Address,
		PhoneNumber:  m.PhoneNumber,
		IDType:       domain.IDType(m.IDType),
		IDNumber:     m.IDNumber,
		DateOfIssue:  m.DateOfIssue,
		DateOfExpiry: m.DateOfExpiry,
		DateOfBirth:  m.DateOfBirth,
	}
}
