// Package bookkeeping holds the pure derivation functions shared by the
// ledger, cheque and report services. Every derived figure (running balances,
// net-to-payee, row nets, section totals) has exactly one implementation here
// so consumers cannot drift apart.
package bookkeeping

import (
	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// Round2 rounds a money value to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LedgerTotals sums the debit and credit columns over the full transaction
// set.
func LedgerTotals(txns []domain.Transaction) (totalDebits, totalCredits decimal.Decimal) {
	for _, txn := range txns {
		totalDebits = totalDebits.Add(txn.Debit)
		totalCredits = totalCredits.Add(txn.Credit)
	}
	return totalDebits, totalCredits
}

// CarriedForward is the account balance over all transactions to date:
// debits minus credits, rounded to 2 decimals. Positive is a debit balance,
// negative a credit balance.
func CarriedForward(txns []domain.Transaction) decimal.Decimal {
	debits, credits := LedgerTotals(txns)
	return Round2(debits.Sub(credits))
}

// BroughtForward is the balance as of start-of-today: the carried-forward
// rule restricted to transactions dated strictly before today. With no
// prior-dated transactions the figure is zero. The caller supplies today so
// the wall-clock dependency stays at the edge.
func BroughtForward(txns []domain.Transaction, today string) decimal.Decimal {
	prior := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Date < today {
			prior = append(prior, txn)
		}
	}
	if len(prior) == 0 {
		return decimal.Zero
	}
	return CarriedForward(prior)
}

// Balances derives all four balance figures for an account's transaction
// set.
func Balances(txns []domain.Transaction, today string) domain.AccountBalances {
	debits, credits := LedgerTotals(txns)
	return domain.AccountBalances{
		TotalDebits:    Round2(debits),
		TotalCredits:   Round2(credits),
		BroughtForward: BroughtForward(txns, today),
		CarriedForward: Round2(debits.Sub(credits)),
	}
}

// NetToPayee is the amount a payee receives after the admin charge.
func NetToPayee(amount, adminCharge decimal.Decimal) decimal.Decimal {
	return Round2(amount.Sub(adminCharge))
}

// CustomerNet is one receivables row's net: the five credit categories
// summed, less accounts paid.
func CustomerNet(row domain.CustomerRow) decimal.Decimal {
	return row.Digicel.Decimal.
		Add(row.GTT.Decimal).
		Add(row.MMG.Decimal).
		Add(row.Prepaid.Decimal).
		Add(row.OtherCredit.Decimal).
		Sub(row.AccountsPaid.Decimal)
}

// CustomerColumnTotals sums each receivables column over all rows.
func CustomerColumnTotals(rows []domain.CustomerRow) domain.CustomerColumnTotals {
	var t domain.CustomerColumnTotals
	for _, row := range rows {
		t.Digicel = t.Digicel.Add(row.Digicel.Decimal)
		t.GTT = t.GTT.Add(row.GTT.Decimal)
		t.MMG = t.MMG.Add(row.MMG.Decimal)
		t.Prepaid = t.Prepaid.Add(row.Prepaid.Decimal)
		t.OtherCredit = t.OtherCredit.Add(row.OtherCredit.Decimal)
		t.AccountsPaid = t.AccountsPaid.Add(row.AccountsPaid.Decimal)
	}
	return t
}

// NetTotal is the sum of all row nets on the receivables sheet.
func NetTotal(rows []domain.CustomerRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(CustomerNet(row))
	}
	return total
}

// TotalCreditSale sums the five credit categories over all rows; accounts
// paid is excluded.
func TotalCreditSale(rows []domain.CustomerRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Digicel.Decimal).
			Add(row.GTT.Decimal).
			Add(row.MMG.Decimal).
			Add(row.Prepaid.Decimal).
			Add(row.OtherCredit.Decimal)
	}
	return total
}

// WholesaleTotal sums the amount column of the Digicel wholesale section.
func WholesaleTotal(rows []domain.WholesaleRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount.Decimal)
	}
	return total
}

// MiscSalesTotal sums the amount column of the misc sales section.
func MiscSalesTotal(rows []domain.MiscSaleRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount.Decimal)
	}
	return total
}

// CashPayoutsTotal sums the amount column of the cash payouts section.
func CashPayoutsTotal(rows []domain.CashPayoutRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount.Decimal)
	}
	return total
}

// Sale is the day's cash sale: opening balance minus closing balance.
func Sale(openingBalance, closingBalance decimal.Decimal) decimal.Decimal {
	return openingBalance.Sub(closingBalance)
}

// ReportTotals derives every aggregate of a daily receivables report.
func ReportTotals(r domain.DailyReceivablesReport) domain.ReportTotals {
	return domain.ReportTotals{
		Customers:             CustomerColumnTotals(r.ReportData.Customers),
		NetTotal:              NetTotal(r.ReportData.Customers),
		DigicelWholesaleTotal: WholesaleTotal(r.ReportData.DigicelWholesale),
		MiscSalesTotal:        MiscSalesTotal(r.ReportData.MiscSales),
		CashPayoutsTotal:      CashPayoutsTotal(r.ReportData.CashPayouts),
		TotalCreditSale:       TotalCreditSale(r.ReportData.Customers),
		Sale:                  Sale(r.OpeningBalance, r.ClosingBalance),
	}
}
