package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ReportStatus is the lifecycle state of a daily receivables report. A
// finished report is read-only; only draft reports accept edits.
type ReportStatus string

const (
	ReportDraft    ReportStatus = "draft"
	ReportFinished ReportStatus = "finished"
)

// ReportSection names one of the four ordered line-item sections of a daily
// receivables report.
type ReportSection string

const (
	SectionCustomers        ReportSection = "customers"
	SectionDigicelWholesale ReportSection = "digicel_wholesale"
	SectionMiscSales        ReportSection = "misc_sales"
	SectionCashPayouts      ReportSection = "cash_payouts"
)

// Valid reports whether s names a known section.
func (s ReportSection) Valid() bool {
	switch s {
	case SectionCustomers, SectionDigicelWholesale, SectionMiscSales, SectionCashPayouts:
		return true
	}
	return false
}

// CustomerRow is one receivables-sheet row: a customer's credit across the
// six categories. Net per row is the five credit categories summed, less
// accounts paid.
type CustomerRow struct {
	Name         string `json:"name"`
	Digicel      Amount `json:"digicel"`
	GTT          Amount `json:"gtt"`
	MMG          Amount `json:"mmg"`
	Prepaid      Amount `json:"prepaid"`
	OtherCredit  Amount `json:"other_credit"`
	AccountsPaid Amount `json:"accounts_paid"`
}

// WholesaleRow is one Digicel wholesale entry.
type WholesaleRow struct {
	Agent  string `json:"agent"`
	Amount Amount `json:"amount"`
}

// MiscSaleRow is one miscellaneous sale entry.
type MiscSaleRow struct {
	Particulars string `json:"particulars"`
	Amount      Amount `json:"amount"`
}

// CashPayoutRow is one cash payout entry.
type CashPayoutRow struct {
	Details string `json:"details"`
	Amount  Amount `json:"amount"`
}

// ReportData holds the four ordered line-item sections. Rows are append-only
// from the client's perspective; edits address a row by its position.
type ReportData struct {
	Customers        []CustomerRow   `json:"customers"`
	DigicelWholesale []WholesaleRow  `json:"digicel_wholesale"`
	MiscSales        []MiscSaleRow   `json:"misc_sales"`
	CashPayouts      []CashPayoutRow `json:"cash_payouts"`
}

// UnmarshalJSON implements json.Unmarshaler with any section that is not
// sequence-shaped (an object, a string, null) coerced to an empty sequence,
// the same tolerance Amount extends to scalar cells.
func (d *ReportData) UnmarshalJSON(data []byte) error {
	var raw struct {
		Customers        json.RawMessage `json:"customers"`
		DigicelWholesale json.RawMessage `json:"digicel_wholesale"`
		MiscSales        json.RawMessage `json:"misc_sales"`
		CashPayouts      json.RawMessage `json:"cash_payouts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*d = ReportData{}
		d.EnsureSections()
		return nil
	}
	d.Customers = decodeSection[CustomerRow](raw.Customers)
	d.DigicelWholesale = decodeSection[WholesaleRow](raw.DigicelWholesale)
	d.MiscSales = decodeSection[MiscSaleRow](raw.MiscSales)
	d.CashPayouts = decodeSection[CashPayoutRow](raw.CashPayouts)
	return nil
}

// decodeSection parses one section array; absent or non-array input becomes
// an empty sequence.
func decodeSection[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil || rows == nil {
		return []T{}
	}
	return rows
}

// EnsureSections replaces nil sections with empty ordered sequences.
func (d *ReportData) EnsureSections() {
	if d.Customers == nil {
		d.Customers = []CustomerRow{}
	}
	if d.DigicelWholesale == nil {
		d.DigicelWholesale = []WholesaleRow{}
	}
	if d.MiscSales == nil {
		d.MiscSales = []MiscSaleRow{}
	}
	if d.CashPayouts == nil {
		d.CashPayouts = []CashPayoutRow{}
	}
}

// DailyReceivablesReport is the one-per-calendar-day cash receivables report,
// keyed naturally by ReportDate.
type DailyReceivablesReport struct {
	ReportDate     string          `json:"report_date"` // YYYY-MM-DD, unique
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	ReportData     ReportData      `json:"report_data"`
	Status         ReportStatus    `json:"status"`
}

// ReportSummary is the listing shape: which dates have reports, and whether
// each is still editable.
type ReportSummary struct {
	ReportDate string       `json:"report_date"`
	Status     ReportStatus `json:"status"`
}

// CustomerColumnTotals holds the per-column sums over the receivables sheet.
type CustomerColumnTotals struct {
	Digicel      decimal.Decimal `json:"digicel"`
	GTT          decimal.Decimal `json:"gtt"`
	MMG          decimal.Decimal `json:"mmg"`
	Prepaid      decimal.Decimal `json:"prepaid"`
	OtherCredit  decimal.Decimal `json:"other_credit"`
	AccountsPaid decimal.Decimal `json:"accounts_paid"`
}

// ReportTotals aggregates every derived figure of a report. All values come
// from the bookkeeping package's pure derivation functions.
type ReportTotals struct {
	Customers             CustomerColumnTotals `json:"customers"`
	NetTotal              decimal.Decimal      `json:"net_total"`
	DigicelWholesaleTotal decimal.Decimal      `json:"digicel_wholesale_total"`
	MiscSalesTotal        decimal.Decimal      `json:"misc_sales_total"`
	CashPayoutsTotal      decimal.Decimal      `json:"cash_payouts_total"`
	TotalCreditSale       decimal.Decimal      `json:"total_credit_sale"`
	Sale                  decimal.Decimal      `json:"sale"`
}
