package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// UpsertReportRequest defines the natural-key upsert of a daily receivables
// report. Balances and line-item amounts tolerate blank or non-numeric input
// (coerced to zero); missing sections default to empty sequences.
type UpsertReportRequest struct {
	ReportDate     string            `json:"report_date"`
	OpeningBalance domain.Amount     `json:"opening_balance"`
	ClosingBalance domain.Amount     `json:"closing_balance"`
	ReportData     domain.ReportData `json:"report_data"`
}

// AddLineItemRequest names the section an empty row is appended to.
type AddLineItemRequest struct {
	Section string `json:"section" binding:"required"`
}

// ReportSummaryResponse is one row of the report listing.
type ReportSummaryResponse struct {
	ReportDate string `json:"report_date"`
	Status     string `json:"status"`
}

// ToListReportsResponse converts report summaries.
func ToListReportsResponse(summaries []domain.ReportSummary) []ReportSummaryResponse {
	res := make([]ReportSummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = ReportSummaryResponse{ReportDate: s.ReportDate, Status: string(s.Status)}
	}
	return res
}

// ReportTotalsResponse carries every derived figure of a report so read-only
// viewers need no arithmetic of their own.
type ReportTotalsResponse struct {
	Customers             domain.CustomerColumnTotals `json:"customers"`
	NetTotal              decimal.Decimal             `json:"net_total"`
	DigicelWholesaleTotal decimal.Decimal             `json:"digicel_wholesale_total"`
	MiscSalesTotal        decimal.Decimal             `json:"misc_sales_total"`
	CashPayoutsTotal      decimal.Decimal             `json:"cash_payouts_total"`
	TotalCreditSale       decimal.Decimal             `json:"total_credit_sale"`
	Sale                  decimal.Decimal             `json:"sale"`
}

// ReportResponse defines the data returned for a daily receivables report.
type ReportResponse struct {
	ReportDate     string               `json:"report_date"`
	OpeningBalance decimal.Decimal      `json:"opening_balance"`
	ClosingBalance decimal.Decimal      `json:"closing_balance"`
	ReportData     domain.ReportData    `json:"report_data"`
	Status         string               `json:"status"`
	Totals         ReportTotalsResponse `json:"totals"`
}

// ToReportResponse converts a report plus its derived totals to the DTO.
func ToReportResponse(r *domain.DailyReceivablesReport, totals domain.ReportTotals) ReportResponse {
	return ReportResponse{
		ReportDate:     r.ReportDate,
		OpeningBalance: r.OpeningBalance,
		ClosingBalance: r.ClosingBalance,
		ReportData:     r.ReportData,
		Status:         string(r.Status),
		Totals: ReportTotalsResponse{
			Customers:             totals.Customers,
			NetTotal:              totals.NetTotal,
			DigicelWholesaleTotal: totals.DigicelWholesaleTotal,
			MiscSalesTotal:        totals.MiscSalesTotal,
			CashPayoutsTotal:      totals.CashPayoutsTotal,
			TotalCreditSale:       totals.TotalCreditSale,
			Sale:                  totals.Sale,
		},
	}
}
