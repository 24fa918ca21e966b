package models

import (
	"github.com/shopspring/decimal"
)

// DailyReceivablesReport is the database row for a daily report, keyed by the
// calendar date. ReportData is the JSONB document holding the four line-item
// sections.
type DailyReceivablesReport struct {
	ReportDate     string          `json:"reportDate"` // Primary Key, YYYY-MM-DD
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	ReportData     []byte          `json:"reportData"`
	Status         string          `json:"status"`
}
