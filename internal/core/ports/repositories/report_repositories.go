package repositories

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// ReportRepository persists daily receivables reports, keyed naturally by
// report date. The date's unique constraint is what serializes concurrent
// writers per report.
type ReportRepository interface {
	ListReports(ctx context.Context) ([]domain.ReportSummary, error)
	FindReportByDate(ctx context.Context, reportDate string) (*domain.DailyReceivablesReport, error)
	SaveReport(ctx context.Context, report domain.DailyReceivablesReport) error
	// UpdateReport replaces the balances and line items of a draft report.
	// A finished report is not updated; the repository reports that as a
	// validation failure.
	UpdateReport(ctx context.Context, report domain.DailyReceivablesReport) error
	SetReportStatus(ctx context.Context, reportDate string, status domain.ReportStatus) error
	DeleteReport(ctx context.Context, reportDate string) error
}
