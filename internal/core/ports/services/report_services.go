package services

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
)

// ReportSvcFacade is the daily receivables report surface consumed by the
// transport layer.
type ReportSvcFacade interface {
	ListReports(ctx context.Context) ([]domain.ReportSummary, error)
	GetReportByDate(ctx context.Context, reportDate string) (*domain.DailyReceivablesReport, error)
	UpsertReport(ctx context.Context, req dto.UpsertReportRequest) (*domain.DailyReceivablesReport, error)
	AddLineItem(ctx context.Context, reportDate string, section string) (*domain.DailyReceivablesReport, error)
	FinishReport(ctx context.Context, reportDate string) (*domain.DailyReceivablesReport, error)
	DeleteReport(ctx context.Context, reportDate string) error
}
