package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
	"github.com/shopbooks/shopbooks_backend/internal/utils"
)

// ReportService owns the daily receivables reports: the one-per-date upsert,
// line-item edits while the report is a draft, and the draft-to-finished
// transition that makes a report read-only.
type ReportService struct {
	reportRepo portsrepo.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo portsrepo.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

var _ portssvc.ReportSvcFacade = (*ReportService)(nil)

// ListReports returns the date and status of every saved report, most recent
// date first.
func (s *ReportService) ListReports(ctx context.Context) ([]domain.ReportSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summaries, err := s.reportRepo.ListReports(ctx)
	if err != nil {
		logger.Error("Failed to list reports from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if summaries == nil {
		summaries = []domain.ReportSummary{}
	}
	return summaries, nil
}

// GetReportByDate returns the report saved for the given calendar date.
func (s *ReportService) GetReportByDate(ctx context.Context, reportDate string) (*domain.DailyReceivablesReport, error) {
	date, err := utils.NormalizeDate(reportDate)
	if err != nil || date == "" {
		return nil, fmt.Errorf("%w: invalid report date", apperrors.ErrValidation)
	}

	report, err := s.reportRepo.FindReportByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	report.ReportData.EnsureSections()
	return report, nil
}

// UpsertReport saves the report for a date, creating it as a draft on first
// save and replacing the balances and line items afterwards. A finished
// report rejects the write.
func (s *ReportService) UpsertReport(ctx context.Context, req dto.UpsertReportRequest) (*domain.DailyReceivablesReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := utils.NormalizeDate(req.ReportDate)
	if err != nil || date == "" {
		return nil, fmt.Errorf("%w: report date is required", apperrors.ErrValidation)
	}

	report := domain.DailyReceivablesReport{
		ReportDate:     date,
		OpeningBalance: req.OpeningBalance.Decimal,
		ClosingBalance: req.ClosingBalance.Decimal,
		ReportData:     req.ReportData,
		Status:         domain.ReportDraft,
	}
	report.ReportData.EnsureSections()

	existing, err := s.reportRepo.FindReportByDate(ctx, date)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if err := s.reportRepo.SaveReport(ctx, report); err != nil {
			// A concurrent first save can land between the lookup and the
			// insert; the date's unique constraint surfaces it here.
			if !errors.Is(err, apperrors.ErrDuplicate) {
				logger.Error("Failed to save report in repository", slog.String("error", err.Error()), slog.String("report_date", date))
			}
			return nil, err
		}
		logger.Info("Report created", slog.String("report_date", date))
		return &report, nil
	}

	if existing.Status == domain.ReportFinished {
		return nil, fmt.Errorf("%w: report for %s is finished and read-only", apperrors.ErrValidation, date)
	}

	if err := s.reportRepo.UpdateReport(ctx, report); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update report in repository", slog.String("error", err.Error()), slog.String("report_date", date))
		}
		return nil, err
	}

	logger.Info("Report updated", slog.String("report_date", date))
	return &report, nil
}

// AddLineItem appends an empty row to one of the four sections of a draft
// report and persists the grown report.
func (s *ReportService) AddLineItem(ctx context.Context, reportDate string, section string) (*domain.DailyReceivablesReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sec := domain.ReportSection(section)
	if !sec.Valid() {
		return nil, fmt.Errorf("%w: unknown report section %q", apperrors.ErrValidation, section)
	}

	report, err := s.GetReportByDate(ctx, reportDate)
	if err != nil {
		return nil, err
	}
	if report.Status == domain.ReportFinished {
		return nil, fmt.Errorf("%w: report for %s is finished and read-only", apperrors.ErrValidation, report.ReportDate)
	}

	switch sec {
	case domain.SectionCustomers:
		report.ReportData.Customers = append(report.ReportData.Customers, domain.CustomerRow{})
	case domain.SectionDigicelWholesale:
		report.ReportData.DigicelWholesale = append(report.ReportData.DigicelWholesale, domain.WholesaleRow{})
	case domain.SectionMiscSales:
		report.ReportData.MiscSales = append(report.ReportData.MiscSales, domain.MiscSaleRow{})
	case domain.SectionCashPayouts:
		report.ReportData.CashPayouts = append(report.ReportData.CashPayouts, domain.CashPayoutRow{})
	}

	if err := s.reportRepo.UpdateReport(ctx, *report); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to append report line item in repository", slog.String("error", err.Error()), slog.String("report_date", report.ReportDate))
		}
		return nil, err
	}

	logger.Info("Report line item added", slog.String("report_date", report.ReportDate), slog.String("section", section))
	return report, nil
}

// FinishReport moves a report from draft to finished, after which it is
// read-only. Finishing an already-finished report is a no-op success.
func (s *ReportService) FinishReport(ctx context.Context, reportDate string) (*domain.DailyReceivablesReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	report, err := s.GetReportByDate(ctx, reportDate)
	if err != nil {
		return nil, err
	}
	if report.Status == domain.ReportFinished {
		return report, nil
	}

	if err := s.reportRepo.SetReportStatus(ctx, report.ReportDate, domain.ReportFinished); err != nil {
		logger.Error("Failed to finish report in repository", slog.String("error", err.Error()), slog.String("report_date", report.ReportDate))
		return nil, err
	}

	logger.Info("Report finished", slog.String("report_date", report.ReportDate))
	report.Status = domain.ReportFinished
	return report, nil
}

// DeleteReport removes the report for a date regardless of its status.
func (s *ReportService) DeleteReport(ctx context.Context, reportDate string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := utils.NormalizeDate(reportDate)
	if err != nil || date == "" {
		return fmt.Errorf("%w: invalid report date", apperrors.ErrValidation)
	}

	if err := s.reportRepo.DeleteReport(ctx, date); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete report in repository", slog.String("error", err.Error()), slog.String("report_date", date))
		}
		return err
	}

	logger.Info("Report deleted", slog.String("report_date", date))
	return nil
}
