package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	"github.com/shopbooks/shopbooks_backend/internal/models"
	"github.com/shopbooks/shopbooks_backend/internal/utils/mapping"
)

type PgxReportRepository struct {
	BaseRepository
}

// newPgxReportRepository creates a new repository for daily receivables
// reports.
func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepository {
	return &PgxReportRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportRepository = (*PgxReportRepository)(nil)

// ListReports retrieves the date and status of every report, most recent
// first.
func (r *PgxReportRepository) ListReports(ctx context.Context) ([]domain.ReportSummary, error) {
	query := `
		SELECT report_date, status
		FROM daily_receivables_reports
		ORDER BY report_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ReportSummary, error) {
		var summary domain.ReportSummary
		var status string
		err := row.Scan(&summary.ReportDate, &status)
		summary.Status = domain.ReportStatus(status)
		return summary, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ReportSummary{}, nil
		}
		return nil, fmt.Errorf("failed to scan reports: %w", err)
	}

	return summaries, nil
}

// FindReportByDate retrieves the report for a calendar date.
func (r *PgxReportRepository) FindReportByDate(ctx context.Context, reportDate string) (*domain.DailyReceivablesReport, error) {
	query := `
		SELECT report_date, opening_balance, closing_balance, report_data, status
		FROM daily_receivables_reports
		WHERE report_date = $1;
	`
	var modelRep models.DailyReceivablesReport
	err := r.Pool.QueryRow(ctx, query, reportDate).Scan(
		&modelRep.ReportDate,
		&modelRep.OpeningBalance,
		&modelRep.ClosingBalance,
		&modelRep.ReportData,
		&modelRep.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find report for %s: %w", reportDate, err)
	}

	domainRep, err := mapping.ToDomainReport(modelRep)
	if err != nil {
		return nil, err
	}
	return &domainRep, nil
}

// SaveReport inserts a new report. The date is the primary key so a
// concurrent first save surfaces as ErrDuplicate.
func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.DailyReceivablesReport) error {
	modelRep, err := mapping.ToModelReport(report)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO daily_receivables_reports (report_date, opening_balance, closing_balance, report_data, status)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err = r.Pool.Exec(ctx, query,
		modelRep.ReportDate,
		modelRep.OpeningBalance,
		modelRep.ClosingBalance,
		modelRep.ReportData,
		modelRep.Status,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: report for %s already exists", apperrors.ErrDuplicate, modelRep.ReportDate)
		}
		return fmt.Errorf("failed to save report for %s: %w", modelRep.ReportDate, err)
	}
	return nil
}

// UpdateReport replaces the balances and line items of a draft report. The
// status guard lives in the statement itself so a finish racing this write
// cannot slip an edit into a finished report.
func (r *PgxReportRepository) UpdateReport(ctx context.Context, report domain.DailyReceivablesReport) error {
	modelRep, err := mapping.ToModelReport(report)
	if err != nil {
		return err
	}

	query := `
		UPDATE daily_receivables_reports
		SET opening_balance = $2, closing_balance = $3, report_data = $4
		WHERE report_date = $1 AND status = 'draft';
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelRep.ReportDate,
		modelRep.OpeningBalance,
		modelRep.ClosingBalance,
		modelRep.ReportData,
	)
	if err != nil {
		return fmt.Errorf("failed to update report for %s: %w", modelRep.ReportDate, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the report vanished or it is already finished; tell them
		// apart for the caller.
		var status string
		err := r.Pool.QueryRow(ctx, `SELECT status FROM daily_receivables_reports WHERE report_date = $1;`, modelRep.ReportDate).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check status of report for %s: %w", modelRep.ReportDate, err)
		}
		return fmt.Errorf("%w: report for %s is finished and read-only", apperrors.ErrValidation, modelRep.ReportDate)
	}
	return nil
}

// SetReportStatus writes the single status column.
func (r *PgxReportRepository) SetReportStatus(ctx context.Context, reportDate string, status domain.ReportStatus) error {
	query := `
		UPDATE daily_receivables_reports
		SET status = $2
		WHERE report_date = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, reportDate, string(status))
	if err != nil {
		return fmt.Errorf("failed to set status of report for %s: %w", reportDate, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteReport removes the report for a date.
func (r *PgxReportRepository) DeleteReport(ctx context.Context, reportDate string) error {
	query := `
		DELETE FROM daily_receivables_reports
		WHERE report_date = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, reportDate)
	if err != nil {
		return fmt.Errorf("failed to delete report for %s: %w", reportDate, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
