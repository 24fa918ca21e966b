package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/models"
)

// ToModelReport converts a domain report to a model report, serializing the
// line-item sections into the JSONB document.
func ToModelReport(d domain.DailyReceivablesReport) (models.DailyReceivablesReport, error) {
	data, err := json.Marshal(d.ReportData)
	if err != nil {
		return models.DailyReceivablesReport{}, fmt.Errorf("failed to marshal report data for %s: %w", d.ReportDate, err)
	}
	return models.DailyReceivablesReport{
		ReportDate:     d.ReportDate,
		OpeningBalance: d.OpeningBalance,
		ClosingBalance: d.ClosingBalance,
		ReportData:     data,
		Status:         string(d.Status),
	}, nil
}

// ToDomainReport converts a model report to a domain report, deserializing
// the JSONB document back into the four sections.
func ToDomainReport(m models.DailyReceivablesReport) (domain.DailyReceivablesReport, error) {
	var data domain.ReportData
	if len(m.ReportData) > 0 {
		if err := json.Unmarshal(m.ReportData, &data); err != nil {
			return domain.DailyReceivablesReport{}, fmt.Errorf("failed to unmarshal report data for %s: %w", m.ReportDate, err)
		}
	}
	data.EnsureSections()
	return domain.DailyReceivablesReport{
		ReportDate:     m.ReportDate,
		OpeningBalance: m.OpeningBalance,
		ClosingBalance: m.ClosingBalance,
		ReportData:     data,
		Status:         domain.ReportStatus(m.Status),
	}, nil
}
