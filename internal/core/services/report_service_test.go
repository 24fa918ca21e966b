package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/core/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
)

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ListReports(ctx context.Context) ([]domain.ReportSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReportSummary), args.Error(1)
}

func (m *MockReportRepository) FindReportByDate(ctx context.Context, reportDate string) (*domain.DailyReceivablesReport, error) {
	args := m.Called(ctx, reportDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReceivablesReport), args.Error(1)
}

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.DailyReceivablesReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) UpdateReport(ctx context.Context, report domain.DailyReceivablesReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) SetReportStatus(ctx context.Context, reportDate string, status domain.ReportStatus) error {
	args := m.Called(ctx, reportDate, status)
	return args.Error(0)
}

func (m *MockReportRepository) DeleteReport(ctx context.Context, reportDate string) error {
	args := m.Called(ctx, reportDate)
	return args.Error(0)
}

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportRepository
	service  portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportRepository)
	suite.service = services.NewReportService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ReportServiceTestSuite) TestUpsertReport_FirstSaveCreatesDraft() {
	ctx := context.Background()
	req := dto.UpsertReportRequest{
		ReportDate:     "2025-05-01",
		OpeningBalance: amt("1000"),
		ClosingBalance: amt("400"),
	}

	suite.mockRepo.On("FindReportByDate", ctx, "2025-05-01").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveReport", ctx, mock.MatchedBy(func(r domain.DailyReceivablesReport) bool {
		return r.ReportDate == "2025-05-01" &&
			r.Status == domain.ReportDraft &&
			r.ReportData.Customers != nil &&
			r.ReportData.CashPayouts != nil
	})).Return(nil).Once()

	report, err := suite.service.UpsertReport(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ReportDraft, report.Status)
	suite.NotNil(report.ReportData.MiscSales)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestUpsertReport_SecondSaveReplacesDraft() {
	ctx := context.Background()
	existing := &domain.DailyReceivablesReport{ReportDate: "2025-05-01", Status: domain.ReportDraft}
	req := dto.UpsertReportRequest{
		ReportDate:     "2025-05-01",
		OpeningBalance: amt("1200"),
	}

	suite.mockRepo.On("FindReportByDate", ctx, "2025-05-01").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateReport", ctx, mock.MatchedBy(func(r domain.DailyReceivablesReport) bool {
		return r.ReportDate == "2025-05-01" && r.OpeningBalance.Equal(decimal.RequireFromString("1200"))
	})).Return(nil).Once()

	report, err := suite.service.UpsertReport(ctx, req)

	suite.Require().NoError(err)
	suite.True(report.OpeningBalance.Equal(decimal.RequireFromString("1200")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestUpsertReport_FinishedIsReadOnly() {
	ctx := context.Background()
	existing := &domain.DailyReceivablesReport{ReportDate: "2025-05-01", Status: domain.ReportFinished}

	suite.mockRepo.On("FindReportByDate", ctx, "2025-05-01").Return(existing, nil).Once()

	report, err := suite.service.UpsertReport(ctx, dto.UpsertReportRequest{ReportDate: "2025-05-01"})

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateReport", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestUpsertReport_MissingDate() {
	ctx := context.Background()

	report, err := suite.service.UpsertReport(ctx, dto.UpsertReportRequest{})

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindReportByDate", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestAddLineItem_AppendsEmptyCustomerRow() {
	ctx := context.Background()
	existing := &domain.DailyReceivablesReport{
		ReportDate: "2025-05-01",
		Status:     domain.ReportDraft,
		ReportData: domain.ReportData{
			Customers: []domain.CustomerRow{{Name: "R. Singh"}},
		},
	}

	suite.mockRepo.On("FindReportByDate", ctx, "2025-05-01").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateReport", ctx, mock.MatchedBy(func(r domain.DailyReceivablesReport) bool {
		return len(r.ReportData.Customers) == 2 && r.ReportData.Customers[1] == (domain.CustomerRow{})
	})).Return(nil).Once()

	report, err := suite.service.AddLineItem(ctx, "2025-05-01", "customers")

	suite.Require().NoError(err)
	suite.Len(report.ReportData.Customers, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestAddLineItem_UnknownSection() {
	ctx := context.Background()

	report, err := suite.service.AddLineItem(ctx, "2025-05-01", "totals")

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindReportByDate", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestAddLineItem_FinishedIsReadOnly() {
	ctx := context.Background()
	existing := &domain.DailyReceivablesReport{ReportDate: "2025-05-01", Status: domain.ReportFinished}

	suite.mockRepo.On("FindReportByDate", ctx, "2025-05-01").Return(existing, nil).Once()

	report, err := suite.service.AddLineItem(ctx, "2025-05-01", "cash_payouts")

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateReport", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestFinishReport_Success() {
	ctx := context.Background()
	existing := &domain.DailyReceivablesReport{ReportDate: "2025-05-01", Status: domain.ReportDraft}

	suite.mockRepo.On("FindReportByDate", ctx, "2025-05-01").Return(existing, nil).Once()
	suite.mockRepo.On("SetReportStatus", ctx, "2025-05-01", domain.ReportFinished).Return(nil).Once()

	report, err := suite.service.FinishReport(ctx, "2025-05-01")

	suite.Require().NoError(err)
	suite.Equal(domain.ReportFinished, report.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestFinishReport_AlreadyFinishedIsNoOp() {
	ctx := context.Background()
	existing := &domain.DailyReceivablesReport{ReportDate: "2025-05-01", Status: domain.ReportFinished}

	suite.mockRepo.On("FindReportByDate", ctx, "2025-05-01").Return(existing, nil).Once()

	report, err := suite.service.FinishReport(ctx, "2025-05-01")

	suite.Require().NoError(err)
	suite.Equal(domain.ReportFinished, report.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetReportStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestGetReportByDate_NormalizesAndFillsSections() {
	ctx := context.Background()
	stored := &domain.DailyReceivablesReport{ReportDate: "2025-05-01", Status: domain.ReportDraft}

	suite.mockRepo.On("FindReportByDate", ctx, "2025-05-01").Return(stored, nil).Once()

	report, err := suite.service.GetReportByDate(ctx, "2025-05-01T00:00:00.000Z")

	suite.Require().NoError(err)
	suite.NotNil(report.ReportData.Customers)
	suite.NotNil(report.ReportData.DigicelWholesale)
	suite.NotNil(report.ReportData.MiscSales)
	suite.NotNil(report.ReportData.CashPayouts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGetReportByDate_InvalidDate() {
	ctx := context.Background()

	report, err := suite.service.GetReportByDate(ctx, "yesterday")

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportServiceTestSuite) TestDeleteReport_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteReport", ctx, "2025-05-01").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteReport(ctx, "2025-05-01")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestListReports_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListReports", ctx).Return([]domain.ReportSummary(nil), nil).Once()

	summaries, err := suite.service.ListReports(ctx)

	suite.Require().NoError(err)
	suite.NotNil(summaries)
	suite.Empty(summaries)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
