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

// --- Mock ChequeRepository ---
type MockChequeRepository struct {
	mock.Mock
}

func (m *MockChequeRepository) SaveCheque(ctx context.Context, cheque domain.Cheque) error {
	args := m.Called(ctx, cheque)
	return args.Error(0)
}

func (m *MockChequeRepository) FindChequeByNumber(ctx context.Context, chequeNumber string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeRepository) ListCheques(ctx context.Context) ([]domain.Cheque, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cheque), args.Error(1)
}

func (m *MockChequeRepository) UpdateChequeStatus(ctx context.Context, chequeNumber string, status domain.ChequeStatus) error {
	args := m.Called(ctx, chequeNumber, status)
	return args.Error(0)
}

func (m *MockChequeRepository) DeleteCheque(ctx context.Context, chequeNumber string) error {
	args := m.Called(ctx, chequeNumber)
	return args.Error(0)
}

func (m *MockChequeRepository) FindChequeDetail(ctx context.Context, chequeNumber string) (*domain.ChequeDetail, error) {
	args := m.Called(ctx, chequeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChequeDetail), args.Error(1)
}

func (m *MockChequeRepository) SaveChequeDetail(ctx context.Context, detail domain.ChequeDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockChequeRepository) UpdateChequeDetail(ctx context.Context, chequeNumber string, changes domain.ChequeDetailChanges) error {
	args := m.Called(ctx, chequeNumber, changes)
	return args.Error(0)
}

// --- Test Suite ---
type ChequeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockChequeRepository
	service  portssvc.ChequeSvcFacade
}

func (suite *ChequeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockChequeRepository)
	suite.service = services.NewChequeService(suite.mockRepo)
}

func strptr(s string) *string { return &s }

// --- Test Cases ---

func (suite *ChequeServiceTestSuite) TestCreateCheque_DerivesNetToPayee() {
	ctx := context.Background()
	req := dto.CreateChequeRequest{
		ChequeNumber: "CHQ-1001",
		BankDrawn:    "Republic Bank",
		Payer:        "J. Persaud",
		Payee:        "Shop",
		Amount:       amt("500"),
		AdminCharge:  amt("25"),
		DatePosted:   "2025-04-01",
	}

	suite.mockRepo.On("SaveCheque", ctx, mock.MatchedBy(func(c domain.Cheque) bool {
		return c.ChequeNumber == "CHQ-1001" &&
			c.NetToPayee.Equal(decimal.RequireFromString("475")) &&
			c.Status == domain.Unpresented
	})).Return(nil).Once()

	cheque, err := suite.service.CreateCheque(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(cheque)
	suite.True(cheque.NetToPayee.Equal(decimal.RequireFromString("475")))
	suite.Equal(domain.Unpresented, cheque.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestCreateCheque_ExplicitNetToPayee() {
	ctx := context.Background()
	net := amt("480")
	req := dto.CreateChequeRequest{
		ChequeNumber: "CHQ-1002",
		Amount:       amt("500"),
		AdminCharge:  amt("25"),
		NetToPayee:   &net,
		DatePosted:   "2025-04-01",
	}

	suite.mockRepo.On("SaveCheque", ctx, mock.MatchedBy(func(c domain.Cheque) bool {
		return c.NetToPayee.Equal(decimal.RequireFromString("480"))
	})).Return(nil).Once()

	cheque, err := suite.service.CreateCheque(ctx, req)

	suite.Require().NoError(err)
	suite.True(cheque.NetToPayee.Equal(decimal.RequireFromString("480")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestCreateCheque_EmptyNumber() {
	ctx := context.Background()

	cheque, err := suite.service.CreateCheque(ctx, dto.CreateChequeRequest{Amount: amt("100")})

	suite.Require().Error(err)
	suite.Nil(cheque)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheque", mock.Anything, mock.Anything)
}

func (suite *ChequeServiceTestSuite) TestCreateCheque_DuplicateNumber() {
	ctx := context.Background()

	suite.mockRepo.On("SaveCheque", ctx, mock.AnythingOfType("domain.Cheque")).Return(apperrors.ErrDuplicate).Once()

	cheque, err := suite.service.CreateCheque(ctx, dto.CreateChequeRequest{
		ChequeNumber: "CHQ-1001",
		Amount:       amt("100"),
		DatePosted:   "2025-04-01",
	})

	suite.Require().Error(err)
	suite.Nil(cheque)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestSetStatus_Success() {
	ctx := context.Background()
	existing := &domain.Cheque{ChequeNumber: "CHQ-1001", Status: domain.Unpresented}

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-1001").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateChequeStatus", ctx, "CHQ-1001", domain.Deposited).Return(nil).Once()

	cheque, err := suite.service.SetStatus(ctx, "CHQ-1001", "Deposited")

	suite.Require().NoError(err)
	suite.Equal(domain.Deposited, cheque.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestSetStatus_SameStatusIsNoOp() {
	ctx := context.Background()
	existing := &domain.Cheque{ChequeNumber: "CHQ-1001", Status: domain.Deposited}

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-1001").Return(existing, nil).Once()

	cheque, err := suite.service.SetStatus(ctx, "CHQ-1001", "Deposited")

	suite.Require().NoError(err)
	suite.Equal(domain.Deposited, cheque.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateChequeStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChequeServiceTestSuite) TestSetStatus_UnknownStatus() {
	ctx := context.Background()

	cheque, err := suite.service.SetStatus(ctx, "CHQ-1001", "Bounced")

	suite.Require().Error(err)
	suite.Nil(cheque)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindChequeByNumber", mock.Anything, mock.Anything)
}

func (suite *ChequeServiceTestSuite) TestUpsertDetails_FirstSaveCreates() {
	ctx := context.Background()

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-1001").Return(&domain.Cheque{ChequeNumber: "CHQ-1001"}, nil).Once()
	suite.mockRepo.On("FindChequeDetail", ctx, "CHQ-1001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveChequeDetail", ctx, mock.MatchedBy(func(d domain.ChequeDetail) bool {
		return d.ChequeNumber == "CHQ-1001" &&
			d.PhoneNumber == "6001234" &&
			d.IDType == domain.NationalID
	})).Return(nil).Once()

	detail, changed, err := suite.service.UpsertDetails(ctx, "CHQ-1001", dto.UpsertChequeDetailsRequest{
		Address:     strptr("12 Main St"),
		PhoneNumber: strptr("(600)-1234"),
		IDType:      strptr("National ID"),
	})

	suite.Require().NoError(err)
	suite.True(changed)
	suite.Equal("6001234", detail.PhoneNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestUpsertDetails_FirstSaveDefaultsIDType() {
	ctx := context.Background()

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-1001").Return(&domain.Cheque{ChequeNumber: "CHQ-1001"}, nil).Once()
	suite.mockRepo.On("FindChequeDetail", ctx, "CHQ-1001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveChequeDetail", ctx, mock.MatchedBy(func(d domain.ChequeDetail) bool {
		return d.IDType == domain.NationalID && d.Address == "12 Main St"
	})).Return(nil).Once()

	detail, changed, err := suite.service.UpsertDetails(ctx, "CHQ-1001", dto.UpsertChequeDetailsRequest{
		Address: strptr("12 Main St"),
	})

	suite.Require().NoError(err)
	suite.True(changed)
	suite.Equal(domain.NationalID, detail.IDType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestUpsertDetails_IDTypeOnlyFirstSave() {
	ctx := context.Background()

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-1001").Return(&domain.Cheque{ChequeNumber: "CHQ-1001"}, nil).Once()
	suite.mockRepo.On("FindChequeDetail", ctx, "CHQ-1001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveChequeDetail", ctx, mock.MatchedBy(func(d domain.ChequeDetail) bool {
		return d.IDType == domain.Passport && d.Address == ""
	})).Return(nil).Once()

	detail, changed, err := suite.service.UpsertDetails(ctx, "CHQ-1001", dto.UpsertChequeDetailsRequest{
		IDType: strptr("Passport"),
	})

	suite.Require().NoError(err)
	suite.True(changed)
	suite.Equal(domain.Passport, detail.IDType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestUpsertDetails_AllBlankFirstSave() {
	ctx := context.Background()

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-1001").Return(&domain.Cheque{ChequeNumber: "CHQ-1001"}, nil).Once()
	suite.mockRepo.On("FindChequeDetail", ctx, "CHQ-1001").Return(nil, apperrors.ErrNotFound).Once()

	detail, changed, err := suite.service.UpsertDetails(ctx, "CHQ-1001", dto.UpsertChequeDetailsRequest{
		Address: strptr("   "),
	})

	suite.Require().Error(err)
	suite.Nil(detail)
	suite.False(changed)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveChequeDetail", mock.Anything, mock.Anything)
}

func (suite *ChequeServiceTestSuite) TestUpsertDetails_DiffOnlyUpdate() {
	ctx := context.Background()
	existing := &domain.ChequeDetail{
		ChequeNumber: "CHQ-1001",
		Address:      "12 Main St",
		PhoneNumber:  "6001234",
	}

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-1001").Return(&domain.Cheque{ChequeNumber: "CHQ-1001"}, nil).Once()
	suite.mockRepo.On("FindChequeDetail", ctx, "CHQ-1001").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateChequeDetail", ctx, "CHQ-1001", mock.MatchedBy(func(c domain.ChequeDetailChanges) bool {
		// Address matches the stored record so only the phone participates.
		return c.Address == nil && c.PhoneNumber != nil && *c.PhoneNumber == "6005678"
	})).Return(nil).Once()

	detail, changed, err := suite.service.UpsertDetails(ctx, "CHQ-1001", dto.UpsertChequeDetailsRequest{
		Address:     strptr("12 Main St"),
		PhoneNumber: strptr("600-5678"),
	})

	suite.Require().NoError(err)
	suite.True(changed)
	suite.Equal("6005678", detail.PhoneNumber)
	suite.Equal("12 Main St", detail.Address)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestUpsertDetails_NoChangeIsNoOp() {
	ctx := context.Background()
	existing := &domain.ChequeDetail{
		ChequeNumber: "CHQ-1001",
		Address:      "12 Main St",
	}

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-1001").Return(&domain.Cheque{ChequeNumber: "CHQ-1001"}, nil).Once()
	suite.mockRepo.On("FindChequeDetail", ctx, "CHQ-1001").Return(existing, nil).Once()

	detail, changed, err := suite.service.UpsertDetails(ctx, "CHQ-1001", dto.UpsertChequeDetailsRequest{
		Address: strptr("12 Main St"),
	})

	suite.Require().NoError(err)
	suite.False(changed)
	suite.Equal(existing, detail)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateChequeDetail", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChequeServiceTestSuite) TestUpsertDetails_UnknownIDType() {
	ctx := context.Background()

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-1001").Return(&domain.Cheque{ChequeNumber: "CHQ-1001"}, nil).Once()

	detail, changed, err := suite.service.UpsertDetails(ctx, "CHQ-1001", dto.UpsertChequeDetailsRequest{
		IDType: strptr("Voter Card"),
	})

	suite.Require().Error(err)
	suite.Nil(detail)
	suite.False(changed)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ChequeServiceTestSuite) TestGetDetails_ChequeNotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindChequeByNumber", ctx, "CHQ-9999").Return(nil, apperrors.ErrNotFound).Once()

	detail, err := suite.service.GetDetails(ctx, "CHQ-9999")

	suite.Require().Error(err)
	suite.Nil(detail)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindChequeDetail", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestChequeService(t *testing.T) {
	suite.Run(t, new(ChequeServiceTestSuite))
}
