package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
	"github.com/shopbooks/shopbooks_backend/internal/utils"
	"github.com/shopbooks/shopbooks_backend/internal/utils/bookkeeping"
)

// ChequeService owns the cheque register: the presentment lifecycle of each
// cheque and the optional payer identification record attached to it.
type ChequeService struct {
	chequeRepo portsrepo.ChequeRepository
}

// NewChequeService creates a new ChequeService.
func NewChequeService(chequeRepo portsrepo.ChequeRepository) *ChequeService {
	return &ChequeService{chequeRepo: chequeRepo}
}

var _ portssvc.ChequeSvcFacade = (*ChequeService)(nil)

// ListCheques returns every cheque in the register, most recently posted
// first.
func (s *ChequeService) ListCheques(ctx context.Context) ([]domain.Cheque, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cheques, err := s.chequeRepo.ListCheques(ctx)
	if err != nil {
		logger.Error("Failed to list cheques from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list cheques: %w", err)
	}
	if cheques == nil {
		cheques = []domain.Cheque{}
	}
	return cheques, nil
}

// GetCheque returns a single cheque by its number.
func (s *ChequeService) GetCheque(ctx context.Context, chequeNumber string) (*domain.Cheque, error) {
	return s.chequeRepo.FindChequeByNumber(ctx, strings.TrimSpace(chequeNumber))
}

// CreateCheque registers a cheque. The cheque number is the natural key and
// must be unique; net_to_payee defaults to amount minus admin charge when not
// supplied; status defaults to Unpresented.
func (s *ChequeService) CreateCheque(ctx context.Context, req dto.CreateChequeRequest) (*domain.Cheque, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	chequeNumber := strings.TrimSpace(req.ChequeNumber)
	if chequeNumber == "" {
		return nil, fmt.Errorf("%w: cheque number must not be empty", apperrors.ErrValidation)
	}

	amount := req.Amount.Decimal
	adminCharge := req.AdminCharge.Decimal
	if amount.IsNegative() || adminCharge.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}

	netToPayee := bookkeeping.NetToPayee(amount, adminCharge)
	if req.NetToPayee != nil {
		if req.NetToPayee.Decimal.IsNegative() {
			return nil, fmt.Errorf("%w: net to payee must not be negative", apperrors.ErrValidation)
		}
		netToPayee = bookkeeping.Round2(req.NetToPayee.Decimal)
	}

	datePosted, err := utils.NormalizeDate(req.DatePosted)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if datePosted == "" {
		datePosted = utils.Today()
	}

	status := domain.Unpresented
	if req.Status != "" {
		status = domain.ChequeStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown cheque status %q", apperrors.ErrValidation, req.Status)
		}
	}

	cheque := domain.Cheque{
		ChequeNumber: chequeNumber,
		BankDrawn:    strings.TrimSpace(req.BankDrawn),
		Payer:        strings.TrimSpace(req.Payer),
		Payee:        strings.TrimSpace(req.Payee),
		Amount:       bookkeeping.Round2(amount),
		AdminCharge:  bookkeeping.Round2(adminCharge),
		NetToPayee:   netToPayee,
		DatePosted:   datePosted,
		Status:       status,
		CreatedAt:    time.Now(),
	}

	if err := s.chequeRepo.SaveCheque(ctx, cheque); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save cheque in repository", slog.String("error", err.Error()), slog.String("cheque_number", chequeNumber))
		}
		return nil, err
	}

	logger.Info("Cheque registered", slog.String("cheque_number", chequeNumber), slog.String("status", string(status)))
	return &cheque, nil
}

// DeleteCheque removes a cheque and its detail record, if any.
func (s *ChequeService) DeleteCheque(ctx context.Context, chequeNumber string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.chequeRepo.DeleteCheque(ctx, strings.TrimSpace(chequeNumber)); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete cheque in repository", slog.String("error", err.Error()), slog.String("cheque_number", chequeNumber))
		}
		return err
	}

	logger.Info("Cheque deleted", slog.String("cheque_number", chequeNumber))
	return nil
}

// SetStatus moves a cheque to the given lifecycle status. Any status may
// follow any other; setting the current status again is a no-op success.
func (s *ChequeService) SetStatus(ctx context.Context, chequeNumber string, status string) (*domain.Cheque, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	next := domain.ChequeStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown cheque status %q", apperrors.ErrValidation, status)
	}

	cheque, err := s.chequeRepo.FindChequeByNumber(ctx, strings.TrimSpace(chequeNumber))
	if err != nil {
		return nil, err
	}
	if cheque.Status == next {
		return cheque, nil
	}

	if err := s.chequeRepo.UpdateChequeStatus(ctx, cheque.ChequeNumber, next); err != nil {
		logger.Error("Failed to update cheque status in repository", slog.String("error", err.Error()), slog.String("cheque_number", cheque.ChequeNumber))
		return nil, err
	}

	logger.Info("Cheque status changed",
		slog.String("cheque_number", cheque.ChequeNumber),
		slog.String("from", string(cheque.Status)),
		slog.String("to", string(next)))
	cheque.Status = next
	return cheque, nil
}

// GetDetails returns the payer identification record for a cheque. The cheque
// must exist; a cheque without a saved record yields a not-found error.
func (s *ChequeService) GetDetails(ctx context.Context, chequeNumber string) (*domain.ChequeDetail, error) {
	chequeNumber = strings.TrimSpace(chequeNumber)
	if _, err := s.chequeRepo.FindChequeByNumber(ctx, chequeNumber); err != nil {
		return nil, err
	}
	return s.chequeRepo.FindChequeDetail(ctx, chequeNumber)
}

// UpsertDetails creates the detail record on first save and applies a
// diff-only partial update afterwards. The boolean reports whether anything
// was written; a no-change update succeeds without touching storage.
func (s *ChequeService) UpsertDetails(ctx context.Context, chequeNumber string, req dto.UpsertChequeDetailsRequest) (*domain.ChequeDetail, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	chequeNumber = strings.TrimSpace(chequeNumber)
	if _, err := s.chequeRepo.FindChequeByNumber(ctx, chequeNumber); err != nil {
		return nil, false, err
	}

	incoming, err := normalizeDetailRequest(req)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.chequeRepo.FindChequeDetail(ctx, chequeNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, err
		}

		detail := incoming.Apply(domain.ChequeDetail{ChequeNumber: chequeNumber})
		if detail.IsBlank() {
			return nil, false, fmt.Errorf("%w: cheque details must have at least one field", apperrors.ErrValidation)
		}
		if detail.IDType == "" {
			detail.IDType = domain.NationalID
		}
		if err := s.chequeRepo.SaveChequeDetail(ctx, detail); err != nil {
			logger.Error("Failed to save cheque details in repository", slog.String("error", err.Error()), slog.String("cheque_number", chequeNumber))
			return nil, false, err
		}
		logger.Info("Cheque details created", slog.String("cheque_number", chequeNumber))
		return &detail, true, nil
	}

	changes := diffDetail(*existing, incoming)
	if changes.Empty() {
		return existing, false, nil
	}

	if err := s.chequeRepo.UpdateChequeDetail(ctx, chequeNumber, changes); err != nil {
		logger.Error("Failed to update cheque details in repository", slog.String("error", err.Error()), slog.String("cheque_number", chequeNumber))
		return nil, false, err
	}

	updated := changes.Apply(*existing)
	logger.Info("Cheque details updated", slog.String("cheque_number", chequeNumber))
	return &updated, true, nil
}

// normalizeDetailRequest trims, cleans and validates the supplied fields,
// preserving the supplied-versus-absent distinction of the request.
func normalizeDetailRequest(req dto.UpsertChequeDetailsRequest) (domain.ChequeDetailChanges, error) {
	var out domain.ChequeDetailChanges

	if req.Address != nil {
		v := strings.TrimSpace(*req.Address)
		out.Address = &v
	}
	if req.PhoneNumber != nil {
		v := utils.NormalizePhoneNumber(*req.PhoneNumber)
		out.PhoneNumber = &v
	}
	if req.IDType != nil {
		t := domain.IDType(strings.TrimSpace(*req.IDType))
		if t != "" && !t.Valid() {
			return out, fmt.Errorf("%w: unknown identification type %q", apperrors.ErrValidation, *req.IDType)
		}
		out.IDType = &t
	}
	if req.IDNumber != nil {
		v := strings.TrimSpace(*req.IDNumber)
		out.IDNumber = &v
	}

	for _, f := range []struct {
		src  *string
		dst  **string
		name string
	}{
		{req.DateOfIssue, &out.DateOfIssue, "date of issue"},
		{req.DateOfExpiry, &out.DateOfExpiry, "date of expiry"},
		{req.DateOfBirth, &out.DateOfBirth, "date of birth"},
	} {
		if f.src == nil {
			continue
		}
		v, err := utils.NormalizeDate(*f.src)
		if err != nil {
			return out, fmt.Errorf("%w: invalid %s", apperrors.ErrValidation, f.name)
		}
		*f.dst = &v
	}

	return out, nil
}

// diffDetail keeps only the supplied fields whose normalized value differs
// from the stored record.
func diffDetail(existing domain.ChequeDetail, incoming domain.ChequeDetailChanges) domain.ChequeDetailChanges {
	var out domain.ChequeDetailChanges

	if incoming.Address != nil && *incoming.Address != existing.Address {
		out.Address = incoming.Address
	}
	if incoming.PhoneNumber != nil && *incoming.PhoneNumber != existing.PhoneNumber {
		out.PhoneNumber = incoming.PhoneNumber
	}
	if incoming.IDType != nil && *incoming.IDType != existing.IDType {
		out.IDType = incoming.IDType
	}
	if incoming.IDNumber != nil && *incoming.IDNumber != existing.IDNumber {
		out.IDNumber = incoming.IDNumber
	}
	if incoming.DateOfIssue != nil && *incoming.DateOfIssue != existing.DateOfIssue {
		out.DateOfIssue = incoming.DateOfIssue
	}
	if incoming.DateOfExpiry != nil && *incoming.DateOfExpiry != existing.DateOfExpiry {
		out.DateOfExpiry = incoming.DateOfExpiry
	}
	if incoming.DateOfBirth != nil && *incoming.DateOfBirth != existing.DateOfBirth {
		out.DateOfBirth = incoming.DateOfBirth
	}
	return out
}
