package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	"github.com/shopbooks/shopbooks_backend/internal/models"
	"github.com/shopbooks/shopbooks_backend/internal/utils/mapping"
)

type PgxChequeRepository struct {
	BaseRepository
}

// newPgxChequeRepository creates a new repository for the cheque register.
func newPgxChequeRepository(pool *pgxpool.Pool) portsrepo.ChequeRepository {
	return &PgxChequeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ChequeRepository = (*PgxChequeRepository)(nil)

// SaveCheque inserts a new cheque. The cheque number is the primary key so a
// duplicate surfaces as ErrDuplicate.
func (r *PgxChequeRepository) SaveCheque(ctx context.Context, cheque domain.Cheque) error {
	modelChq := mapping.ToModelCheque(cheque)

	query := `
		INSERT INTO cheques (cheque_number, bank_drawn, payer, payee, amount, admin_charge, net_to_payee, date_posted, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelChq.ChequeNumber,
		modelChq.BankDrawn,
		modelChq.Payer,
		modelChq.Payee,
		modelChq.Amount,
		modelChq.AdminCharge,
		modelChq.NetToPayee,
		modelChq.DatePosted,
		modelChq.Status,
		modelChq.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cheque number %q already registered", apperrors.ErrDuplicate, modelChq.ChequeNumber)
		}
		return fmt.Errorf("failed to save cheque %s: %w", modelChq.ChequeNumber, err)
	}
	return nil
}

// FindChequeByNumber retrieves a cheque by its number.
func (r *PgxChequeRepository) FindChequeByNumber(ctx context.Context, chequeNumber string) (*domain.Cheque, error) {
	query := `
		SELECT cheque_number, bank_drawn, payer, payee, amount, admin_charge, net_to_payee, date_posted, status, created_at
		FROM cheques
		WHERE cheque_number = $1;
	`
	var modelChq models.Cheque
	err := r.Pool.QueryRow(ctx, query, chequeNumber).Scan(
		&modelChq.ChequeNumber,
		&modelChq.BankDrawn,
		&modelChq.Payer,
		&modelChq.Payee,
		&modelChq.Amount,
		&modelChq.AdminCharge,
		&modelChq.NetToPayee,
		&modelChq.DatePosted,
		&modelChq.Status,
		&modelChq.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cheque by number %s: %w", chequeNumber, err)
	}

	domainChq := mapping.ToDomainCheque(modelChq)
	return &domainChq, nil
}

// ListCheques retrieves all cheques, most recently posted first.
func (r *PgxChequeRepository) ListCheques(ctx context.Context) ([]domain.Cheque, error) {
	query := `
		SELECT cheque_number, bank_drawn, payer, payee, amount, admin_charge, net_to_payee, date_posted, status, created_at
		FROM cheques
		ORDER BY date_posted DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cheques: %w", err)
	}
	defer rows.Close()

	modelCheques, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Cheque, error) {
		var chq models.Cheque
		err := row.Scan(
			&chq.ChequeNumber,
			&chq.BankDrawn,
			&chq.Payer,
			&chq.Payee,
			&chq.Amount,
			&chq.AdminCharge,
			&chq.NetToPayee,
			&chq.DatePosted,
			&chq.Status,
			&chq.CreatedAt,
		)
		return chq, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Cheque{}, nil
		}
		return nil, fmt.Errorf("failed to scan cheques: %w", err)
	}

	return mapping.ToDomainChequeSlice(modelCheques), nil
}

// UpdateChequeStatus writes the single status column.
func (r *PgxChequeRepository) UpdateChequeStatus(ctx context.Context, chequeNumber string, status domain.ChequeStatus) error {
	query := `
		UPDATE cheques
		SET status = $2
		WHERE cheque_number = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, chequeNumber, string(status))
	if err != nil {
		return fmt.Errorf("failed to update status of cheque %s: %w", chequeNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCheque removes a cheque; the detail record goes with it via the
// cascade on the foreign key.
func (r *PgxChequeRepository) DeleteCheque(ctx context.Context, chequeNumber string) error {
	query := `
		DELETE FROM cheques
		WHERE cheque_number = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, chequeNumber)
	if err != nil {
		return fmt.Errorf("failed to delete cheque %s: %w", chequeNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindChequeDetail retrieves the payer identification record for a cheque.
func (r *PgxChequeRepository) FindChequeDetail(ctx context.Context, chequeNumber string) (*domain.ChequeDetail, error) {
	query := `
		SELECT cheque_number, address, phone_number, id_type, id_number, date_of_issue, date_of_expiry, date_of_birth
		FROM cheque_details
		WHERE cheque_number = $1;
	`
	var modelDet models.ChequeDetail
	err := r.Pool.QueryRow(ctx, query, chequeNumber).Scan(
		&modelDet.ChequeNumber,
		&modelDet.Address,
		&modelDet.PhoneNumber,
		&modelDet.IDType,
		&modelDet.IDNumber,
		&modelDet.DateOfIssue,
		&modelDet.DateOfExpiry,
		&modelDet.DateOfBirth,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find details of cheque %s: %w", chequeNumber, err)
	}

	domainDet := mapping.ToDomainChequeDetail(modelDet)
	return &domainDet, nil
}

// SaveChequeDetail inserts the one-to-one detail record for a cheque.
func (r *PgxChequeRepository) SaveChequeDetail(ctx context.Context, detail domain.ChequeDetail) error {
	modelDet := mapping.ToModelChequeDetail(detail)

	query := `
		INSERT INTO cheque_details (cheque_number, address, phone_number, id_type, id_number, date_of_issue, date_of_expiry, date_of_birth)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelDet.ChequeNumber,
		modelDet.Address,
		modelDet.PhoneNumber,
		modelDet.IDType,
		modelDet.IDNumber,
		modelDet.DateOfIssue,
		modelDet.DateOfExpiry,
		modelDet.DateOfBirth,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: details for cheque %q already exist", apperrors.ErrDuplicate, modelDet.ChequeNumber)
		}
		return fmt.Errorf("failed to save details of cheque %s: %w", modelDet.ChequeNumber, err)
	}
	return nil
}

// UpdateChequeDetail writes only the changed columns of an existing detail
// record, building the SET clause from the non-nil fields of the diff.
func (r *PgxChequeRepository) UpdateChequeDetail(ctx context.Context, chequeNumber string, changes domain.ChequeDetailChanges) error {
	setClauses := []string{}
	args := []interface{}{chequeNumber}
	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if changes.Address != nil {
		addSet("address", *changes.Address)
	}
	if changes.PhoneNumber != nil {
		addSet("phone_number", *changes.PhoneNumber)
	}
	if changes.IDType != nil {
		addSet("id_type", string(*changes.IDType))
	}
	if changes.IDNumber != nil {
		addSet("id_number", *changes.IDNumber)
	}
	if changes.DateOfIssue != nil {
		addSet("date_of_issue", *changes.DateOfIssue)
	}
	if changes.DateOfExpiry != nil {
		addSet("date_of_expiry", *changes.DateOfExpiry)
	}
	if changes.DateOfBirth != nil {
		addSet("date_of_birth", *changes.DateOfBirth)
	}

	if len(setClauses) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		UPDATE cheque_details
		SET %s
		WHERE cheque_number = $1;
	`, strings.Join(setClauses, ", "))

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update details of cheque %s: %w", chequeNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
