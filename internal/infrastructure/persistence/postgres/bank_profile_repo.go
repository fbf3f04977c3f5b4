package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/port"
)

// BankProfileRepo implements port.BankProfileRepository.
type BankProfileRepo struct {
	pool *pgxpool.Pool
}

// NewBankProfileRepo creates a new PostgreSQL-backed bank profile repository.
func NewBankProfileRepo(pool *pgxpool.Pool) *BankProfileRepo {
	return &BankProfileRepo{pool: pool}
}

// Save persists a bank profile with optimistic locking. Concurrent writers
// racing on the same version lose with a conflict error.
func (r *BankProfileRepo) Save(ctx context.Context, bank model.BankProfile) error {
	query := `
		INSERT INTO bank_profiles (
			id, name, annual_rate_pct, cat, commission_pct,
			max_term_months, max_amount, active,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			name            = EXCLUDED.name,
			annual_rate_pct = EXCLUDED.annual_rate_pct,
			cat             = EXCLUDED.cat,
			commission_pct  = EXCLUDED.commission_pct,
			max_term_months = EXCLUDED.max_term_months,
			max_amount      = EXCLUDED.max_amount,
			active          = EXCLUDED.active,
			version         = bank_profiles.version + 1,
			updated_at      = EXCLUDED.updated_at
		WHERE bank_profiles.version = $9
	`

	var cat any
	if bank.CAT().Valid {
		cat = bank.CAT().Decimal
	}

	tag, err := r.pool.Exec(ctx, query,
		bank.ID(), bank.Name(), bank.AnnualRatePct(), cat, bank.CommissionPct(),
		bank.MaxTermMonths(), bank.MaxAmount(), bank.Active(),
		bank.Version(), bank.CreatedAt(), bank.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save bank profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on bank profile")
	}
	return nil
}

// FindByID retrieves one bank profile.
func (r *BankProfileRepo) FindByID(ctx context.Context, id string) (model.BankProfile, error) {
	query := selectBankProfiles + ` WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)

	bank, err := scanBankProfileRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BankProfile{}, port.ErrBankProfileNotFound
		}
		return model.BankProfile{}, err
	}
	return bank, nil
}

// FindAll retrieves the bank catalog ordered by name, optionally restricted
// to active profiles.
func (r *BankProfileRepo) FindAll(ctx context.Context, activeOnly bool) ([]model.BankProfile, error) {
	query := selectBankProfiles + ` WHERE ($1 = false OR active) ORDER BY name`
	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("query bank profiles: %w", err)
	}
	defer rows.Close()

	var banks []model.BankProfile
	for rows.Next() {
		bank, err := scanBankProfileRow(rows)
		if err != nil {
			return nil, err
		}
		banks = append(banks, bank)
	}
	return banks, rows.Err()
}

const selectBankProfiles = `
	SELECT id, name, annual_rate_pct, cat, commission_pct,
	       max_term_months, max_amount, active,
	       version, created_at, updated_at
	FROM bank_profiles`

type scannable interface {
	Scan(dest ...any) error
}

func scanBankProfileRow(s scannable) (model.BankProfile, error) {
	var (
		id, name             string
		annualRatePct        decimal.Decimal
		cat                  decimal.NullDecimal
		commissionPct        decimal.Decimal
		maxTermMonths        int
		maxAmount            decimal.Decimal
		active               bool
		version              int
		createdAt, updatedAt time.Time
	)

	err := s.Scan(
		&id, &name, &annualRatePct, &cat, &commissionPct,
		&maxTermMonths, &maxAmount, &active,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BankProfile{}, err
		}
		return model.BankProfile{}, fmt.Errorf("scan bank profile: %w", err)
	}

	return model.ReconstructBankProfile(
		id, name, annualRatePct, cat, commissionPct,
		maxTermMonths, maxAmount, active,
		version, createdAt, updatedAt,
	), nil
}
