package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/event"
	"github.com/crisgp1/cliqueatools-sub003/pkg/events"
)

// ---------------------------------------------------------------------------
// BankProfile aggregate root (bank catalog)
// ---------------------------------------------------------------------------

// BankProfile is the rate/commission/term profile of one financing bank.
// It is an immutable aggregate: mutations return a new copy. The comparison
// engine only ever reads it.
type BankProfile struct {
	id            string
	name          string
	annualRatePct decimal.Decimal     // nominal annual interest rate, percent
	cat           decimal.NullDecimal // annual total cost, percent; invalid when unreported
	commissionPct decimal.Decimal     // opening commission, percent of principal
	maxTermMonths int
	maxAmount     decimal.Decimal // maximum financeable amount; zero means no cap
	active        bool
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []events.DomainEvent
}

// BankProfileParams groups the editable fields of a bank profile.
type BankProfileParams struct {
	Name          string
	AnnualRatePct decimal.Decimal
	CAT           decimal.NullDecimal
	CommissionPct decimal.Decimal
	MaxTermMonths int
	MaxAmount     decimal.Decimal
}

func (p BankProfileParams) validate() error {
	if p.Name == "" {
		return errors.New("bank name is required")
	}
	if p.AnnualRatePct.IsNegative() {
		return errors.New("annual rate must not be negative")
	}
	if p.CAT.Valid && p.CAT.Decimal.IsNegative() {
		return errors.New("CAT must not be negative")
	}
	if p.CommissionPct.IsNegative() {
		return errors.New("commission must not be negative")
	}
	if p.MaxTermMonths <= 0 {
		return errors.New("maximum term must be positive")
	}
	if p.MaxAmount.IsNegative() {
		return errors.New("maximum amount must not be negative")
	}
	return nil
}

// NewBankProfile creates an active bank profile and records a created event.
func NewBankProfile(params BankProfileParams, now time.Time) (BankProfile, error) {
	if err := params.validate(); err != nil {
		return BankProfile{}, err
	}

	id := uuid.New().String()
	b := BankProfile{
		id:            id,
		name:          params.Name,
		annualRatePct: params.AnnualRatePct,
		cat:           params.CAT,
		commissionPct: params.CommissionPct,
		maxTermMonths: params.MaxTermMonths,
		maxAmount:     params.MaxAmount,
		active:        true,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}
	b.domainEvents = append(b.domainEvents, event.NewBankProfileCreated(id, params.Name, params.AnnualRatePct))
	return b, nil
}

// ReconstructBankProfile rebuilds a BankProfile from persistence.
func ReconstructBankProfile(
	id, name string,
	annualRatePct decimal.Decimal,
	cat decimal.NullDecimal,
	commissionPct decimal.Decimal,
	maxTermMonths int,
	maxAmount decimal.Decimal,
	active bool,
	version int,
	createdAt, updatedAt time.Time,
) BankProfile {
	return BankProfile{
		id:            id,
		name:          name,
		annualRatePct: annualRatePct,
		cat:           cat,
		commissionPct: commissionPct,
		maxTermMonths: maxTermMonths,
		maxAmount:     maxAmount,
		active:        active,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update replaces the editable fields and records an updated event.
func (b BankProfile) Update(params BankProfileParams, now time.Time) (BankProfile, error) {
	if err := params.validate(); err != nil {
		return b, err
	}

	next := b
	next.name = params.Name
	next.annualRatePct = params.AnnualRatePct
	next.cat = params.CAT
	next.commissionPct = params.CommissionPct
	next.maxTermMonths = params.MaxTermMonths
	next.maxAmount = params.MaxAmount
	next.updatedAt = now
	next.domainEvents = copyEvents(b.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewBankProfileUpdated(b.id, params.Name))
	return next, nil
}

// Deactivate removes the bank from the comparison set. Deactivated banks
// never produce quotes.
func (b BankProfile) Deactivate(now time.Time) (BankProfile, error) {
	if !b.active {
		return b, errors.New("bank profile is already inactive")
	}
	next := b
	next.active = false
	next.updatedAt = now
	next.domainEvents = copyEvents(b.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewBankProfileDeactivated(b.id, b.name))
	return next, nil
}

// HasAmountCap reports whether the bank enforces a maximum financeable amount.
func (b BankProfile) HasAmountCap() bool {
	return b.maxAmount.IsPositive()
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (b BankProfile) ID() string                     { return b.id }
func (b BankProfile) Name() string                   { return b.name }
func (b BankProfile) AnnualRatePct() decimal.Decimal { return b.annualRatePct }
func (b BankProfile) CAT() decimal.NullDecimal       { return b.cat }
func (b BankProfile) CommissionPct() decimal.Decimal { return b.commissionPct }
func (b BankProfile) MaxTermMonths() int             { return b.maxTermMonths }
func (b BankProfile) MaxAmount() decimal.Decimal     { return b.maxAmount }
func (b BankProfile) Active() bool                   { return b.active }
func (b BankProfile) Version() int                   { return b.version }
func (b BankProfile) CreatedAt() time.Time           { return b.createdAt }
func (b BankProfile) UpdatedAt() time.Time           { return b.updatedAt }

func (b BankProfile) DomainEvents() []events.DomainEvent { return b.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (b BankProfile) ClearEvents() BankProfile {
	next := b
	next.domainEvents = nil
	return next
}

func copyEvents(evts []events.DomainEvent) []events.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]events.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
