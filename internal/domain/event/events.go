package event

import (
	"github.com/shopspring/decimal"

	"github.com/crisgp1/cliqueatools-sub003/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Bank catalog events
// ---------------------------------------------------------------------------

// BankProfileCreated is raised when a new bank enters the catalog.
type BankProfileCreated struct {
	events.BaseEvent
	Name          string          `json:"name"`
	AnnualRatePct decimal.Decimal `json:"annual_rate_pct"`
}

func NewBankProfileCreated(bankID, name string, annualRatePct decimal.Decimal) BankProfileCreated {
	return BankProfileCreated{
		BaseEvent:     events.NewBaseEvent("credit.bank_profile.created", bankID, "BankProfile"),
		Name:          name,
		AnnualRatePct: annualRatePct,
	}
}

// BankProfileUpdated is raised when a bank's rate/commission/term profile changes.
type BankProfileUpdated struct {
	events.BaseEvent
	Name string `json:"name"`
}

func NewBankProfileUpdated(bankID, name string) BankProfileUpdated {
	return BankProfileUpdated{
		BaseEvent: events.NewBaseEvent("credit.bank_profile.updated", bankID, "BankProfile"),
		Name:      name,
	}
}

// BankProfileDeactivated is raised when a bank is removed from the comparison set.
type BankProfileDeactivated struct {
	events.BaseEvent
	Name string `json:"name"`
}

func NewBankProfileDeactivated(bankID, name string) BankProfileDeactivated {
	return BankProfileDeactivated{
		BaseEvent: events.NewBaseEvent("credit.bank_profile.deactivated", bankID, "BankProfile"),
		Name:      name,
	}
}

// ---------------------------------------------------------------------------
// Comparison events
// ---------------------------------------------------------------------------

// ComparisonCompleted is raised after a financing comparison produced a
// ranked result. Consumed by the analytics pipeline.
type ComparisonCompleted struct {
	events.BaseEvent
	Criterion     string          `json:"criterion"`
	Principal     decimal.Decimal `json:"principal"`
	TermMonths    int             `json:"term_months"`
	QuoteCount    int             `json:"quote_count"`
	ExcludedCount int             `json:"excluded_count"`
	BestBankID    string          `json:"best_bank_id"`
}

func NewComparisonCompleted(
	comparisonID, criterion string,
	principal decimal.Decimal,
	termMonths, quoteCount, excludedCount int,
	bestBankID string,
) ComparisonCompleted {
	return ComparisonCompleted{
		BaseEvent:     events.NewBaseEvent("credit.comparison.completed", comparisonID, "Comparison"),
		Criterion:     criterion,
		Principal:     principal,
		TermMonths:    termMonths,
		QuoteCount:    quoteCount,
		ExcludedCount: excludedCount,
		BestBankID:    bestBankID,
	}
}
