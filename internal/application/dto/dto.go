package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CompareRequest carries one financing comparison call. Currency is an ISO
// 4217 code; empty means MXN.
type CompareRequest struct {
	VehicleValues []decimal.Decimal `json:"vehicle_values"`
	DownPayment   decimal.Decimal   `json:"down_payment"`
	TermMonths    int               `json:"term_months"`
	Criterion     string            `json:"criterion,omitempty"`
	Currency      string            `json:"currency,omitempty"`
}

// ScheduleRequest asks for an amortization schedule preview.
type ScheduleRequest struct {
	Principal     decimal.Decimal `json:"principal"`
	AnnualRatePct decimal.Decimal `json:"annual_rate_pct"`
	TermMonths    int             `json:"term_months"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
}

// BankProfileRequest carries the editable fields of a bank profile for both
// creation and update.
type BankProfileRequest struct {
	Name          string              `json:"name"`
	AnnualRatePct decimal.Decimal     `json:"annual_rate_pct"`
	CAT           decimal.NullDecimal `json:"cat"`
	CommissionPct decimal.Decimal     `json:"commission_pct"`
	MaxTermMonths int                 `json:"max_term_months"`
	MaxAmount     decimal.Decimal     `json:"max_amount"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// QuoteResponse is the external representation of one bank's financing offer.
type QuoteResponse struct {
	BankID              string          `json:"bank_id"`
	BankName            string          `json:"bank_name"`
	Principal           decimal.Decimal `json:"principal"`
	TermMonths          int             `json:"term_months"`
	PeriodicRate        decimal.Decimal `json:"periodic_rate"`
	MonthlyPayment      decimal.Decimal `json:"monthly_payment"`
	TotalInterest       decimal.Decimal `json:"total_interest"`
	CommissionAmount    decimal.Decimal `json:"commission_amount"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	EffectiveAnnualRate decimal.Decimal `json:"effective_annual_rate"`
	RateSource          string          `json:"rate_source"`
	Rank                int             `json:"rank"`
	IsBest              bool            `json:"is_best"`
}

// ExcludedBankResponse explains why one bank produced no quote.
type ExcludedBankResponse struct {
	BankID   string `json:"bank_id"`
	BankName string `json:"bank_name"`
	Code     string `json:"code"`
	Reason   string `json:"reason"`
}

// ComparisonResponse is the ranked outcome of one comparison call.
type ComparisonResponse struct {
	Criterion  string                 `json:"criterion"`
	Currency   string                 `json:"currency"`
	Quotes     []QuoteResponse        `json:"quotes"`
	BestBankID string                 `json:"best_bank_id"`
	Excluded   []ExcludedBankResponse `json:"excluded,omitempty"`
}

// ScheduleEntryResponse is one period of an amortization schedule.
type ScheduleEntryResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// ScheduleResponse is the full amortization schedule preview.
type ScheduleResponse struct {
	Principal      decimal.Decimal         `json:"principal"`
	AnnualRatePct  decimal.Decimal         `json:"annual_rate_pct"`
	TermMonths     int                     `json:"term_months"`
	MonthlyPayment decimal.Decimal         `json:"monthly_payment"`
	TotalInterest  decimal.Decimal         `json:"total_interest"`
	Entries        []ScheduleEntryResponse `json:"entries"`
}

// BankProfileResponse is the external representation of a bank profile.
type BankProfileResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	AnnualRatePct decimal.Decimal     `json:"annual_rate_pct"`
	CAT           decimal.NullDecimal `json:"cat"`
	CommissionPct decimal.Decimal     `json:"commission_pct"`
	MaxTermMonths int                 `json:"max_term_months"`
	MaxAmount     decimal.Decimal     `json:"max_amount"`
	Active        bool                `json:"active"`
	Version       int                 `json:"version"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
