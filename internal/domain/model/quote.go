package model

import (
	"github.com/shopspring/decimal"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

// Quote is the financing offer derived for one bank. It is a pure function
// output: created fresh per comparison call, never persisted, immutable once
// produced.
type Quote struct {
	BankID              string
	BankName            string
	Principal           decimal.Decimal
	TermMonths          int
	PeriodicRate        decimal.Decimal // monthly rate as a fraction, e.g. 0.01
	MonthlyPayment      decimal.Decimal
	TotalInterest       decimal.Decimal
	CommissionAmount    decimal.Decimal
	TotalCost           decimal.Decimal // principal + interest + commission
	EffectiveAnnualRate decimal.Decimal // percent
	RateSource          valueobject.RateSource

	// Set by the ranker.
	Rank   int
	IsBest bool
}

// CriterionValue returns the quote attribute the given criterion orders by.
func (q Quote) CriterionValue(c valueobject.RankCriterion) decimal.Decimal {
	switch c {
	case valueobject.CriterionTotalCost:
		return q.TotalCost
	case valueobject.CriterionEffectiveRate:
		return q.EffectiveAnnualRate
	default:
		return q.MonthlyPayment
	}
}

// ExcludedBank records why one bank could not quote this request. Per-bank
// ineligibility never fails the whole comparison as long as another bank
// remains eligible.
type ExcludedBank struct {
	BankID   string
	BankName string
	Code     valueobject.ErrorCode
	Reason   string
}

// ComparisonResult is the ordered outcome of one comparison call. Immutable;
// the ordering is determined solely by the rank criterion and tie-break rule.
type ComparisonResult struct {
	Criterion  valueobject.RankCriterion
	Quotes     []Quote
	BestBankID string
	Excluded   []ExcludedBank
}
