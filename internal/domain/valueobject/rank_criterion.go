package valueobject

import (
	"errors"
	"fmt"
)

// RankCriterion selects the quote attribute a comparison is ordered by.
type RankCriterion string

const (
	// CriterionMonthlyPayment orders quotes by monthly payment, ascending.
	CriterionMonthlyPayment RankCriterion = "monthly_payment"
	// CriterionTotalCost orders quotes by total cost of credit, ascending.
	CriterionTotalCost RankCriterion = "total_cost"
	// CriterionEffectiveRate orders quotes by effective annual rate, ascending.
	CriterionEffectiveRate RankCriterion = "effective_rate"
)

// DefaultRankCriterion is used when the caller does not specify one.
const DefaultRankCriterion = CriterionMonthlyPayment

// ErrUnknownCriterion is returned when a criterion string does not match any
// known ranking criterion.
var ErrUnknownCriterion = errors.New("unknown rank criterion")

// NewRankCriterion parses a criterion string. The empty string maps to the
// default criterion.
func NewRankCriterion(s string) (RankCriterion, error) {
	switch RankCriterion(s) {
	case CriterionMonthlyPayment, CriterionTotalCost, CriterionEffectiveRate:
		return RankCriterion(s), nil
	case "":
		return DefaultRankCriterion, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
}

func (c RankCriterion) String() string { return string(c) }
