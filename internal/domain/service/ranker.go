package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

// bestTolerance is the currency/percentage-point distance within which a
// quote still counts as best alongside the head of the ranking.
var bestTolerance = decimal.NewFromFloat(0.01)

// ---------------------------------------------------------------------------
// ComparisonRanker – deterministic ordering of quotes
// ---------------------------------------------------------------------------

// ComparisonRanker orders quotes by a criterion and flags the best option(s).
type ComparisonRanker struct{}

// NewComparisonRanker returns a new ranker instance.
func NewComparisonRanker() *ComparisonRanker {
	return &ComparisonRanker{}
}

// Rank sorts the quotes ascending by the exact criterion value, breaking
// equal values by bank display name so the order never depends on arrival
// order. Every quote gets a 1-based rank position; all quotes within
// tolerance of the head are flagged as best.
func (r *ComparisonRanker) Rank(
	quotes []model.Quote,
	criterion valueobject.RankCriterion,
) (model.ComparisonResult, error) {
	if len(quotes) == 0 {
		return model.ComparisonResult{}, valueobject.ErrEmptyQuoteSet
	}

	ranked := make([]model.Quote, len(quotes))
	copy(ranked, quotes)

	// Exact comparison only: a tolerance-based comparator is not transitive
	// and would let arrival order leak through on chained near-ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		vi := ranked[i].CriterionValue(criterion)
		vj := ranked[j].CriterionValue(criterion)
		if vi.Equal(vj) {
			return ranked[i].BankName < ranked[j].BankName
		}
		return vi.LessThan(vj)
	})

	best := ranked[0].CriterionValue(criterion)
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].IsBest = ranked[i].CriterionValue(criterion).Sub(best).Abs().LessThanOrEqual(bestTolerance)
	}

	return model.ComparisonResult{
		Criterion:  criterion,
		Quotes:     ranked,
		BestBankID: ranked[0].BankID,
	}, nil
}
