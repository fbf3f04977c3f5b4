package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ComparisonEngine – the single call boundary of the credit core
// ---------------------------------------------------------------------------

// ComparisonEngine wires the gate, the builder, and the ranker into one
// synchronous comparison call. All three collaborators are stateless, so the
// engine is safe for concurrent use.
type ComparisonEngine struct {
	gate    *EligibilityGate
	builder *QuoteBuilder
	ranker  *ComparisonRanker
}

// NewComparisonEngine returns a ready-to-use engine.
func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{
		gate:    NewEligibilityGate(),
		builder: NewQuoteBuilder(),
		ranker:  NewComparisonRanker(),
	}
}

// Compare validates the request, builds one quote per eligible bank, and
// returns the ranked result. Validation failure returns the accumulated
// error list as a valueobject.ValidationErrors value.
//
// Quote construction is embarrassingly parallel: each bank only reads its
// own profile and writes its own slot in a pre-sized slice, so the banks are
// evaluated concurrently with no locking. Completion order never leaks into
// the output; the ranker alone determines the final ordering.
func (e *ComparisonEngine) Compare(
	ctx context.Context,
	request model.FinancingRequest,
	banks []model.BankProfile,
	criterion valueobject.RankCriterion,
) (model.ComparisonResult, error) {
	validated, verrs := e.gate.Validate(request, banks)
	if verrs != nil {
		return model.ComparisonResult{}, verrs
	}

	principal := validated.Request.Principal()
	quotes := make([]model.Quote, len(validated.Eligible))

	g, ctx := errgroup.WithContext(ctx)
	for i, bank := range validated.Eligible {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			quote, err := e.builder.BuildQuote(principal, bank, validated.Request.TermMonths)
			if err != nil {
				return err
			}
			quotes[i] = quote
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.ComparisonResult{}, err
	}

	result, err := e.ranker.Rank(quotes, criterion)
	if err != nil {
		return model.ComparisonResult{}, err
	}
	result.Excluded = validated.Excluded

	return result, nil
}
