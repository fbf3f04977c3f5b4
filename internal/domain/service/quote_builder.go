package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// QuoteBuilder – assembles one complete quote per bank
// ---------------------------------------------------------------------------

// QuoteBuilder turns a bank profile plus validated request parameters into a
// complete Quote. Deterministic and side-effect-free: the same inputs always
// yield bit-identical rounded outputs.
type QuoteBuilder struct{}

// NewQuoteBuilder returns a new builder instance.
func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{}
}

// BuildQuote computes the amortization for the bank's nominal rate, the
// opening commission, and the total cost of credit. The effective annual
// rate is the bank's reported CAT when present; otherwise it is estimated
// from the commission-inclusive payment stream and flagged as such.
func (b *QuoteBuilder) BuildQuote(
	principal decimal.Decimal,
	bank model.BankProfile,
	termMonths int,
) (model.Quote, error) {
	amort, err := model.ComputeAmortization(principal, bank.AnnualRatePct(), termMonths)
	if err != nil {
		return model.Quote{}, fmt.Errorf("amortization for %s: %w", bank.Name(), err)
	}

	commission := principal.Mul(bank.CommissionPct()).Div(decimal.NewFromInt(100)).Round(2)
	totalCost := principal.Add(amort.TotalInterest).Add(commission)

	effectiveRate, source := effectiveAnnualRate(principal, commission, amort.MonthlyPayment, termMonths, bank.CAT())

	periodicRate := bank.AnnualRatePct().
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(12)).
		Round(6)

	return model.Quote{
		BankID:              bank.ID(),
		BankName:            bank.Name(),
		Principal:           principal,
		TermMonths:          termMonths,
		PeriodicRate:        periodicRate,
		MonthlyPayment:      amort.MonthlyPayment,
		TotalInterest:       amort.TotalInterest,
		CommissionAmount:    commission,
		TotalCost:           totalCost,
		EffectiveAnnualRate: effectiveRate,
		RateSource:          source,
	}, nil
}

// effectiveAnnualRate returns the bank-reported CAT when available. Otherwise
// it approximates the annualized internal rate of the fixed payment stream
// against the net proceeds (principal minus the opening commission). This is
// a bisection approximation, not a regulatory CAT solve, and is surfaced to
// the caller as "estimated".
func effectiveAnnualRate(
	principal, commission, monthlyPayment decimal.Decimal,
	termMonths int,
	cat decimal.NullDecimal,
) (decimal.Decimal, valueobject.RateSource) {
	if cat.Valid {
		return cat.Decimal.Round(2), valueobject.RateSourceReported
	}

	net := principal.Sub(commission).InexactFloat64()
	payment := monthlyPayment.InexactFloat64()
	monthly := solveMonthlyRate(net, payment, termMonths)
	annual := (math.Pow(1+monthly, 12) - 1) * 100

	return decimal.NewFromFloat(annual).Round(2), valueobject.RateSourceEstimated
}

// solveMonthlyRate finds the monthly rate at which the present value of
// termMonths fixed payments equals the net proceeds, by bisection. The
// present value is strictly decreasing in the rate, so the bracket [0, 1]
// (0–100% monthly) always converges.
func solveMonthlyRate(netProceeds, payment float64, termMonths int) float64 {
	if netProceeds <= 0 || payment <= 0 {
		return 0
	}

	pv := func(rate float64) float64 {
		if rate == 0 {
			return payment * float64(termMonths)
		}
		return payment * (1 - math.Pow(1+rate, -float64(termMonths))) / rate
	}

	// Zero-rate financing with no commission has nothing to solve.
	if pv(0) <= netProceeds {
		return 0
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < 64; i++ {
		mid := (lo + hi) / 2
		if pv(mid) > netProceeds {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
