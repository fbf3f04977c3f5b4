package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

// AmortizationResult is the fixed-payment amortization outcome for one
// bank/term/principal combination.
type AmortizationResult struct {
	MonthlyPayment decimal.Decimal
	TotalInterest  decimal.Decimal
}

// ScheduleEntry is an immutable value object representing one period in an
// amortization schedule.
type ScheduleEntry struct {
	DueDate          time.Time
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// ComputeAmortization computes the fixed monthly payment and total interest
// for a loan.
//
// The calculation uses:
//
//	monthlyRate = annualRatePct / 100 / 12
//	payment     = P * r / (1 - (1+r)^-n)
//
// with an even split when the rate is zero (promotional financing). Monetary
// values stay in decimal; float64 is used only for the power factor, and the
// results are rounded to 2 decimal places, half away from zero. The same
// inputs always yield bit-identical rounded outputs.
func ComputeAmortization(
	principal decimal.Decimal,
	annualRatePct decimal.Decimal,
	termMonths int,
) (AmortizationResult, error) {
	if annualRatePct.IsNegative() {
		return AmortizationResult{}, valueobject.ErrInvalidRate
	}
	if termMonths <= 0 {
		return AmortizationResult{}, valueobject.ErrInvalidTerm
	}

	monthlyRate := annualRatePct.InexactFloat64() / 100.0 / 12.0
	n := float64(termMonths)

	var payment decimal.Decimal
	if monthlyRate == 0 {
		payment = principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	} else {
		// r / (1 - (1+r)^-n), applied to the decimal principal.
		ratio := monthlyRate / (1 - math.Pow(1+monthlyRate, -n))
		payment = principal.Mul(decimal.NewFromFloat(ratio)).Round(2)
	}

	totalInterest := payment.Mul(decimal.NewFromInt(int64(termMonths))).Sub(principal).Round(2)
	// Floating-point underflow can leave a tiny negative remainder at zero rate.
	if totalInterest.IsNegative() {
		totalInterest = decimal.Zero
	}

	return AmortizationResult{
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
	}, nil
}

// GenerateSchedule computes the full per-period amortization schedule. The
// first payment is due one month after startDate. The last period absorbs
// the rounding remainder so the balance reaches exactly zero.
func GenerateSchedule(
	principal decimal.Decimal,
	annualRatePct decimal.Decimal,
	termMonths int,
	startDate time.Time,
) ([]ScheduleEntry, error) {
	result, err := ComputeAmortization(principal, annualRatePct, termMonths)
	if err != nil {
		return nil, err
	}

	monthlyRate := decimal.NewFromFloat(annualRatePct.InexactFloat64() / 100.0 / 12.0)
	payment := result.MonthlyPayment

	schedule := make([]ScheduleEntry, 0, termMonths)
	remaining := principal

	for period := 1; period <= termMonths; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)
		total := payment

		if period == termMonths {
			principalPart = remaining
			total = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		schedule = append(schedule, ScheduleEntry{
			Period:           period,
			DueDate:          startDate.AddDate(0, period, 0),
			Principal:        principalPart,
			Interest:         interest,
			Total:            total,
			RemainingBalance: remaining,
		})
	}

	return schedule, nil
}
