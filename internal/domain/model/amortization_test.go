package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeAmortization_KnownValue(t *testing.T) {
	// $100,000 at 12% annual for 36 months: monthly rate 0.01,
	// payment = 100000 * 0.01 / (1 - 1.01^-36) = 3321.43.
	result, err := model.ComputeAmortization(d("100000"), d("12"), 36)
	require.NoError(t, err)

	assert.True(t, result.MonthlyPayment.Equal(d("3321.43")),
		"expected payment 3321.43, got %s", result.MonthlyPayment)
	assert.True(t, result.TotalInterest.Equal(d("19571.48")),
		"expected interest 19571.48, got %s", result.TotalInterest)
}

func TestComputeAmortization_ZeroRate(t *testing.T) {
	result, err := model.ComputeAmortization(d("12000"), decimal.Zero, 12)
	require.NoError(t, err)

	assert.True(t, result.MonthlyPayment.Equal(d("1000")),
		"zero-rate payment should be an even split, got %s", result.MonthlyPayment)
	assert.True(t, result.TotalInterest.Equal(decimal.Zero),
		"zero-rate interest should be zero, got %s", result.TotalInterest)
}

func TestComputeAmortization_Deterministic(t *testing.T) {
	first, err := model.ComputeAmortization(d("355000.55"), d("14.75"), 48)
	require.NoError(t, err)
	second, err := model.ComputeAmortization(d("355000.55"), d("14.75"), 48)
	require.NoError(t, err)

	assert.True(t, first.MonthlyPayment.Equal(second.MonthlyPayment))
	assert.True(t, first.TotalInterest.Equal(second.TotalInterest))
}

func TestComputeAmortization_PaymentIdentity(t *testing.T) {
	tolerance := d("0.01").Mul(decimal.NewFromInt(60)) // per-payment rounding accumulates

	tests := []struct {
		principal string
		rate      string
		term      int
	}{
		{"100000", "12", 36},
		{"250000", "9.9", 48},
		{"80000", "0", 24},
		{"1500000", "16.5", 60},
	}

	for _, tt := range tests {
		result, err := model.ComputeAmortization(d(tt.principal), d(tt.rate), tt.term)
		require.NoError(t, err)

		paid := result.MonthlyPayment.Mul(decimal.NewFromInt(int64(tt.term)))
		owed := d(tt.principal).Add(result.TotalInterest)
		assert.True(t, paid.Sub(owed).Abs().LessThanOrEqual(tolerance),
			"payment*term should equal principal+interest for %s@%s/%d: %s vs %s",
			tt.principal, tt.rate, tt.term, paid, owed)
	}
}

func TestComputeAmortization_RateMonotonicity(t *testing.T) {
	principal := d("200000")
	term := 48

	prev, err := model.ComputeAmortization(principal, d("5"), term)
	require.NoError(t, err)

	for _, rate := range []string{"7.5", "10", "12.5", "18", "24"} {
		next, err := model.ComputeAmortization(principal, d(rate), term)
		require.NoError(t, err)

		assert.True(t, next.MonthlyPayment.GreaterThan(prev.MonthlyPayment),
			"payment must strictly increase with the rate (%s)", rate)
		assert.True(t, next.TotalInterest.GreaterThan(prev.TotalInterest),
			"interest must strictly increase with the rate (%s)", rate)
		prev = next
	}
}

func TestComputeAmortization_InvalidInputs(t *testing.T) {
	t.Run("negative rate", func(t *testing.T) {
		_, err := model.ComputeAmortization(d("1000"), d("-1"), 12)
		require.ErrorIs(t, err, valueobject.ErrInvalidRate)
	})

	t.Run("zero term", func(t *testing.T) {
		_, err := model.ComputeAmortization(d("1000"), d("10"), 0)
		require.ErrorIs(t, err, valueobject.ErrInvalidTerm)
	})

	t.Run("negative term", func(t *testing.T) {
		_, err := model.ComputeAmortization(d("1000"), d("10"), -6)
		require.ErrorIs(t, err, valueobject.ErrInvalidTerm)
	})
}

func TestGenerateSchedule(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	schedule, err := model.GenerateSchedule(d("100000"), d("12"), 36, start)
	require.NoError(t, err)
	require.Len(t, schedule, 36)

	first := schedule[0]
	assert.Equal(t, 1, first.Period)
	assert.Equal(t, start.AddDate(0, 1, 0), first.DueDate)
	// First month interest = 100000 * 0.01 = 1000.
	assert.True(t, first.Interest.Equal(d("1000")), "got %s", first.Interest)

	last := schedule[35]
	assert.True(t, last.RemainingBalance.Equal(decimal.Zero),
		"final balance should be exactly zero, got %s", last.RemainingBalance)

	totalPrincipal := decimal.Zero
	for _, e := range schedule {
		totalPrincipal = totalPrincipal.Add(e.Principal)
	}
	assert.True(t, totalPrincipal.Equal(d("100000")),
		"principal parts should sum to the principal, got %s", totalPrincipal)
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	schedule, err := model.GenerateSchedule(d("12000"), decimal.Zero, 12, time.Now())
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	for _, e := range schedule {
		assert.True(t, e.Interest.Equal(decimal.Zero))
		assert.True(t, e.Principal.Equal(d("1000")))
	}
}
