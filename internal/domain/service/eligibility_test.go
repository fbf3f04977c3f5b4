package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/service"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type bankSpec struct {
	name       string
	ratePct    string
	cat        string // empty = unreported
	commission string
	maxTerm    int
	maxAmount  string // "0" = no cap
	inactive   bool
}

func makeBank(t *testing.T, spec bankSpec) model.BankProfile {
	t.Helper()
	cat := decimal.NullDecimal{}
	if spec.cat != "" {
		cat = decimal.NewNullDecimal(d(spec.cat))
	}
	bank, err := model.NewBankProfile(model.BankProfileParams{
		Name:          spec.name,
		AnnualRatePct: d(spec.ratePct),
		CAT:           cat,
		CommissionPct: d(spec.commission),
		MaxTermMonths: spec.maxTerm,
		MaxAmount:     d(spec.maxAmount),
	}, time.Now().UTC())
	require.NoError(t, err)
	if spec.inactive {
		bank, err = bank.Deactivate(time.Now().UTC())
		require.NoError(t, err)
	}
	return bank.ClearEvents()
}

func standardRequest() model.FinancingRequest {
	return model.FinancingRequest{
		VehicleValues: []decimal.Decimal{d("300000"), d("100000")},
		DownPayment:   d("100000"),
		TermMonths:    36,
	}
}

func TestValidate_HappyPath(t *testing.T) {
	gate := service.NewEligibilityGate()
	banks := []model.BankProfile{
		makeBank(t, bankSpec{name: "BBVA", ratePct: "12.5", commission: "2", maxTerm: 60, maxAmount: "0"}),
		makeBank(t, bankSpec{name: "Santander", ratePct: "13.1", commission: "1.5", maxTerm: 48, maxAmount: "0"}),
	}

	validated, errs := gate.Validate(standardRequest(), banks)
	require.Nil(t, errs)
	assert.Len(t, validated.Eligible, 2)
	assert.Empty(t, validated.Excluded)
	assert.True(t, validated.Request.Principal().Equal(d("300000")))
}

func TestValidate_PerBankTermExclusion(t *testing.T) {
	gate := service.NewEligibilityGate()
	banks := []model.BankProfile{
		makeBank(t, bankSpec{name: "Banorte", ratePct: "11", commission: "1", maxTerm: 72, maxAmount: "0"}),
		makeBank(t, bankSpec{name: "HSBC", ratePct: "10", commission: "1", maxTerm: 48, maxAmount: "0"}),
	}

	request := standardRequest()
	request.TermMonths = 60

	validated, errs := gate.Validate(request, banks)
	require.Nil(t, errs, "per-bank term exclusion must not fail the request")
	require.Len(t, validated.Eligible, 1)
	assert.Equal(t, "Banorte", validated.Eligible[0].Name())
	require.Len(t, validated.Excluded, 1)
	assert.Equal(t, "HSBC", validated.Excluded[0].BankName)
	assert.Equal(t, valueobject.CodeInvalidTerm, validated.Excluded[0].Code)
}

func TestValidate_PerBankAmountExclusion(t *testing.T) {
	gate := service.NewEligibilityGate()
	banks := []model.BankProfile{
		makeBank(t, bankSpec{name: "Banorte", ratePct: "11", commission: "1", maxTerm: 60, maxAmount: "0"}),
		makeBank(t, bankSpec{name: "Scotiabank", ratePct: "9.5", commission: "1", maxTerm: 60, maxAmount: "250000"}),
	}

	validated, errs := gate.Validate(standardRequest(), banks)
	require.Nil(t, errs)
	require.Len(t, validated.Eligible, 1)
	require.Len(t, validated.Excluded, 1)
	assert.Equal(t, valueobject.CodeExceedsMaxAmount, validated.Excluded[0].Code)
}

func TestValidate_AllBanksIneligible(t *testing.T) {
	gate := service.NewEligibilityGate()
	banks := []model.BankProfile{
		makeBank(t, bankSpec{name: "BBVA", ratePct: "12.5", commission: "2", maxTerm: 48, maxAmount: "0"}),
		makeBank(t, bankSpec{name: "Santander", ratePct: "13.1", commission: "1.5", maxTerm: 36, maxAmount: "0"}),
	}

	request := standardRequest()
	request.TermMonths = 60

	_, errs := gate.Validate(request, banks)
	require.NotNil(t, errs)
	assert.True(t, errs.Has(valueobject.CodeNoEligibleBanks))
}

func TestValidate_InactiveBanksNeverQuote(t *testing.T) {
	gate := service.NewEligibilityGate()
	banks := []model.BankProfile{
		makeBank(t, bankSpec{name: "BBVA", ratePct: "12.5", commission: "2", maxTerm: 60, maxAmount: "0", inactive: true}),
	}

	_, errs := gate.Validate(standardRequest(), banks)
	require.NotNil(t, errs)
	assert.True(t, errs.Has(valueobject.CodeNoEligibleBanks))
}

func TestValidate_AccumulatesAllErrors(t *testing.T) {
	gate := service.NewEligibilityGate()
	banks := []model.BankProfile{
		makeBank(t, bankSpec{name: "BBVA", ratePct: "12.5", commission: "2", maxTerm: 60, maxAmount: "0"}),
	}

	request := model.FinancingRequest{
		VehicleValues: []decimal.Decimal{d("100000")},
		DownPayment:   d("150000"), // exceeds the vehicle value
		TermMonths:    0,           // invalid
	}

	_, errs := gate.Validate(request, banks)
	require.NotNil(t, errs)
	assert.True(t, errs.Has(valueobject.CodeInvalidPrincipal))
	assert.True(t, errs.Has(valueobject.CodeInvalidTerm))
	assert.GreaterOrEqual(t, len(errs), 2, "all problems must be reported at once")
}

func TestValidate_ZeroPrincipal(t *testing.T) {
	gate := service.NewEligibilityGate()
	banks := []model.BankProfile{
		makeBank(t, bankSpec{name: "BBVA", ratePct: "12.5", commission: "2", maxTerm: 60, maxAmount: "0"}),
	}

	request := model.FinancingRequest{
		VehicleValues: []decimal.Decimal{d("200000")},
		DownPayment:   d("200000"), // fully paid down, nothing to finance
		TermMonths:    36,
	}

	_, errs := gate.Validate(request, banks)
	require.NotNil(t, errs)
	assert.True(t, errs.Has(valueobject.CodeInvalidPrincipal))
}
