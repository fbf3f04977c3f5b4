package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// EligibilityGate – request validation and per-bank filtering
// ---------------------------------------------------------------------------

// ValidatedComparison is a request that passed the gate, together with the
// banks that may quote it and the ones that were filtered out.
type ValidatedComparison struct {
	Request  model.FinancingRequest
	Eligible []model.BankProfile
	Excluded []model.ExcludedBank
}

// EligibilityGate rejects malformed requests and filters the bank set before
// any computation runs. It holds no state; every call is independent.
type EligibilityGate struct{}

// NewEligibilityGate returns a new gate instance.
func NewEligibilityGate() *EligibilityGate {
	return &EligibilityGate{}
}

// Validate checks the request against the bank set. It accumulates every
// request-level problem instead of stopping at the first one. Per-bank
// ineligibility (term above the bank's maximum, principal above its cap,
// malformed profile fields) excludes that bank only; the comparison fails
// with NoEligibleBanks when nothing remains.
func (g *EligibilityGate) Validate(
	request model.FinancingRequest,
	banks []model.BankProfile,
) (ValidatedComparison, valueobject.ValidationErrors) {
	var errs valueobject.ValidationErrors

	for _, v := range request.VehicleValues {
		if v.IsNegative() {
			errs = append(errs, valueobject.ValidationError{
				Code:    valueobject.CodeInvalidPrincipal,
				Message: "vehicle values must not be negative",
			})
			break
		}
	}
	if request.DownPayment.IsNegative() {
		errs = append(errs, valueobject.ValidationError{
			Code:    valueobject.CodeInvalidPrincipal,
			Message: "down payment must not be negative",
		})
	} else if request.DownPayment.GreaterThan(request.PrincipalBase()) {
		errs = append(errs, valueobject.ValidationError{
			Code:    valueobject.CodeInvalidPrincipal,
			Message: "down payment exceeds the sum of vehicle values",
		})
	}

	principal := request.Principal()
	if !principal.IsPositive() && !errs.Has(valueobject.CodeInvalidPrincipal) {
		errs = append(errs, valueobject.ValidationError{
			Code:    valueobject.CodeInvalidPrincipal,
			Message: "financed amount must be positive",
		})
	}

	if request.TermMonths <= 0 {
		errs = append(errs, valueobject.ValidationError{
			Code:    valueobject.CodeInvalidTerm,
			Message: "requested term must be positive",
		})
	}

	eligible, excluded := g.filterBanks(request, principal, banks)

	if len(errs) == 0 && len(eligible) == 0 {
		errs = append(errs, valueobject.ValidationError{
			Code:    valueobject.CodeNoEligibleBanks,
			Message: "no bank can finance this request",
		})
	}

	if len(errs) > 0 {
		return ValidatedComparison{}, errs
	}

	return ValidatedComparison{
		Request:  request,
		Eligible: eligible,
		Excluded: excluded,
	}, nil
}

func (g *EligibilityGate) filterBanks(
	request model.FinancingRequest,
	principal decimal.Decimal,
	banks []model.BankProfile,
) (eligible []model.BankProfile, excluded []model.ExcludedBank) {
	for _, bank := range banks {
		// Inactive banks never quote and are not reported as exclusions:
		// the catalog simply does not offer them.
		if !bank.Active() {
			continue
		}

		switch {
		case bank.AnnualRatePct().IsNegative():
			excluded = append(excluded, model.ExcludedBank{
				BankID:   bank.ID(),
				BankName: bank.Name(),
				Code:     valueobject.CodeInvalidRate,
				Reason:   "bank profile carries a negative rate",
			})
		case bank.MaxTermMonths() <= 0:
			excluded = append(excluded, model.ExcludedBank{
				BankID:   bank.ID(),
				BankName: bank.Name(),
				Code:     valueobject.CodeInvalidTerm,
				Reason:   "bank profile carries no valid maximum term",
			})
		case request.TermMonths > bank.MaxTermMonths():
			excluded = append(excluded, model.ExcludedBank{
				BankID:   bank.ID(),
				BankName: bank.Name(),
				Code:     valueobject.CodeInvalidTerm,
				Reason: fmt.Sprintf("requested term %d exceeds the bank maximum of %d months",
					request.TermMonths, bank.MaxTermMonths()),
			})
		case bank.HasAmountCap() && principal.GreaterThan(bank.MaxAmount()):
			excluded = append(excluded, model.ExcludedBank{
				BankID:   bank.ID(),
				BankName: bank.Name(),
				Code:     valueobject.CodeExceedsMaxAmount,
				Reason: fmt.Sprintf("financed amount %s exceeds the bank maximum of %s",
					principal.StringFixed(2), bank.MaxAmount().StringFixed(2)),
			})
		default:
			eligible = append(eligible, bank)
		}
	}
	return eligible, excluded
}
