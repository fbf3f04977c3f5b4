package model

import (
	"github.com/shopspring/decimal"
)

// FinancingRequest carries what the customer wants to finance: one or more
// vehicles, a down payment, and a term. It is an immutable snapshot for the
// duration of one comparison call.
type FinancingRequest struct {
	VehicleValues []decimal.Decimal
	DownPayment   decimal.Decimal
	TermMonths    int
}

// PrincipalBase returns the sum of all vehicle values.
func (r FinancingRequest) PrincipalBase() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range r.VehicleValues {
		sum = sum.Add(v)
	}
	return sum
}

// Principal returns the amount to be financed: vehicle values minus the down
// payment. The validation gate guarantees it is positive before any quote is
// built.
func (r FinancingRequest) Principal() decimal.Decimal {
	return r.PrincipalBase().Sub(r.DownPayment)
}
