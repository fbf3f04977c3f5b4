package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
)

// PreviewScheduleUseCase computes a full amortization schedule for a given
// principal, rate, and term without touching the bank catalog. The frontend
// uses it to show the payment table before the customer picks a bank.
type PreviewScheduleUseCase struct{}

// NewPreviewScheduleUseCase returns the stateless schedule usecase.
func NewPreviewScheduleUseCase() *PreviewScheduleUseCase {
	return &PreviewScheduleUseCase{}
}

// Execute validates the inputs and produces the per-period schedule. The
// first payment is due one month after the start date; when no start date is
// given, the schedule starts today.
func (uc *PreviewScheduleUseCase) Execute(
	_ context.Context,
	req dto.ScheduleRequest,
) (dto.ScheduleResponse, error) {
	if !req.Principal.IsPositive() {
		return dto.ScheduleResponse{}, fmt.Errorf("principal must be positive, got %s", req.Principal)
	}

	start := time.Now().UTC()
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}

	entries, err := model.GenerateSchedule(req.Principal, req.AnnualRatePct, req.TermMonths, start)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("generate schedule: %w", err)
	}

	result, err := model.ComputeAmortization(req.Principal, req.AnnualRatePct, req.TermMonths)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("compute amortization: %w", err)
	}

	out := make([]dto.ScheduleEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.ScheduleEntryResponse{
			Period:           e.Period,
			DueDate:          e.DueDate,
			Principal:        e.Principal,
			Interest:         e.Interest,
			Total:            e.Total,
			RemainingBalance: e.RemainingBalance,
		}
	}

	return dto.ScheduleResponse{
		Principal:      req.Principal,
		AnnualRatePct:  req.AnnualRatePct,
		TermMonths:     req.TermMonths,
		MonthlyPayment: result.MonthlyPayment,
		TotalInterest:  result.TotalInterest,
		Entries:        out,
	}, nil
}
