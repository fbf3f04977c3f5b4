package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/port"
)

// CreateBankProfileUseCase adds a new bank to the comparison catalog.
type CreateBankProfileUseCase struct {
	bankRepo  port.BankProfileRepository
	publisher port.EventPublisher
}

// NewCreateBankProfileUseCase wires dependencies.
func NewCreateBankProfileUseCase(
	bankRepo port.BankProfileRepository,
	publisher port.EventPublisher,
) *CreateBankProfileUseCase {
	return &CreateBankProfileUseCase{bankRepo: bankRepo, publisher: publisher}
}

// Execute creates, persists, and announces a bank profile.
func (uc *CreateBankProfileUseCase) Execute(
	ctx context.Context,
	req dto.BankProfileRequest,
) (dto.BankProfileResponse, error) {
	now := time.Now().UTC()

	bank, err := model.NewBankProfile(toBankProfileParams(req), now)
	if err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("create bank profile: %w", err)
	}

	if err := uc.bankRepo.Save(ctx, bank); err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("save bank profile: %w", err)
	}

	if err := uc.publisher.Publish(ctx, bank.DomainEvents()...); err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toBankProfileResponse(bank), nil
}

func toBankProfileParams(req dto.BankProfileRequest) model.BankProfileParams {
	return model.BankProfileParams{
		Name:          req.Name,
		AnnualRatePct: req.AnnualRatePct,
		CAT:           req.CAT,
		CommissionPct: req.CommissionPct,
		MaxTermMonths: req.MaxTermMonths,
		MaxAmount:     req.MaxAmount,
	}
}

func toBankProfileResponse(bank model.BankProfile) dto.BankProfileResponse {
	return dto.BankProfileResponse{
		ID:            bank.ID(),
		Name:          bank.Name(),
		AnnualRatePct: bank.AnnualRatePct(),
		CAT:           bank.CAT(),
		CommissionPct: bank.CommissionPct(),
		MaxTermMonths: bank.MaxTermMonths(),
		MaxAmount:     bank.MaxAmount(),
		Active:        bank.Active(),
		Version:       bank.Version(),
		CreatedAt:     bank.CreatedAt(),
		UpdatedAt:     bank.UpdatedAt(),
	}
}
