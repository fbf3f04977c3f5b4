package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/port"
)

// UpdateBankProfileUseCase replaces the editable fields of a bank profile.
type UpdateBankProfileUseCase struct {
	bankRepo  port.BankProfileRepository
	publisher port.EventPublisher
}

// NewUpdateBankProfileUseCase wires dependencies.
func NewUpdateBankProfileUseCase(
	bankRepo port.BankProfileRepository,
	publisher port.EventPublisher,
) *UpdateBankProfileUseCase {
	return &UpdateBankProfileUseCase{bankRepo: bankRepo, publisher: publisher}
}

// Execute loads, updates, persists, and announces a bank profile.
func (uc *UpdateBankProfileUseCase) Execute(
	ctx context.Context,
	bankID string,
	req dto.BankProfileRequest,
) (dto.BankProfileResponse, error) {
	bank, err := uc.bankRepo.FindByID(ctx, bankID)
	if err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("find bank profile: %w", err)
	}

	updated, err := bank.Update(toBankProfileParams(req), time.Now().UTC())
	if err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("update bank profile: %w", err)
	}

	if err := uc.bankRepo.Save(ctx, updated); err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("save bank profile: %w", err)
	}

	if err := uc.publisher.Publish(ctx, updated.DomainEvents()...); err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toBankProfileResponse(updated), nil
}
