package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/port"
)

// DeactivateBankProfileUseCase removes a bank from the comparison set without
// destroying its record.
type DeactivateBankProfileUseCase struct {
	bankRepo  port.BankProfileRepository
	publisher port.EventPublisher
}

// NewDeactivateBankProfileUseCase wires dependencies.
func NewDeactivateBankProfileUseCase(
	bankRepo port.BankProfileRepository,
	publisher port.EventPublisher,
) *DeactivateBankProfileUseCase {
	return &DeactivateBankProfileUseCase{bankRepo: bankRepo, publisher: publisher}
}

// Execute deactivates the bank profile. Deactivating an already inactive
// bank fails.
func (uc *DeactivateBankProfileUseCase) Execute(
	ctx context.Context,
	bankID string,
) (dto.BankProfileResponse, error) {
	bank, err := uc.bankRepo.FindByID(ctx, bankID)
	if err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("find bank profile: %w", err)
	}

	deactivated, err := bank.Deactivate(time.Now().UTC())
	if err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("deactivate bank profile: %w", err)
	}

	if err := uc.bankRepo.Save(ctx, deactivated); err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("save bank profile: %w", err)
	}

	if err := uc.publisher.Publish(ctx, deactivated.DomainEvents()...); err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toBankProfileResponse(deactivated), nil
}
