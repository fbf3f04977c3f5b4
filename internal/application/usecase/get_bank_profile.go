package usecase

import (
	"context"
	"fmt"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/port"
)

// GetBankProfileUseCase retrieves one bank profile by ID.
type GetBankProfileUseCase struct {
	bankRepo port.BankProfileRepository
}

// NewGetBankProfileUseCase wires dependencies.
func NewGetBankProfileUseCase(bankRepo port.BankProfileRepository) *GetBankProfileUseCase {
	return &GetBankProfileUseCase{bankRepo: bankRepo}
}

// Execute fetches the bank profile.
func (uc *GetBankProfileUseCase) Execute(
	ctx context.Context,
	bankID string,
) (dto.BankProfileResponse, error) {
	bank, err := uc.bankRepo.FindByID(ctx, bankID)
	if err != nil {
		return dto.BankProfileResponse{}, fmt.Errorf("find bank profile: %w", err)
	}
	return toBankProfileResponse(bank), nil
}
