package usecase

import (
	"context"
	"fmt"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/port"
)

// ListBankProfilesUseCase lists the bank catalog.
type ListBankProfilesUseCase struct {
	bankRepo port.BankProfileRepository
}

// NewListBankProfilesUseCase wires dependencies.
func NewListBankProfilesUseCase(bankRepo port.BankProfileRepository) *ListBankProfilesUseCase {
	return &ListBankProfilesUseCase{bankRepo: bankRepo}
}

// Execute returns all bank profiles, optionally only the active ones.
func (uc *ListBankProfilesUseCase) Execute(
	ctx context.Context,
	activeOnly bool,
) ([]dto.BankProfileResponse, error) {
	banks, err := uc.bankRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list bank profiles: %w", err)
	}

	out := make([]dto.BankProfileResponse, len(banks))
	for i, bank := range banks {
		out[i] = toBankProfileResponse(bank)
	}
	return out, nil
}
