package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/application/usecase"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/port"
)

func validBankRequest() dto.BankProfileRequest {
	return dto.BankProfileRequest{
		Name:          "BBVA",
		AnnualRatePct: dec("12.5"),
		CAT:           decimal.NewNullDecimal(dec("16.4")),
		CommissionPct: dec("2"),
		MaxTermMonths: 60,
		MaxAmount:     decimal.Zero,
	}
}

func TestCreateBankProfile_Execute(t *testing.T) {
	t.Run("creates and announces a bank profile", func(t *testing.T) {
		repo := &mockBankProfileRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCreateBankProfileUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), validBankRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "BBVA", resp.Name)
		assert.True(t, resp.Active)
		assert.Equal(t, 1, resp.Version)

		require.Len(t, repo.savedBanks, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credit.bank_profile.created", publisher.publishedEvents[0].EventType())
	})

	t.Run("rejects invalid profile data", func(t *testing.T) {
		uc := usecase.NewCreateBankProfileUseCase(&mockBankProfileRepository{}, &mockEventPublisher{})

		req := validBankRequest()
		req.AnnualRatePct = dec("-1")

		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create bank profile")
	})

	t.Run("fails when persistence fails", func(t *testing.T) {
		repo := &mockBankProfileRepository{
			saveFunc: func(context.Context, model.BankProfile) error {
				return fmt.Errorf("database unavailable")
			},
		}
		uc := usecase.NewCreateBankProfileUseCase(repo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), validBankRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save bank profile")
	})
}

func TestUpdateBankProfile_Execute(t *testing.T) {
	t.Run("updates an existing bank profile", func(t *testing.T) {
		existing := testBank(t, "BBVA", "12.5", 60)
		repo := &mockBankProfileRepository{
			findByIDFunc: func(_ context.Context, id string) (model.BankProfile, error) {
				assert.Equal(t, existing.ID(), id)
				return existing, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewUpdateBankProfileUseCase(repo, publisher)

		req := validBankRequest()
		req.AnnualRatePct = dec("11.9")

		resp, err := uc.Execute(context.Background(), existing.ID(), req)

		require.NoError(t, err)
		assert.True(t, resp.AnnualRatePct.Equal(dec("11.9")))
		require.Len(t, repo.savedBanks, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credit.bank_profile.updated", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails for an unknown bank", func(t *testing.T) {
		uc := usecase.NewUpdateBankProfileUseCase(&mockBankProfileRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), "missing", validBankRequest())
		require.Error(t, err)
		assert.True(t, errors.Is(err, port.ErrBankProfileNotFound))
	})
}

func TestDeactivateBankProfile_Execute(t *testing.T) {
	t.Run("deactivates an active bank", func(t *testing.T) {
		existing := testBank(t, "BBVA", "12.5", 60)
		repo := &mockBankProfileRepository{
			findByIDFunc: func(context.Context, string) (model.BankProfile, error) {
				return existing, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewDeactivateBankProfileUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), existing.ID())

		require.NoError(t, err)
		assert.False(t, resp.Active)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credit.bank_profile.deactivated", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails when the bank is already inactive", func(t *testing.T) {
		existing := testBank(t, "BBVA", "12.5", 60)
		inactive, err := existing.Deactivate(existing.UpdatedAt())
		require.NoError(t, err)
		inactive = inactive.ClearEvents()

		repo := &mockBankProfileRepository{
			findByIDFunc: func(context.Context, string) (model.BankProfile, error) {
				return inactive, nil
			},
		}
		uc := usecase.NewDeactivateBankProfileUseCase(repo, &mockEventPublisher{})

		_, err = uc.Execute(context.Background(), inactive.ID())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deactivate bank profile")
	})
}

func TestGetBankProfile_Execute(t *testing.T) {
	t.Run("returns the bank profile", func(t *testing.T) {
		existing := testBank(t, "Santander", "13.1", 48)
		repo := &mockBankProfileRepository{
			findByIDFunc: func(context.Context, string) (model.BankProfile, error) {
				return existing, nil
			},
		}
		uc := usecase.NewGetBankProfileUseCase(repo)

		resp, err := uc.Execute(context.Background(), existing.ID())
		require.NoError(t, err)
		assert.Equal(t, "Santander", resp.Name)
		assert.Equal(t, 48, resp.MaxTermMonths)
	})

	t.Run("fails for an unknown bank", func(t *testing.T) {
		uc := usecase.NewGetBankProfileUseCase(&mockBankProfileRepository{})

		_, err := uc.Execute(context.Background(), "missing")
		require.True(t, errors.Is(err, port.ErrBankProfileNotFound))
	})
}

func TestListBankProfiles_Execute(t *testing.T) {
	t.Run("lists the catalog", func(t *testing.T) {
		catalog := []model.BankProfile{
			testBank(t, "BBVA", "12.5", 60),
			testBank(t, "Santander", "13.1", 48),
		}
		repo := &mockBankProfileRepository{
			findAllFunc: func(_ context.Context, activeOnly bool) ([]model.BankProfile, error) {
				assert.False(t, activeOnly)
				return catalog, nil
			},
		}
		uc := usecase.NewListBankProfilesUseCase(repo)

		resp, err := uc.Execute(context.Background(), false)
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "BBVA", resp[0].Name)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := &mockBankProfileRepository{
			findAllFunc: func(context.Context, bool) ([]model.BankProfile, error) {
				return nil, fmt.Errorf("database unavailable")
			},
		}
		uc := usecase.NewListBankProfilesUseCase(repo)

		_, err := uc.Execute(context.Background(), false)
		require.Error(t, err)
	})
}
