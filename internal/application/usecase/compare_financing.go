package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/dto"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/event"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/port"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/service"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/valueobject"
	"github.com/crisgp1/cliqueatools-sub003/pkg/money"
)

// ErrInvalidCurrency is returned when the request carries a malformed ISO
// 4217 currency code.
var ErrInvalidCurrency = errors.New("invalid currency")

// comparisonCacheTTL bounds staleness between a rate change and the next
// recomputed comparison. The cache key includes every bank's version, so a
// catalog change invalidates naturally; the TTL only caps memory.
const comparisonCacheTTL = 15 * time.Minute

// CompareFinancingUseCase orchestrates one financing comparison: load the
// active bank catalog, run the comparison engine, publish the completion
// event, and cache the result.
type CompareFinancingUseCase struct {
	bankRepo  port.BankProfileRepository
	cache     port.ComparisonCache
	publisher port.EventPublisher
	engine    *service.ComparisonEngine
	logger    *slog.Logger
}

// NewCompareFinancingUseCase wires dependencies.
func NewCompareFinancingUseCase(
	bankRepo port.BankProfileRepository,
	cache port.ComparisonCache,
	publisher port.EventPublisher,
	engine *service.ComparisonEngine,
	logger *slog.Logger,
) *CompareFinancingUseCase {
	return &CompareFinancingUseCase{
		bankRepo:  bankRepo,
		cache:     cache,
		publisher: publisher,
		engine:    engine,
		logger:    logger,
	}
}

// Execute runs the comparison. Validation failures are returned as a
// valueobject.ValidationErrors value so the caller can report every problem
// at once.
func (uc *CompareFinancingUseCase) Execute(
	ctx context.Context,
	req dto.CompareRequest,
) (dto.ComparisonResponse, error) {
	criterion, err := valueobject.NewRankCriterion(req.Criterion)
	if err != nil {
		return dto.ComparisonResponse{}, fmt.Errorf("parse criterion: %w", err)
	}

	currency := money.MXN
	if req.Currency != "" {
		currency, err = money.NewCurrency(req.Currency)
		if err != nil {
			return dto.ComparisonResponse{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, err)
		}
	}

	request := model.FinancingRequest{
		VehicleValues: req.VehicleValues,
		DownPayment:   req.DownPayment,
		TermMonths:    req.TermMonths,
	}

	banks, err := uc.bankRepo.FindAll(ctx, true)
	if err != nil {
		return dto.ComparisonResponse{}, fmt.Errorf("load bank catalog: %w", err)
	}

	key := comparisonCacheKey(request, criterion, currency, banks)
	if cached, ok := uc.cache.Get(ctx, key); ok {
		var resp dto.ComparisonResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return resp, nil
		}
		// A corrupt entry falls through to recomputation.
	}

	result, err := uc.engine.Compare(ctx, request, banks, criterion)
	if err != nil {
		return dto.ComparisonResponse{}, err
	}

	completed := event.NewComparisonCompleted(
		uuid.New().String(),
		criterion.String(),
		request.Principal(),
		request.TermMonths,
		len(result.Quotes),
		len(result.Excluded),
		result.BestBankID,
	)
	// The comparison is a pure read; an analytics event that cannot be
	// delivered must not fail it.
	if err := uc.publisher.Publish(ctx, completed); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish comparison event", "error", err)
	}

	resp := toComparisonResponse(result, currency)
	if encoded, err := json.Marshal(resp); err == nil {
		// Cache failures only cost a recomputation next time.
		_ = uc.cache.Set(ctx, key, string(encoded), comparisonCacheTTL)
	}

	return resp, nil
}

// comparisonCacheKey fingerprints the request together with the catalog state
// it was computed against. Any bank create/update/deactivate changes the key.
func comparisonCacheKey(
	request model.FinancingRequest,
	criterion valueobject.RankCriterion,
	currency money.Currency,
	banks []model.BankProfile,
) string {
	var b strings.Builder
	b.WriteString(criterion.String())
	b.WriteByte('|')
	b.WriteString(currency.Code())
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(request.TermMonths))
	b.WriteByte('|')
	b.WriteString(request.DownPayment.String())
	for _, v := range request.VehicleValues {
		b.WriteByte('|')
		b.WriteString(v.String())
	}
	for _, bank := range banks {
		b.WriteByte('|')
		b.WriteString(bank.ID())
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(bank.Version()))
	}
	sum := sha256.Sum256([]byte(b.String()))
	return "credit:comparison:" + hex.EncodeToString(sum[:])
}

func toComparisonResponse(result model.ComparisonResult, currency money.Currency) dto.ComparisonResponse {
	quotes := make([]dto.QuoteResponse, len(result.Quotes))
	for i, q := range result.Quotes {
		quotes[i] = dto.QuoteResponse{
			BankID:              q.BankID,
			BankName:            q.BankName,
			Principal:           q.Principal,
			TermMonths:          q.TermMonths,
			PeriodicRate:        q.PeriodicRate,
			MonthlyPayment:      q.MonthlyPayment,
			TotalInterest:       q.TotalInterest,
			CommissionAmount:    q.CommissionAmount,
			TotalCost:           q.TotalCost,
			EffectiveAnnualRate: q.EffectiveAnnualRate,
			RateSource:          q.RateSource.String(),
			Rank:                q.Rank,
			IsBest:              q.IsBest,
		}
	}

	var excluded []dto.ExcludedBankResponse
	for _, e := range result.Excluded {
		excluded = append(excluded, dto.ExcludedBankResponse{
			BankID:   e.BankID,
			BankName: e.BankName,
			Code:     string(e.Code),
			Reason:   e.Reason,
		})
	}

	return dto.ComparisonResponse{
		Criterion:  result.Criterion.String(),
		Currency:   currency.Code(),
		Quotes:     quotes,
		BestBankID: result.BestBankID,
		Excluded:   excluded,
	}
}
