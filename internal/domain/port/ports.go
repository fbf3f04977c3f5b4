package port

import (
	"context"
	"errors"
	"time"

	"github.com/crisgp1/cliqueatools-sub003/internal/domain/event"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/model"
)

// ErrBankProfileNotFound is returned by repositories when no bank profile
// matches the given identifier.
var ErrBankProfileNotFound = errors.New("bank profile not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// BankProfileRepository persists and retrieves bank profiles.
type BankProfileRepository interface {
	Save(ctx context.Context, bank model.BankProfile) error
	FindByID(ctx context.Context, id string) (model.BankProfile, error)
	FindAll(ctx context.Context, activeOnly bool) ([]model.BankProfile, error)
}

// ---------------------------------------------------------------------------
// Cache port
// ---------------------------------------------------------------------------

// ComparisonCache stores serialized comparison results keyed by a request
// fingerprint. A miss or a cache failure simply means recomputation.
type ComparisonCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
