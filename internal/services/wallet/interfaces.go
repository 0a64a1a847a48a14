package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"simplewallet/internal/models"
)

// Service exposes the wallet use cases. Every mutation follows the
// same shape: load the aggregate, apply the domain operation in
// memory, then commit through a unit of work. Concurrent writers are
// detected at commit time and surface ErrVersionConflict; retrying is
// the caller's decision.
type Service interface {
	CreateWallet(ctx context.Context, userID uuid.UUID, currency string) (*models.Wallet, error)
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string) (*models.Wallet, error)
	Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string) (*models.Wallet, error)
}

// Cache is the read cache for wallet lookups. Implementations may
// fail without affecting correctness; the service falls back to the
// repository.
type Cache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	Set(ctx context.Context, wallet *models.Wallet) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return nil, errCacheDisabled
}

func (noopCache) Set(ctx context.Context, wallet *models.Wallet) error { return nil }

func (noopCache) Invalidate(ctx context.Context, userID uuid.UUID) error { return nil }
