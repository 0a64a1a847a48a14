// Package transfer coordinates moving funds between two wallet
// aggregates under a single atomic commit.
package transfer

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"simplewallet/internal/errors"
	"simplewallet/internal/models"
	"simplewallet/internal/repositories"
	"simplewallet/internal/services/wallet"
)

// Service executes wallet-to-wallet transfers.
type Service interface {
	Transfer(ctx context.Context, sourceUserID, destinationUserID uuid.UUID, amount decimal.Decimal, currency string) error
}

type service struct {
	repo  repositories.WalletRepository
	cache wallet.Cache
}

// NewService creates a new transfer service. The cache is optional.
func NewService(repo repositories.WalletRepository, cache wallet.Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo, cache: cache}
}

// Transfer debits the source wallet and credits the destination. Both
// halves are computed in memory before anything is written, and both
// wallets commit in one unit of work: a version conflict on either
// side rolls back the whole operation with nothing persisted. On
// ErrVersionConflict the caller retries from a fresh load.
func (s *service) Transfer(ctx context.Context, sourceUserID, destinationUserID uuid.UUID, amount decimal.Decimal, currency string) error {
	if sourceUserID == destinationUserID {
		return errors.ErrSelfTransfer
	}

	source, err := s.repo.GetByUserID(ctx, sourceUserID)
	if err != nil {
		return err
	}
	destination, err := s.repo.GetByUserID(ctx, destinationUserID)
	if err != nil {
		return err
	}

	money := models.NewMoney(amount, currency)
	if err := source.Transfer(destination, money); err != nil {
		return err
	}

	uow := s.repo.Begin()
	uow.Update(source)
	uow.Update(destination)
	if err := uow.Save(ctx); err != nil {
		return err
	}

	s.invalidate(ctx, sourceUserID)
	s.invalidate(ctx, destinationUserID)
	return nil
}

func (s *service) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Printf("failed to invalidate wallet cache for user %s: %v", userID, err)
	}
}
