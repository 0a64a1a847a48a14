// Package wallet implements the single-wallet use cases: create,
// lookup, deposit and withdraw.
package wallet

import (
	"context"
	stderrors "errors"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"simplewallet/internal/errors"
	"simplewallet/internal/models"
	"simplewallet/internal/repositories"
)

var errCacheDisabled = stderrors.New("cache disabled")

type service struct {
	repo  repositories.WalletRepository
	cache Cache
}

// NewService creates a new wallet service.
func NewService(repo repositories.WalletRepository, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		cache = noopCache{}
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) CreateWallet(ctx context.Context, userID uuid.UUID, currency string) (*models.Wallet, error) {
	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return nil, errors.ErrWalletExists
	} else if !stderrors.Is(err, errors.ErrWalletNotFound) {
		return nil, err
	}

	wallet := models.NewWallet(userID, currency)

	// The uniqueness index on user_id backs up the pre-check: two
	// racing creates still end with a single wallet.
	uow := s.repo.Begin()
	uow.Add(wallet)
	if err := uow.Save(ctx); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, wallet); err != nil {
		log.Printf("failed to cache wallet for user %s: %v", userID, err)
	}
	return wallet, nil
}

func (s *service) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	if wallet, err := s.cache.Get(ctx, userID); err == nil {
		return wallet, nil
	}

	wallet, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, wallet); err != nil {
		log.Printf("failed to cache wallet for user %s: %v", userID, err)
	}
	return wallet, nil
}

func (s *service) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string) (*models.Wallet, error) {
	return s.mutate(ctx, userID, func(w *models.Wallet) error {
		return w.Deposit(models.NewMoney(amount, currency))
	})
}

func (s *service) Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string) (*models.Wallet, error) {
	return s.mutate(ctx, userID, func(w *models.Wallet) error {
		return w.Withdraw(models.NewMoney(amount, currency))
	})
}

// mutate runs a domain operation against a freshly loaded aggregate
// and commits it. Mutations always read through the repository, never
// the cache, so the version token is the latest committed one.
func (s *service) mutate(ctx context.Context, userID uuid.UUID, op func(*models.Wallet) error) (*models.Wallet, error) {
	wallet, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := op(wallet); err != nil {
		return nil, err
	}

	uow := s.repo.Begin()
	uow.Update(wallet)
	if err := uow.Save(ctx); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Printf("failed to invalidate wallet cache for user %s: %v", userID, err)
	}
	return wallet, nil
}
