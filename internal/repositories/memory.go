package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"simplewallet/internal/errors"
	"simplewallet/internal/models"
)

// MemoryWalletRepository is an in-memory WalletRepository with the
// same optimistic-concurrency contract as the gorm implementation:
// compare-and-swap on the wallet version at commit time, all staged
// writes applied atomically or not at all. Used by tests and local
// development.
type MemoryWalletRepository struct {
	mu           sync.RWMutex
	wallets      map[uuid.UUID]models.Wallet
	byUser       map[uuid.UUID]uuid.UUID
	transactions []models.Transaction
}

// NewMemoryWalletRepository creates an empty in-memory store.
func NewMemoryWalletRepository() *MemoryWalletRepository {
	return &MemoryWalletRepository{
		wallets: make(map[uuid.UUID]models.Wallet),
		byUser:  make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *MemoryWalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.wallets[id]
	if !ok {
		return nil, errors.ErrWalletNotFound
	}
	return r.snapshot(stored), nil
}

func (r *MemoryWalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUser[userID]
	if !ok {
		return nil, errors.ErrWalletNotFound
	}
	return r.snapshot(r.wallets[id]), nil
}

func (r *MemoryWalletRepository) Begin() WalletUnitOfWork {
	return &memoryUnitOfWork{repo: r}
}

// snapshot copies a stored wallet so concurrent callers mutate
// independent aggregates. Callers must hold at least the read lock.
func (r *MemoryWalletRepository) snapshot(stored models.Wallet) *models.Wallet {
	wallet := stored
	wallet.Transactions = nil
	for _, tx := range r.transactions {
		if tx.SourceWalletID == wallet.ID ||
			(tx.DestinationWalletID != nil && *tx.DestinationWalletID == wallet.ID) {
			wallet.Transactions = append(wallet.Transactions, tx)
		}
	}
	return &wallet
}

type memoryUnitOfWork struct {
	repo    *MemoryWalletRepository
	adds    []*models.Wallet
	updates []*models.Wallet
}

func (u *memoryUnitOfWork) Add(wallet *models.Wallet) {
	u.adds = append(u.adds, wallet)
}

func (u *memoryUnitOfWork) Update(wallet *models.Wallet) {
	u.updates = append(u.updates, wallet)
}

func (u *memoryUnitOfWork) Save(ctx context.Context) error {
	if len(u.adds) == 0 && len(u.updates) == 0 {
		return nil
	}

	r := u.repo
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate everything first so the apply phase cannot fail and
	// leave a partial commit behind.
	for _, wallet := range u.adds {
		if _, ok := r.byUser[wallet.UserID]; ok {
			return errors.ErrWalletExists
		}
		if _, ok := r.wallets[wallet.ID]; ok {
			return errors.ErrWalletExists
		}
	}
	for _, wallet := range u.updates {
		stored, ok := r.wallets[wallet.ID]
		if !ok {
			return errors.ErrConsistencyFault
		}
		if stored.Version != wallet.Version {
			return errors.ErrVersionConflict
		}
	}

	for _, wallet := range u.adds {
		r.transactions = append(r.transactions, wallet.UncommittedTransactions()...)
		wallet.MarkCommitted()
		stored := *wallet
		stored.Transactions = nil
		r.wallets[wallet.ID] = stored
		r.byUser[wallet.UserID] = wallet.ID
	}
	for _, wallet := range u.updates {
		wallet.Version++
		r.transactions = append(r.transactions, wallet.UncommittedTransactions()...)
		wallet.MarkCommitted()
		stored := *wallet
		stored.Transactions = nil
		r.wallets[wallet.ID] = stored
	}

	u.adds, u.updates = nil, nil
	return nil
}
