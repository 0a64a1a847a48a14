// Package repositories provides the data access layer. Wallets are
// persisted with optimistic concurrency: no locks are held between
// load and save, and a commit only succeeds if it builds on the most
// recently committed version of every wallet it touches.
package repositories

import (
	"context"

	"github.com/google/uuid"

	"simplewallet/internal/models"
)

// WalletRepository loads wallet aggregates together with their
// transaction history.
type WalletRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)

	// Begin opens a unit of work for staging writes. Each use-case
	// invocation gets its own.
	Begin() WalletUnitOfWork
}

// WalletUnitOfWork batches wallet writes and commits them as one
// atomic operation.
//
// Save persists every staged wallet plus its uncommitted transactions,
// or nothing. Adding a wallet whose user already has one fails with
// ErrWalletExists. Updating a wallet whose stored version no longer
// matches the version read at load time fails with
// ErrVersionConflict; the caller re-reads and retries. A staged
// update whose row has vanished entirely fails with
// ErrConsistencyFault, which is fatal and must not be retried.
type WalletUnitOfWork interface {
	Add(wallet *models.Wallet)
	Update(wallet *models.Wallet)
	Save(ctx context.Context) error
}

// UserRepository persists user identities for the auth flow.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
