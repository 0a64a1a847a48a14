package transfer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplewallet/internal/errors"
	"simplewallet/internal/models"
	"simplewallet/internal/repositories"
)

func seedUserWallet(t *testing.T, repo *repositories.MemoryWalletRepository, balance int64) (uuid.UUID, *models.Wallet) {
	t.Helper()
	userID := uuid.New()
	w := models.NewWallet(userID, "USD")
	if balance > 0 {
		require.NoError(t, w.Deposit(models.NewMoney(decimal.NewFromInt(balance), "USD")))
	}
	uow := repo.Begin()
	uow.Add(w)
	require.NoError(t, uow.Save(context.Background()))
	return userID, w
}

func TestTransfer(t *testing.T) {
	repo := repositories.NewMemoryWalletRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	sourceUser, sourceWallet := seedUserWallet(t, repo, 100)
	destUser, destWallet := seedUserWallet(t, repo, 0)

	err := svc.Transfer(ctx, sourceUser, destUser, decimal.NewFromInt(60), "USD")
	require.NoError(t, err)

	source, err := repo.GetByID(ctx, sourceWallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "40", source.Balance.Amount.String())
	require.Len(t, source.Transactions, 2)
	out := source.Transactions[1]
	assert.Equal(t, models.TransactionTypeTransfer, out.Type)
	assert.Equal(t, source.ID, out.SourceWalletID)
	require.NotNil(t, out.DestinationWalletID)
	assert.Equal(t, destWallet.ID, *out.DestinationWalletID)

	destination, err := repo.GetByID(ctx, destWallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "60", destination.Balance.Amount.String())
	require.Len(t, destination.Transactions, 1)
	in := destination.Transactions[0]
	assert.Equal(t, models.TransactionTypeTransfer, in.Type)
	assert.Equal(t, sourceWallet.ID, in.SourceWalletID)
}

func TestTransfer_SelfTransfer(t *testing.T) {
	repo := repositories.NewMemoryWalletRepository()
	svc := NewService(repo, nil)
	userID, _ := seedUserWallet(t, repo, 100)

	err := svc.Transfer(context.Background(), userID, userID, decimal.NewFromInt(10), "USD")
	assert.ErrorIs(t, err, errors.ErrSelfTransfer)
}

func TestTransfer_DestinationNotFound(t *testing.T) {
	repo := repositories.NewMemoryWalletRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()
	sourceUser, sourceWallet := seedUserWallet(t, repo, 100)

	err := svc.Transfer(ctx, sourceUser, uuid.New(), decimal.NewFromInt(10), "USD")
	assert.ErrorIs(t, err, errors.ErrWalletNotFound)

	// The source wallet is untouched: no partial effect.
	stored, err := repo.GetByID(ctx, sourceWallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", stored.Balance.Amount.String())
	assert.Len(t, stored.Transactions, 1)
}

func TestTransfer_SourceNotFound(t *testing.T) {
	repo := repositories.NewMemoryWalletRepository()
	svc := NewService(repo, nil)
	destUser, _ := seedUserWallet(t, repo, 0)

	err := svc.Transfer(context.Background(), uuid.New(), destUser, decimal.NewFromInt(10), "USD")
	assert.ErrorIs(t, err, errors.ErrWalletNotFound)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	repo := repositories.NewMemoryWalletRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()
	sourceUser, sourceWallet := seedUserWallet(t, repo, 50)
	destUser, destWallet := seedUserWallet(t, repo, 0)

	err := svc.Transfer(ctx, sourceUser, destUser, decimal.NewFromInt(60), "USD")
	assert.ErrorIs(t, err, errors.ErrInsufficientBalance)

	source, err := repo.GetByID(ctx, sourceWallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "50", source.Balance.Amount.String())

	destination, err := repo.GetByID(ctx, destWallet.ID)
	require.NoError(t, err)
	assert.True(t, destination.Balance.Amount.IsZero())
}

func TestTransfer_InvalidAmount(t *testing.T) {
	repo := repositories.NewMemoryWalletRepository()
	svc := NewService(repo, nil)
	sourceUser, _ := seedUserWallet(t, repo, 100)
	destUser, _ := seedUserWallet(t, repo, 0)

	err := svc.Transfer(context.Background(), sourceUser, destUser, decimal.Zero, "USD")
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)
}

func TestTransfer_VersionConflict(t *testing.T) {
	repo := repositories.NewMemoryWalletRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()
	sourceUser, sourceWallet := seedUserWallet(t, repo, 100)
	destUser, destWallet := seedUserWallet(t, repo, 0)

	// Bump the destination between this transfer's load and commit by
	// running a competing commit first.
	competitor, err := repo.GetByID(ctx, destWallet.ID)
	require.NoError(t, err)

	// Load both wallets the way the service will see them, then let
	// the competitor win.
	require.NoError(t, competitor.Deposit(models.NewMoney(decimal.NewFromInt(5), "USD")))

	source, err := repo.GetByUserID(ctx, sourceUser)
	require.NoError(t, err)
	destination, err := repo.GetByUserID(ctx, destUser)
	require.NoError(t, err)

	uow := repo.Begin()
	uow.Update(competitor)
	require.NoError(t, uow.Save(ctx))

	require.NoError(t, source.Transfer(destination, models.NewMoney(decimal.NewFromInt(60), "USD")))
	uow = repo.Begin()
	uow.Update(source)
	uow.Update(destination)
	assert.ErrorIs(t, uow.Save(ctx), errors.ErrVersionConflict)

	// A retry through the service from fresh state succeeds.
	require.NoError(t, svc.Transfer(ctx, sourceUser, destUser, decimal.NewFromInt(60), "USD"))

	stored, err := repo.GetByID(ctx, sourceWallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "40", stored.Balance.Amount.String())

	storedDest, err := repo.GetByID(ctx, destWallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "65", storedDest.Balance.Amount.String())
}
