package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"simplewallet/internal/errors"
	"simplewallet/internal/models"
)

type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a gorm-backed wallet repository.
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).First(&wallet, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if err := r.loadTransactions(ctx, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *walletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if err := r.loadTransactions(ctx, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// loadTransactions fetches the wallet's history. Transfers belong to
// two wallets, so the records are matched by either side.
func (r *walletRepository) loadTransactions(ctx context.Context, wallet *models.Wallet) error {
	err := r.db.WithContext(ctx).
		Where("source_wallet_id = ? OR destination_wallet_id = ?", wallet.ID, wallet.ID).
		Order("timestamp ASC").
		Find(&wallet.Transactions).Error
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	return nil
}

func (r *walletRepository) Begin() WalletUnitOfWork {
	return &walletUnitOfWork{db: r.db}
}

type walletUnitOfWork struct {
	db      *gorm.DB
	adds    []*models.Wallet
	updates []*models.Wallet
}

func (u *walletUnitOfWork) Add(wallet *models.Wallet) {
	u.adds = append(u.adds, wallet)
}

func (u *walletUnitOfWork) Update(wallet *models.Wallet) {
	u.updates = append(u.updates, wallet)
}

func (u *walletUnitOfWork) Save(ctx context.Context) error {
	if len(u.adds) == 0 && len(u.updates) == 0 {
		return nil
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, wallet := range u.adds {
			if err := tx.Create(wallet).Error; err != nil {
				if isUniqueViolation(err) {
					return errors.ErrWalletExists
				}
				return fmt.Errorf("failed to create wallet: %w", err)
			}
			if err := createTransactions(tx, wallet); err != nil {
				return err
			}
		}

		for _, wallet := range u.updates {
			if err := u.applyUpdate(tx, wallet); err != nil {
				return err
			}
			if err := createTransactions(tx, wallet); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, wallet := range u.updates {
		wallet.Version++
		wallet.MarkCommitted()
	}
	for _, wallet := range u.adds {
		wallet.MarkCommitted()
	}
	u.adds, u.updates = nil, nil
	return nil
}

// applyUpdate writes the new balance guarded by a compare-and-swap on
// the version read at load time. Zero rows affected means another
// writer committed first, unless the row is gone altogether.
func (u *walletUnitOfWork) applyUpdate(tx *gorm.DB, wallet *models.Wallet) error {
	result := tx.Model(&models.Wallet{}).
		Where("id = ? AND version = ?", wallet.ID, wallet.Version).
		Updates(map[string]interface{}{
			"balance_amount":   wallet.Balance.Amount,
			"balance_currency": wallet.Balance.Currency,
			"version":          wallet.Version + 1,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to inspect wallet row: %w", err)
		}
		if count == 0 {
			return errors.ErrConsistencyFault
		}
		return errors.ErrVersionConflict
	}
	return nil
}

func createTransactions(tx *gorm.DB, wallet *models.Wallet) error {
	pending := wallet.UncommittedTransactions()
	if len(pending) == 0 {
		return nil
	}
	if err := tx.Create(&pending).Error; err != nil {
		return fmt.Errorf("failed to record transactions: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return stderrors.Is(err, gorm.ErrDuplicatedKey)
}
