// Package cache provides a redis-backed read cache for wallet
// lookups. It is an optimization only: every write path invalidates,
// and a cache failure falls back to the database.
package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"simplewallet/internal/models"
)

// ErrMiss is returned when no entry exists for the key.
var ErrMiss = stderrors.New("cache miss")

// WalletCache stores wallet snapshots keyed by user id.
type WalletCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWalletCache creates a wallet cache with the given entry TTL.
func NewWalletCache(client *redis.Client, ttl time.Duration) *WalletCache {
	return &WalletCache{client: client, ttl: ttl}
}

func (c *WalletCache) Get(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	data, err := c.client.Get(ctx, walletKey(userID)).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}

	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (c *WalletCache) Set(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, walletKey(wallet.UserID), data, c.ttl).Err()
}

func (c *WalletCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, walletKey(userID)).Err()
}

func walletKey(userID uuid.UUID) string {
	return "wallet:user:" + userID.String()
}
