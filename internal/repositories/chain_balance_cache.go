package repositories

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/maschat/internal/logger"
)

// ChainBalanceCacheRepository caches on-chain balances (base units) in Redis.
type ChainBalanceCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewChainBalanceCacheRepository(client *redis.Client, expiration time.Duration) *ChainBalanceCacheRepository {
	return &ChainBalanceCacheRepository{client: client, exp: expiration}
}

func chainBalanceKey(address string) string {
	return fmt.Sprintf("chain_balance:%s", strings.ToLower(address))
}

// Get returns the cached balance of address or ErrCacheMiss.
func (r *ChainBalanceCacheRepository) Get(ctx context.Context, address string) (*big.Int, error) {
	key := chainBalanceKey(address)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Debugw("cache get", "key", key, "result", val, "error", err)
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	balance, ok := new(big.Int).SetString(val, 10)
	if !ok {
		return nil, fmt.Errorf("invalid cached balance %q", val)
	}
	return balance, nil
}

// Set caches the balance of address.
func (r *ChainBalanceCacheRepository) Set(ctx context.Context, address string, balance *big.Int) error {
	key := chainBalanceKey(address)
	err := r.client.Set(ctx, key, balance.String(), r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "value", balance.String(), "error", err)
	return err
}
