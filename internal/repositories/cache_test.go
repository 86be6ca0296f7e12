package repositories

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func TestPriceCacheRepository(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	repo := NewPriceCacheRepository(rdb, 2*time.Second)

	t.Run("miss", func(t *testing.T) {
		_, err := repo.GetPrice(ctx, "MASS", "EUR")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.SetPrice(ctx, "MASS", "USD", decimal.RequireFromString("0.0125")))
		price, err := repo.GetPrice(ctx, "MASS", "USD")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.0125").Equal(price))
	})

	t.Run("expires", func(t *testing.T) {
		require.NoError(t, repo.SetPrice(ctx, "MASS", "RUB", decimal.NewFromInt(1)))
		time.Sleep(3 * time.Second)
		_, err := repo.GetPrice(ctx, "MASS", "RUB")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

func TestChainBalanceCacheRepository(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	repo := NewChainBalanceCacheRepository(rdb, time.Minute)

	addr := "0xAbCdEf0000000000000000000000000000000001"
	_, err := repo.Get(ctx, addr)
	assert.ErrorIs(t, err, ErrCacheMiss)

	balance, _ := new(big.Int).SetString("1000000000000000000000", 10)
	require.NoError(t, repo.Set(ctx, addr, balance))

	got, err := repo.Get(ctx, "0xabcdef0000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Cmp(got))
}
