package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Equal(t, 16, cfg.PostgresMaxOpenConns)
	assert.False(t, cfg.BlockchainEnabled)
	assert.Equal(t, "https://polygon-rpc.com", cfg.BlockchainRPCURL)
	assert.Equal(t, "0x0000000000000000000000000000000000000000", cfg.MassCoinContract)
	assert.Equal(t, "@every 5m", cfg.SyncSchedule)
	assert.Equal(t, 24*time.Hour, cfg.TransferRequestTTL)
	assert.Equal(t, 30*time.Second, cfg.ChainMaxElapsed)
	assert.Equal(t, 5*time.Minute, cfg.ChainClaimLease)
	assert.Equal(t, 5*time.Minute, cfg.WithdrawalStaleAfter)
	assert.Equal(t, 0.01, cfg.MassUSDRate)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoad_FromFile(t *testing.T) {
	os.Clearenv()

	path := filepath.Join(t.TempDir(), "config.env")
	content := "APP_PORT=9090\n" +
		"POSTGRES_PORT=6543\n" +
		"KAFKA_BROKERS=k1:9092,k2:9092\n" +
		"BLOCKCHAIN_ENABLED=true\n" +
		"CHAIN_MAX_ELAPSED=5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 6543, cfg.PostgresPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.BlockchainEnabled)
	assert.Equal(t, 5*time.Second, cfg.ChainMaxElapsed)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_PORT", "7070")

	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=9090\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
}

func TestLoad_InvalidValue(t *testing.T) {
	os.Clearenv()
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := Load("")
	assert.Error(t, err)
}

func TestConfig_Addresses(t *testing.T) {
	cfg := &Config{
		AppHost: "0.0.0.0", AppPort: "8080",
		PostgresUser: "u", PostgresPassword: "p", PostgresHost: "db", PostgresPort: 5432, PostgresDB: "maschat",
		RedisHost: "cache", RedisPort: 6379,
		ExchangerHost: "rates", ExchangerPort: "50051",
		JWTExpSecond: 60,
	}

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, "postgres://u:p@db:5432/maschat?sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
	assert.Equal(t, "rates:50051", cfg.ExchangerAddr())
	assert.Equal(t, time.Minute, cfg.JWTExpiration())
}
