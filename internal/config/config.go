package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every setting of the service. Values come from the process
// environment, optionally pre-populated from a dotenv file.
type Config struct {
	AppHost     string `env:"APP_HOST" envDefault:"localhost"`
	AppPort     string `env:"APP_PORT" envDefault:"8080"`
	LogLevel    string `env:"APP_LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"APP_LOG_ENCODING" envDefault:"json"`
	AdminKey    string `env:"APP_ADMIN_KEY"`

	PostgresHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PostgresPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PostgresDB           string `env:"POSTGRES_DB" envDefault:"database"`
	PostgresMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PostgresMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisPoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"masscoin.transactions"`

	ExchangerHost string        `env:"GW_EXCHANGER_HOST" envDefault:"localhost"`
	ExchangerPort string        `env:"GW_EXCHANGER_PORT" envDefault:"50051"`
	MassUSDRate   float64       `env:"MASS_USD_RATE" envDefault:"0.01"`
	PriceTTL      time.Duration `env:"PRICE_TTL" envDefault:"1m"`

	JWTSecretKey string `env:"JWT_SECRET_KEY" envDefault:"my_super_secret_key"`
	JWTExpSecond int    `env:"JWT_EXP_SECOND" envDefault:"3600"`

	BlockchainEnabled      bool          `env:"BLOCKCHAIN_ENABLED" envDefault:"false"`
	BlockchainRPCURL       string        `env:"BLOCKCHAIN_RPC_URL" envDefault:"https://polygon-rpc.com"`
	BlockchainChainID      int64         `env:"BLOCKCHAIN_CHAIN_ID" envDefault:"137"`
	BlockchainPrivateKey   string        `env:"BLOCKCHAIN_PRIVATE_KEY"`
	BlockchainHotWallet    string        `env:"BLOCKCHAIN_HOT_WALLET" envDefault:"0x0000000000000000000000000000000000000000"`
	MassCoinContract       string        `env:"MASSCOIN_CONTRACT_ADDRESS" envDefault:"0x0000000000000000000000000000000000000000"`
	StakingContract        string        `env:"STAKING_CONTRACT_ADDRESS" envDefault:"0x0000000000000000000000000000000000000000"`
	ChainMaxElapsed        time.Duration `env:"CHAIN_MAX_ELAPSED" envDefault:"30s"`
	ChainMaxAttempts       int           `env:"CHAIN_MAX_ATTEMPTS" envDefault:"5"`
	ChainBalanceTTL        time.Duration `env:"CHAIN_BALANCE_TTL" envDefault:"1m"`
	ChainSyncConcurrency   int           `env:"CHAIN_SYNC_CONCURRENCY" envDefault:"8"`
	ChainDispatchBatchSize int           `env:"CHAIN_DISPATCH_BATCH_SIZE" envDefault:"100"`
	ChainClaimLease        time.Duration `env:"CHAIN_CLAIM_LEASE" envDefault:"5m"` // longer than CHAIN_MAX_ELAPSED

	SyncSchedule       string `env:"SYNC_SCHEDULE" envDefault:"@every 5m"`
	DispatchSchedule   string `env:"DISPATCH_SCHEDULE" envDefault:"@every 10s"`
	WithdrawalSchedule string `env:"WITHDRAWAL_SCHEDULE" envDefault:"@every 30s"`
	ExpirySchedule     string `env:"EXPIRY_SCHEDULE" envDefault:"@every 1m"`
	CleanupSchedule    string `env:"CLEANUP_SCHEDULE" envDefault:"@every 10m"`

	WithdrawalBatchSize  int           `env:"WITHDRAWAL_BATCH_SIZE" envDefault:"50"`
	WithdrawalStaleAfter time.Duration `env:"WITHDRAWAL_STALE_AFTER" envDefault:"5m"`
	RateLimitIdle        time.Duration `env:"RATE_LIMIT_IDLE" envDefault:"10m"`

	PayoutURL     string        `env:"PAYOUT_URL"`
	PayoutAPIKey  string        `env:"PAYOUT_API_KEY"`
	PayoutTimeout time.Duration `env:"PAYOUT_TIMEOUT" envDefault:"10s"`

	TransferRequestTTL time.Duration `env:"TRANSFER_REQUEST_TTL" envDefault:"24h"`

	ChatRatePerSec float64 `env:"CHAT_RATE_PER_SEC" envDefault:"5"`
	ChatRateBurst  int     `env:"CHAT_RATE_BURST" envDefault:"10"`
	HTTPRatePerSec float64 `env:"HTTP_RATE_PER_SEC" envDefault:"20"`
	HTTPRateBurst  int     `env:"HTTP_RATE_BURST" envDefault:"40"`
}

// Load reads the dotenv file at path (missing file is not an error) and
// parses the environment into a Config.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// PostgresDSN returns the connection string for the pgx stdlib driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// ExchangerAddr returns host:port of the gRPC price feed.
func (c *Config) ExchangerAddr() string {
	return fmt.Sprintf("%s:%s", c.ExchangerHost, c.ExchangerPort)
}

// HTTPAddr returns the listen address of the HTTP server.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// JWTExpiration returns the token lifetime.
func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpSecond) * time.Second
}
