package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/maschat/internal/chain"
	"github.com/sbilibin2017/maschat/internal/chat"
	"github.com/sbilibin2017/maschat/internal/config"
	"github.com/sbilibin2017/maschat/internal/facades"
	"github.com/sbilibin2017/maschat/internal/handlers"
	"github.com/sbilibin2017/maschat/internal/jwt"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/metrics"
	"github.com/sbilibin2017/maschat/internal/middlewares"
	"github.com/sbilibin2017/maschat/internal/migrations"
	"github.com/sbilibin2017/maschat/internal/ratelimit"
	"github.com/sbilibin2017/maschat/internal/repositories"
	"github.com/sbilibin2017/maschat/internal/scheduler"
	"github.com/sbilibin2017/maschat/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/maschat/docs"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title maschat API
// @version 1.0.0
// @description MassCoin wallet, transfers, withdrawals and direct messaging
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// walletService is everything the HTTP layer asks of the wallet service.
type walletService interface {
	handlers.WalletGetter
	handlers.AddressUpdater
	handlers.Transferer
	handlers.Tipper
	handlers.Staker
	handlers.TransactionLister
	handlers.StatsReader
	handlers.Rewarder
}

type authService interface {
	handlers.Registerer
	handlers.Loginer
}

type transferRequestService interface {
	handlers.TransferRequestCreator
	handlers.TransferRequestActor
	handlers.TransferRequestLister
}

type withdrawalService interface {
	handlers.WithdrawalRequester
	handlers.WithdrawalReader
}

// routeDeps carries what the router needs. db and chat may be nil.
type routeDeps struct {
	cfg         *config.Config
	db          *sqlx.DB
	tokener     *jwt.JWT
	metrics     *metrics.Metrics
	httpLimiter *ratelimit.Limiter
	chat        http.Handler

	auth        authService
	wallet      walletService
	requests    transferRequestService
	withdrawals withdrawalService
	messages    handlers.MessageService
	blockchain  handlers.BlockchainSwitch
}

// newRouter mounts every route of the service.
func newRouter(d routeDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(d.metrics.Middleware)

	var pinger handlers.Pinger
	if d.db != nil {
		pinger = d.db
	}

	// Public routes
	r.Group(func(r chi.Router) {
		if d.db != nil {
			r.Use(middlewares.TxMiddleware(d.db))
		}
		r.Post("/register", handlers.NewRegisterHandler(d.auth))
	})
	r.Post("/login", handlers.NewLoginHandler(d.auth))
	r.Get("/masscoin/health", handlers.NewHealthHandler(pinger))
	r.Method(http.MethodGet, "/metrics", d.metrics.Handler())
	if d.chat != nil {
		r.Method(http.MethodGet, "/ws", d.chat)
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", d.cfg.HTTPAddr())),
	))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(d.tokener))
		r.Use(middlewares.RateLimitMiddleware(d.httpLimiter))

		r.Route("/masscoin", func(r chi.Router) {
			r.Get("/wallet", handlers.NewGetWalletHandler(d.wallet))
			r.Post("/wallet/address", handlers.NewUpdateAddressHandler(d.wallet))
			r.Post("/transfer", handlers.NewTransferHandler(d.wallet))
			r.Post("/tip", handlers.NewTipHandler(d.wallet))
			r.Post("/stake", handlers.NewStakeHandler(d.wallet))
			r.Post("/unstake", handlers.NewUnstakeHandler(d.wallet))
			r.Get("/transactions", handlers.NewTransactionsHandler(d.wallet))
			r.Get("/user-stats", handlers.NewUserStatsHandler(d.wallet))

			r.Post("/transfer-request", handlers.NewCreateTransferRequestHandler(d.requests))
			r.Post("/transfer-request/{id}/approve", handlers.NewApproveTransferRequestHandler(d.requests))
			r.Post("/transfer-request/{id}/reject", handlers.NewRejectTransferRequestHandler(d.requests))
			r.Post("/transfer-request/{id}/cancel", handlers.NewCancelTransferRequestHandler(d.requests))
			r.Get("/transfer-requests", handlers.NewListTransferRequestsHandler(d.requests))
			r.Get("/transfer-requests/pending-count", handlers.NewPendingCountHandler(d.requests))

			r.Post("/withdrawals", handlers.NewRequestWithdrawalHandler(d.withdrawals))
			r.Get("/withdrawals", handlers.NewListWithdrawalsHandler(d.withdrawals))
			r.Get("/withdrawals/{id}", handlers.NewGetWithdrawalHandler(d.withdrawals))
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/send", handlers.NewSendMessageHandler(d.messages))
			r.Get("/conversation", handlers.NewConversationHandler(d.messages))
			r.Post("/mark-read", handlers.NewMarkReadHandler(d.messages))
			r.Delete("/{id}", handlers.NewDeleteMessageHandler(d.messages))
		})
	})

	// Operator routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.AdminKeyMiddleware(d.cfg.AdminKey))
		r.Get("/blockchain/status", handlers.NewBlockchainStatusHandler(d.blockchain))
		r.Post("/blockchain/enable", handlers.NewBlockchainToggleHandler(d.blockchain, true))
		r.Post("/blockchain/disable", handlers.NewBlockchainToggleHandler(d.blockchain, false))
		r.Post("/rewards", handlers.NewRewardHandler(d.wallet))
	})

	return r
}

// run initializes the logger, storage, messaging, chain access and the
// HTTP server, then blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Apply migrations
	if err := migrations.Up(cfg.PostgresDSN()); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, only when brokers are configured
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer func() {
			if err := kafkaWriter.Close(); err != nil {
				logger.Log.Errorw("Kafka writer close error", "error", err)
			}
		}()
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Connect to gRPC price feed
	conn, err := grpc.NewClient(cfg.ExchangerAddr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to gRPC service at %s: %w", cfg.ExchangerAddr(), err)
	}
	defer conn.Close()
	exchangeClient := pb.NewExchangeServiceClient(conn)

	// Chain access. Without a platform key only the simulated ledger runs.
	m := metrics.New()
	var ledger services.Ledger
	hotWallet := cfg.BlockchainHotWallet
	if cfg.BlockchainPrivateKey != "" {
		evm, err := chain.NewEVM(ctx, chain.EVMConfig{
			RPCURL:         cfg.BlockchainRPCURL,
			ChainID:        cfg.BlockchainChainID,
			PrivateKey:     cfg.BlockchainPrivateKey,
			TokenAddress:   cfg.MassCoinContract,
			StakingAddress: cfg.StakingContract,
		})
		if err != nil {
			return fmt.Errorf("blockchain: %w", err)
		}
		defer evm.Close()
		ledger = evm
		if chain.IsZeroAddress(hotWallet) {
			hotWallet = evm.Signer()
		}
		logger.Log.Infow("Blockchain client ready", "rpc", cfg.BlockchainRPCURL, "chainId", cfg.BlockchainChainID, "signer", evm.Signer())
	} else if cfg.BlockchainEnabled {
		logger.Log.Warn("BLOCKCHAIN_ENABLED is set without BLOCKCHAIN_PRIVATE_KEY, chain calls will fail")
	}
	blockchainService := services.NewBlockchainService(ledger, chain.NewSimulated(), cfg.BlockchainEnabled, cfg.ChainMaxElapsed, m)

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExpiration()),
	)

	// Initialize repositories
	transactor := repositories.NewTransactor(db)
	txGetter := repositories.TxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	walletRepo := repositories.NewWalletRepository(db, txGetter)
	transactionRepo := repositories.NewTransactionRepository(db, txGetter)
	chainOpRepo := repositories.NewChainOperationRepository(db, txGetter)
	withdrawalRepo := repositories.NewWithdrawalRepository(db, txGetter)
	transferRequestRepo := repositories.NewTransferRequestRepository(db, txGetter)
	messageRepo := repositories.NewMessageRepository(db, txGetter)
	priceCache := repositories.NewPriceCacheRepository(rdb, cfg.PriceTTL)
	chainBalanceCache := repositories.NewChainBalanceCacheRepository(rdb, cfg.ChainBalanceTTL)

	// Initialize facades
	priceFacade := facades.NewPriceGRPCFacade(exchangeClient, priceCache, decimal.NewFromFloat(cfg.MassUSDRate))
	var payouts services.PayoutSender
	if cfg.PayoutURL != "" {
		payouts = facades.NewPayoutHTTPFacade(cfg.PayoutURL, cfg.PayoutAPIKey, cfg.PayoutTimeout)
	}

	// Chat hub
	hub := chat.NewHub(rdb)

	// Initialize services
	authService := services.NewAuthService(transactor, userReadRepo, userWriteRepo, walletRepo, tokener)
	walletSvc := services.NewWalletService(transactor, walletRepo, transactionRepo, chainOpRepo, priceFacade, kafkaWriter)
	withdrawalSvc := services.NewWithdrawalService(transactor, withdrawalRepo, walletRepo, transactionRepo,
		blockchainService, payouts, hotWallet, cfg.WithdrawalStaleAfter, m, kafkaWriter)
	transferRequestSvc := services.NewTransferRequestService(transactor, transferRequestRepo, walletSvc, cfg.TransferRequestTTL)
	chatService := services.NewChatService(messageRepo, hub)
	reconcileService := services.NewReconcileService(walletRepo, blockchainService, chainBalanceCache, m, cfg.ChainSyncConcurrency)
	dispatcherService := services.NewDispatcherService(transactor, chainOpRepo, transactionRepo, blockchainService, m,
		cfg.ChainDispatchBatchSize, cfg.ChainMaxAttempts, cfg.ChainSyncConcurrency, cfg.ChainClaimLease)

	// Rate limiters
	chatLimiter := ratelimit.New(cfg.ChatRatePerSec, cfg.ChatRateBurst)
	httpLimiter := ratelimit.New(cfg.HTTPRatePerSec, cfg.HTTPRateBurst)

	// Background jobs
	sched := scheduler.New(m)
	jobs := []struct {
		name string
		spec string
		job  scheduler.Job
	}{
		{scheduler.JobReconcile, cfg.SyncSchedule, scheduler.ReconcileJob(reconcileService)},
		{scheduler.JobDispatch, cfg.DispatchSchedule, scheduler.DispatchJob(dispatcherService)},
		{scheduler.JobWithdrawals, cfg.WithdrawalSchedule, scheduler.WithdrawalJob(withdrawalSvc, cfg.WithdrawalBatchSize)},
		{scheduler.JobExpireRequests, cfg.ExpirySchedule, scheduler.ExpiryJob(transferRequestSvc)},
		{scheduler.JobRateLimitSweep, cfg.CleanupSchedule, scheduler.SweepJob(cfg.RateLimitIdle, chatLimiter, httpLimiter)},
	}
	for _, j := range jobs {
		if err := sched.Add(j.name, j.spec, j.job); err != nil {
			return err
		}
	}

	router := newRouter(routeDeps{
		cfg:         cfg,
		db:          db,
		tokener:     tokener,
		metrics:     m,
		httpLimiter: httpLimiter,
		chat:        chat.NewController(hub, chatService, tokener, chatLimiter),
		auth:        authService,
		wallet:      walletSvc,
		requests:    transferRequestSvc,
		withdrawals: withdrawalSvc,
		messages:    chatService,
		blockchain:  blockchainService,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctxShutdown)

	g.Go(func() error {
		if err := hub.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("chat hub failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	sched.Start(gctx)

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
		}
		if err := sched.Stop(shutdownCtx); err != nil {
			logger.Log.Errorw("Scheduler stop error", "error", err)
		}
		hub.Close()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
