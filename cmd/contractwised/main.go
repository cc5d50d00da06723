package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/contractwise/backend/gen/ent"
	"github.com/contractwise/backend/internal/auth"
	"github.com/contractwise/backend/internal/cache"
	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/export"
	"github.com/contractwise/backend/internal/extract"
	"github.com/contractwise/backend/internal/llm"
	"github.com/contractwise/backend/internal/llm/gemini"
	"github.com/contractwise/backend/internal/mail"
	"github.com/contractwise/backend/internal/payments"
	"github.com/contractwise/backend/internal/pipeline"
	"github.com/contractwise/backend/internal/repository"
	"github.com/contractwise/backend/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, cleanup, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	blobs, err := cache.NewRedisCache(ctx, cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	generator, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := generator.Close(); err != nil {
			logger.Warn("failed to close gemini client", "error", err)
		}
	}()

	users := repository.NewUserRepository(entc, logger)
	contracts := repository.NewContractRepository(entc, logger)

	analyzer := llm.NewAnalyzer(generator, cfg.LLM.Model, logger)
	extractor := extract.NewPDFExtractor(blobs, logger)
	detectStage := pipeline.NewDetectStage(blobs, extractor, analyzer, logger)
	analyzeStage := pipeline.NewAnalyzeStage(blobs, extractor, analyzer, contracts, cfg.LLM.Model, logger)

	googleAuth := auth.NewGoogleAuthenticator(&cfg.Auth, users, logger)
	mailer := mail.NewResendSender(mail.Config{APIKey: cfg.Email.APIKey, From: cfg.Email.From}, logger)
	paySvc := payments.NewService(cfg.Stripe, cfg.Server.ClientURL, users, mailer, logger)
	exporter := export.NewService(contracts, logger)

	router := server.NewRouter(
		&cfg.Auth,
		users,
		server.NewAuthHandler(googleAuth, &cfg.Auth, cfg.Server.ClientURL, logger),
		server.NewContractsHandler(detectStage, analyzeStage, contracts, blobs, exporter, logger),
		server.NewPaymentsHandler(paySvc, logger),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("stopped")
}

// openDatabase picks postgres for postgres DSNs and sqlite for anything
// else, so local hacking needs no server.
func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, func(), error) {
	if strings.HasPrefix(cfg.Database.DSN, "postgres") {
		client, pool, err := repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			repository.Close(client, pool, logger)
			return nil, nil, err
		}
		return client, func() { repository.Close(client, pool, logger) }, nil
	}

	client, err := repository.OpenSQLite(cfg.Database.DSN, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}, nil
}
