package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	httpx "github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/http"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/repository/mongodb"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/service/account"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/service/auth"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/service/expense"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/pkg/config"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found")
	}
	cfg := config.LoadAPIConfig()
	log := logger.New("api", logger.ParseLevel(config.GetString("LOG_LEVEL", "info")))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error("database disconnect failed", "error", err)
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	repo := mongodb.New(client, cfg.MongoDatabase)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Error("index bootstrap failed", "error", err)
		os.Exit(1)
	}

	authSvc := auth.New(repo, repo, repo, log, cfg)
	accountSvc := account.New(repo, repo, log)
	expenseSvc := expense.New(repo, log)

	router := httpx.NewRouter(log, authSvc, accountSvc, expenseSvc, func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("api server starting", "addr", cfg.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("api server stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
