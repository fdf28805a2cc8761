// Command notes-server starts the notes and todos HTTP API.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/and161185/notes-api/internal/config"
	pkgcrypto "github.com/and161185/notes-api/internal/crypto"
	"github.com/and161185/notes-api/internal/migrate"
	"github.com/and161185/notes-api/internal/repository/postgres"
	grpcserver "github.com/and161185/notes-api/internal/server/grpc"
	httpserver "github.com/and161185/notes-api/internal/server/http"
	"github.com/and161185/notes-api/internal/service"
	"github.com/and161185/notes-api/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const healthInterval = 10 * time.Second

func newLogger(dev bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewExample()
	}
	return l
}

// main loads configuration, runs migrations and serves HTTP until SIGINT/SIGTERM.
func main() {
	cfg, cfgErr := config.Load(os.Args[1:])
	logger := newLogger(cfg != nil && cfg.Dev)
	defer func() { _ = logger.Sync() }()
	if cfgErr != nil {
		logger.Fatal("config", zap.Error(cfgErr))
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DSN, logger); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DSN, cfg.DBMaxConns)
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	noteRepo := postgres.NewNoteRepo(db)
	todoRepo := postgres.NewTodoRepo(db)

	// Services
	tokens := token.NewManager([]byte(cfg.JWTKey), cfg.TokenTTL)
	authSvc, err := service.NewAuthService(userRepo, pkgcrypto.NewHasher(cfg.BcryptCost), tokens)
	if err != nil {
		logger.Fatal("auth service", zap.Error(err))
	}
	noteSvc := service.NewNoteService(noteRepo)
	todoSvc := service.NewTodoService(todoRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	api := httpserver.New(authSvc, noteSvc, todoSvc, tokens, logger, httpserver.Options{
		CORSOrigin: cfg.CORSOrigin,
		Registry:   reg,
		Pinger:     db,
	})
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	var probe *grpcserver.Health
	if cfg.HealthAddr != "" {
		lis, err := net.Listen("tcp", cfg.HealthAddr)
		if err != nil {
			logger.Fatal("listen health", zap.Error(err))
		}
		probe = grpcserver.NewHealth(logger, cfg.Dev)
		go probe.Watch(ctx, db, healthInterval)
		go func() {
			logger.Info("health listening", zap.String("addr", cfg.HealthAddr))
			errCh <- probe.Serve(lis)
		}()
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		if probe != nil {
			probe.Stop(cfg.ShutdownTimeout)
		}
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logger.Error("http shutdown", zap.Error(err))
			_ = srv.Close()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
