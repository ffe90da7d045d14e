package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Flarenzy/ipam-ledger/internal/auth"
	appdb "github.com/Flarenzy/ipam-ledger/internal/db"
	sqlcdb "github.com/Flarenzy/ipam-ledger/internal/db/sqlc"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
	apihttp "github.com/Flarenzy/ipam-ledger/internal/http"
	"github.com/Flarenzy/ipam-ledger/internal/memstore"
	"github.com/Flarenzy/ipam-ledger/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 5 * time.Second

// Run configures process-wide logging and tracing, then serves on cfg.Port
// until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	slog.SetDefault(newLogger(cfg))

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("tracer shutdown failed", "error", err)
		}
	}()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}

	return Serve(ctx, cfg, listener)
}

// Serve wires storage, the ledger service and the HTTP API onto listener.
// Startup errors are returned before the server accepts connections.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.Default()

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	service := domain.NewLoggingNetworkService(
		logger,
		domain.NewNetworkService(store.networks, store.ledger, domain.WithGuardedDelete(cfg.GuardAssignedDelete)),
	)

	api := apihttp.NewAPI(logger, store.health, service, authenticator)

	server := &http.Server{
		Handler:      otelhttp.NewHandler(api.Router(), "ipam-ledger"),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", listener.Addr().String(), "storage", storageName(cfg))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		JWKSURL:  cfg.JWKSURL,
	})
}

type storage struct {
	networks domain.NetworkRepository
	ledger   domain.Ledger
	health   apihttp.HealthChecker
	close    func()
}

func openStorage(ctx context.Context, cfg Config) (storage, error) {
	if storageName(cfg) == StorageMemory {
		store := memstore.New()
		return storage{
			networks: store.Networks(),
			ledger:   store.Ledger(),
			health:   store,
			close:    func() {},
		}, nil
	}

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return storage{}, err
	}

	return storage{
		networks: appdb.NewNetworkRepository(sqlcdb.New(pool)),
		ledger:   appdb.NewIPRepository(pool),
		health:   pool,
		close:    pool.Close,
	}, nil
}

func storageName(cfg Config) string {
	if cfg.Storage == "" {
		return StoragePostgres
	}
	return cfg.Storage
}

func newLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
