package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Flarenzy/ipam-ledger/internal/auth"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
	httpSwagger "github.com/swaggo/http-swagger"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger  *slog.Logger
	Health  HealthChecker
	Service domain.NetworkService
	Auth    auth.Authenticator
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.NetworkService, authenticator auth.Authenticator) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		Logger:  logger,
		Health:  health,
		Service: service,
		Auth:    authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("GET /api/v1/networks", a.handleListNetworks)
	mux.HandleFunc("POST /api/v1/networks", a.handleCreateNetwork)
	mux.HandleFunc("GET /api/v1/networks/{id}", a.handleGetNetwork)
	mux.HandleFunc("DELETE /api/v1/networks/{id}", a.handleDeleteNetwork)

	mux.HandleFunc("GET /network/ipam/{family}/{networkId}/next-available-ip", a.handleNextAvailableIP)
	mux.HandleFunc("POST /network/ipam/{family}/{networkId}/ips/generate", a.handleGenerateIPs)
	mux.HandleFunc("GET /network/ipam/{family}/{networkId}/ips", a.handleListIPs)
	mux.HandleFunc("POST /network/ipam/{family}/{networkId}/ips", a.handleCreateIP)
	mux.HandleFunc("PUT /network/ipam/{family}/ips/{id}", a.handleUpdateIP)
	mux.HandleFunc("PUT /network/ipam/{family}/ips/{id}/assignment", a.handleAssignIP)
	mux.HandleFunc("DELETE /network/ipam/{family}/ips/{id}", a.handleDeleteIP)

	return a.authMiddleware(mux)
}
