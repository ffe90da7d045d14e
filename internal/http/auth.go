package http

import (
	"net/http"
	"strings"

	"github.com/Flarenzy/ipam-ledger/internal/auth"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
)

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.Auth == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Probes and API docs stay public.
		if r.URL.Path == "/healthz" || r.URL.Path == "/readyz" || strings.HasPrefix(r.URL.Path, "/swagger/") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "missing token"})
			return
		}

		principal, err := a.Auth.Authenticate(ctx, strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			a.Logger.DebugContext(ctx, "rejected bearer token", "path", r.URL.Path, "err", err.Error())
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "invalid token"})
			return
		}

		ctx = auth.WithPrincipal(ctx, principal)
		ctx = domain.WithActor(ctx, auth.Actor(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
