package http

import (
	"net/http"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "storage unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.Health != nil {
		if err := a.Health.Ping(ctx); err != nil {
			a.Logger.ErrorContext(ctx, "storage ping failed", "err", err)
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List networks
// @Tags networks
// @Produce json
// @Success 200 {array} NetworkResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks [get]
func (a *API) handleListNetworks(w http.ResponseWriter, r *http.Request) {
	networks, err := a.Service.ListNetworks(r.Context())
	if err != nil {
		a.respondServiceError(w, r, "reading networks", err)
		return
	}
	a.respond(w, r, http.StatusOK, networksToResponse(networks))
}

// @Summary Create network
// @Tags networks
// @Accept json
// @Produce json
// @Param network body CreateNetworkRequest true "Network payload"
// @Success 201 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks [post]
func (a *API) handleCreateNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[CreateNetworkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling network from request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	network, err := a.Service.CreateNetwork(ctx, req.toInput())
	if err != nil {
		a.respondServiceError(w, r, "creating network", err)
		return
	}
	a.respond(w, r, http.StatusCreated, networkToResponse(network))
}

// @Summary Get network by ID
// @Tags networks
// @Produce json
// @Param id path int true "Network ID"
// @Success 200 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks/{id} [get]
func (a *API) handleGetNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.Logger.DebugContext(ctx, "unable to convert string id to int64", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	network, err := a.Service.GetNetwork(ctx, id)
	if err != nil {
		a.respondServiceError(w, r, "reading network", err)
		return
	}
	a.respond(w, r, http.StatusOK, networkToResponse(network))
}

// @Summary Delete network
// @Description Deletes the network and every record allocated in it.
// @Tags networks
// @Param id path int true "Network ID"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks/{id} [delete]
func (a *API) handleDeleteNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.Logger.DebugContext(ctx, "unable to convert string id to int64", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	if err := a.Service.DeleteNetwork(ctx, id); err != nil {
		a.respondServiceError(w, r, "deleting network", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
