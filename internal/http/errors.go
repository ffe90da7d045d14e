package http

import (
	"errors"
	"net/http"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
)

// statusFor maps a service error to the status and body sent to the client.
func statusFor(err error) (int, ErrorResponse) {
	var conflict *domain.RangeConflictError
	switch {
	case errors.As(err, &conflict):
		resp := ErrorResponse{Error: conflict.Error()}
		for _, addr := range conflict.Addresses {
			resp.Conflicts = append(resp.Conflicts, addr.String())
		}
		return http.StatusConflict, resp
	case errors.Is(err, domain.ErrRangeConflict):
		return http.StatusConflict, ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrDuplicateAddress):
		return http.StatusConflict, ErrorResponse{Error: "ip already exists in network"}
	case errors.Is(err, domain.ErrAddressAssigned):
		return http.StatusConflict, ErrorResponse{Error: "ip is assigned to a customer"}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrorResponse{Error: "conflict"}

	case errors.Is(err, domain.ErrInvalidAddressFormat),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidPrefix),
		errors.Is(err, domain.ErrRangeTooLarge),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, addrspace.ErrUnknownFamily):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}

	case errors.Is(err, domain.ErrNetworkNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "network not found"}
	case errors.Is(err, domain.ErrIPNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "ip not found"}
	case errors.Is(err, domain.ErrNoFreeAddress):
		return http.StatusNotFound, ErrorResponse{Error: "no free address in network"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "not found"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

// respondServiceError logs err at a level matching its status and writes the
// mapped response.
func (a *API) respondServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	status, resp := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.Logger.ErrorContext(ctx, msg, "err", err.Error())
	} else {
		a.Logger.DebugContext(ctx, msg, "status", status, "err", err.Error())
	}
	a.respond(w, r, status, resp)
}
