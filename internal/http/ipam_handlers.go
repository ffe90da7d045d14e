package http

import (
	"net/http"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
)

// networkScope reads the {family} and {networkId} path values. It writes a
// 400 and returns false when either is malformed.
func (a *API) networkScope(w http.ResponseWriter, r *http.Request) (addrspace.Family, int64, bool) {
	family, err := parsePathFamily(r)
	if err != nil {
		a.respondServiceError(w, r, "parsing family", err)
		return "", 0, false
	}
	networkID, err := parsePathInt64(r, "networkId")
	if err != nil {
		a.Logger.DebugContext(r.Context(), "unable to convert network id to int64", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return "", 0, false
	}
	return family, networkID, true
}

func (a *API) recordScope(w http.ResponseWriter, r *http.Request) (addrspace.Family, domain.IPRecordID, bool) {
	family, err := parsePathFamily(r)
	if err != nil {
		a.respondServiceError(w, r, "parsing family", err)
		return "", "", false
	}
	return family, domain.IPRecordID(r.PathValue("id")), true
}

// @Summary Suggest the next free address
// @Description Returns the lowest address in the network's usable span with no record. The address is not reserved.
// @Tags ipam
// @Produce json
// @Param family path string true "Address family" Enums(v4, v6)
// @Param networkId path int true "Network ID"
// @Success 200 {object} NextAvailableIPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /network/ipam/{family}/{networkId}/next-available-ip [get]
func (a *API) handleNextAvailableIP(w http.ResponseWriter, r *http.Request) {
	family, networkID, ok := a.networkScope(w, r)
	if !ok {
		return
	}

	ip, err := a.Service.NextAvailableIP(r.Context(), family, networkID)
	if err != nil {
		a.respondServiceError(w, r, "finding next available ip", err)
		return
	}
	a.respond(w, r, http.StatusOK, NextAvailableIPResponse{IP: ip.String()})
}

// @Summary Generate a block of addresses
// @Description Creates one record for every address in [start_ip, end_ip], at most 256. Either every record is created or none is.
// @Tags ipam
// @Accept json
// @Produce json
// @Param family path string true "Address family" Enums(v4, v6)
// @Param networkId path int true "Network ID"
// @Param payload body GenerateIPsRequest true "Range to generate"
// @Success 201 {object} GenerateIPsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /network/ipam/{family}/{networkId}/ips/generate [post]
func (a *API) handleGenerateIPs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	family, networkID, ok := a.networkScope(w, r)
	if !ok {
		return
	}

	req, err := decode[GenerateIPsRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling generate request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	result, err := a.Service.GenerateIPs(ctx, family, networkID, req.toInput())
	if err != nil {
		a.respondServiceError(w, r, "generating ips", err)
		return
	}
	a.respond(w, r, http.StatusCreated, GenerateIPsResponse{
		Message: result.Message,
		Created: ipsToResponse(result.Created),
	})
}

// @Summary List records in a network
// @Tags ipam
// @Produce json
// @Param family path string true "Address family" Enums(v4, v6)
// @Param networkId path int true "Network ID"
// @Success 200 {array} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /network/ipam/{family}/{networkId}/ips [get]
func (a *API) handleListIPs(w http.ResponseWriter, r *http.Request) {
	family, networkID, ok := a.networkScope(w, r)
	if !ok {
		return
	}

	ips, err := a.Service.ListIPs(r.Context(), family, networkID)
	if err != nil {
		a.respondServiceError(w, r, "listing ips", err)
		return
	}
	a.respond(w, r, http.StatusOK, ipsToResponse(ips))
}

// @Summary Add a single record
// @Tags ipam
// @Accept json
// @Produce json
// @Param family path string true "Address family" Enums(v4, v6)
// @Param networkId path int true "Network ID"
// @Param payload body CreateIPRequest true "Record to add"
// @Success 201 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /network/ipam/{family}/{networkId}/ips [post]
func (a *API) handleCreateIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	family, networkID, ok := a.networkScope(w, r)
	if !ok {
		return
	}

	req, err := decode[CreateIPRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling ip from request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	ip, err := a.Service.CreateIP(ctx, family, networkID, req.toInput())
	if err != nil {
		a.respondServiceError(w, r, "creating ip", err)
		return
	}
	a.respond(w, r, http.StatusCreated, ipToResponse(ip))
}

// @Summary Update record metadata
// @Tags ipam
// @Accept json
// @Produce json
// @Param family path string true "Address family" Enums(v4, v6)
// @Param id path string true "Record UUID"
// @Param payload body UpdateIPRequest true "Fields to change"
// @Success 200 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /network/ipam/{family}/ips/{id} [put]
func (a *API) handleUpdateIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	family, id, ok := a.recordScope(w, r)
	if !ok {
		return
	}

	req, err := decode[UpdateIPRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling ip update", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	ip, err := a.Service.UpdateIP(ctx, family, id, req.toInput())
	if err != nil {
		a.respondServiceError(w, r, "updating ip", err)
		return
	}
	a.respond(w, r, http.StatusOK, ipToResponse(ip))
}

// @Summary Assign or free a record
// @Description Binds the record to customer_id, or frees it when customer_id is null.
// @Tags ipam
// @Accept json
// @Produce json
// @Param family path string true "Address family" Enums(v4, v6)
// @Param id path string true "Record UUID"
// @Param payload body AssignIPRequest true "Customer binding"
// @Success 200 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /network/ipam/{family}/ips/{id}/assignment [put]
func (a *API) handleAssignIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	family, id, ok := a.recordScope(w, r)
	if !ok {
		return
	}

	req, err := decode[AssignIPRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling assignment", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	ip, err := a.Service.AssignIP(ctx, family, id, req.CustomerID)
	if err != nil {
		a.respondServiceError(w, r, "assigning ip", err)
		return
	}
	a.respond(w, r, http.StatusOK, ipToResponse(ip))
}

// @Summary Delete a record
// @Tags ipam
// @Param family path string true "Address family" Enums(v4, v6)
// @Param id path string true "Record UUID"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /network/ipam/{family}/ips/{id} [delete]
func (a *API) handleDeleteIP(w http.ResponseWriter, r *http.Request) {
	family, id, ok := a.recordScope(w, r)
	if !ok {
		return
	}

	if err := a.Service.DeleteIP(r.Context(), family, id); err != nil {
		a.respondServiceError(w, r, "deleting ip", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
