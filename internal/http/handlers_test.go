package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Ping(context.Context) error {
	return s.err
}

type stubService struct {
	listNetworksFn  func(context.Context) ([]domain.Network, error)
	createNetworkFn func(context.Context, domain.CreateNetworkInput) (domain.Network, error)
	getNetworkFn    func(context.Context, int64) (domain.Network, error)
	deleteNetworkFn func(context.Context, int64) error
	listIPsFn       func(context.Context, addrspace.Family, int64) ([]domain.IPRecord, error)
	createIPFn      func(context.Context, addrspace.Family, int64, domain.CreateIPInput) (domain.IPRecord, error)
	generateIPsFn   func(context.Context, addrspace.Family, int64, domain.GenerateInput) (domain.GenerateResult, error)
	nextIPFn        func(context.Context, addrspace.Family, int64) (netip.Addr, error)
	updateIPFn      func(context.Context, addrspace.Family, domain.IPRecordID, domain.UpdateIPInput) (domain.IPRecord, error)
	assignIPFn      func(context.Context, addrspace.Family, domain.IPRecordID, *int64) (domain.IPRecord, error)
	deleteIPFn      func(context.Context, addrspace.Family, domain.IPRecordID) error
}

func (s stubService) ListNetworks(ctx context.Context) ([]domain.Network, error) {
	if s.listNetworksFn == nil {
		return nil, nil
	}
	return s.listNetworksFn(ctx)
}

func (s stubService) CreateNetwork(ctx context.Context, input domain.CreateNetworkInput) (domain.Network, error) {
	if s.createNetworkFn == nil {
		return domain.Network{}, nil
	}
	return s.createNetworkFn(ctx, input)
}

func (s stubService) GetNetwork(ctx context.Context, id int64) (domain.Network, error) {
	if s.getNetworkFn == nil {
		return domain.Network{}, nil
	}
	return s.getNetworkFn(ctx, id)
}

func (s stubService) DeleteNetwork(ctx context.Context, id int64) error {
	if s.deleteNetworkFn == nil {
		return nil
	}
	return s.deleteNetworkFn(ctx, id)
}

func (s stubService) ListIPs(ctx context.Context, family addrspace.Family, networkID int64) ([]domain.IPRecord, error) {
	if s.listIPsFn == nil {
		return nil, nil
	}
	return s.listIPsFn(ctx, family, networkID)
}

func (s stubService) CreateIP(ctx context.Context, family addrspace.Family, networkID int64, input domain.CreateIPInput) (domain.IPRecord, error) {
	if s.createIPFn == nil {
		return domain.IPRecord{}, nil
	}
	return s.createIPFn(ctx, family, networkID, input)
}

func (s stubService) GenerateIPs(ctx context.Context, family addrspace.Family, networkID int64, input domain.GenerateInput) (domain.GenerateResult, error) {
	if s.generateIPsFn == nil {
		return domain.GenerateResult{}, nil
	}
	return s.generateIPsFn(ctx, family, networkID, input)
}

func (s stubService) NextAvailableIP(ctx context.Context, family addrspace.Family, networkID int64) (netip.Addr, error) {
	if s.nextIPFn == nil {
		return netip.Addr{}, nil
	}
	return s.nextIPFn(ctx, family, networkID)
}

func (s stubService) UpdateIP(ctx context.Context, family addrspace.Family, id domain.IPRecordID, input domain.UpdateIPInput) (domain.IPRecord, error) {
	if s.updateIPFn == nil {
		return domain.IPRecord{}, nil
	}
	return s.updateIPFn(ctx, family, id, input)
}

func (s stubService) AssignIP(ctx context.Context, family addrspace.Family, id domain.IPRecordID, customerID *int64) (domain.IPRecord, error) {
	if s.assignIPFn == nil {
		return domain.IPRecord{}, nil
	}
	return s.assignIPFn(ctx, family, id, customerID)
}

func (s stubService) DeleteIP(ctx context.Context, family addrspace.Family, id domain.IPRecordID) error {
	if s.deleteIPFn == nil {
		return nil
	}
	return s.deleteIPFn(ctx, family, id)
}

func newHandlerTestAPI(service domain.NetworkService, healthErr error) *API {
	return NewAPI(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		stubHealthChecker{err: healthErr},
		service,
		nil,
	)
}

func serve(api *API, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	return rec
}

func TestReadyzReturnsServiceUnavailableWhenHealthCheckFails(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, context.Canceled)

	rec := serve(api, http.MethodGet, "/readyz", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestGetNetworkByIDReturnsNotFound(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		getNetworkFn: func(context.Context, int64) (domain.Network, error) {
			return domain.Network{}, domain.ErrNetworkNotFound
		},
	}, nil)

	rec := serve(api, http.MethodGet, "/api/v1/networks/42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "network not found") {
		t.Fatalf("expected network not found body, got %q", rec.Body.String())
	}
}

func TestCreateNetworkReturnsBadRequestOnInvalidInput(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createNetworkFn: func(context.Context, domain.CreateNetworkInput) (domain.Network, error) {
			return domain.Network{}, domain.ErrInvalidInput
		},
	}, nil)

	rec := serve(api, http.MethodPost, "/api/v1/networks", `{"cidr":"bad"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestCreateNetworkRejectsMalformedJSON(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createNetworkFn: func(context.Context, domain.CreateNetworkInput) (domain.Network, error) {
			t.Fatal("service should not be called")
			return domain.Network{}, nil
		},
	}, nil)

	rec := serve(api, http.MethodPost, "/api/v1/networks", `{"cidr":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestGenerateMapsErrorsToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid address", domain.ErrInvalidAddressFormat, http.StatusBadRequest},
		{"invalid range", domain.ErrInvalidRange, http.StatusBadRequest},
		{"invalid prefix", domain.ErrInvalidPrefix, http.StatusBadRequest},
		{"too large", domain.ErrRangeTooLarge, http.StatusBadRequest},
		{"conflict", &domain.RangeConflictError{Addresses: []netip.Addr{netip.MustParseAddr("10.0.0.1")}}, http.StatusConflict},
		{"unknown network", domain.ErrNetworkNotFound, http.StatusNotFound},
		{"storage", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newHandlerTestAPI(stubService{
				generateIPsFn: func(context.Context, addrspace.Family, int64, domain.GenerateInput) (domain.GenerateResult, error) {
					return domain.GenerateResult{}, tt.err
				},
			}, nil)

			rec := serve(api, http.MethodPost, "/network/ipam/v4/7/ips/generate", `{"start_ip":"10.0.0.1","end_ip":"10.0.0.2"}`)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestGenerateConflictBodyListsAddresses(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		generateIPsFn: func(context.Context, addrspace.Family, int64, domain.GenerateInput) (domain.GenerateResult, error) {
			return domain.GenerateResult{}, &domain.RangeConflictError{Addresses: []netip.Addr{
				netip.MustParseAddr("192.168.1.103"),
				netip.MustParseAddr("192.168.1.104"),
			}}
		},
	}, nil)

	rec := serve(api, http.MethodPost, "/network/ipam/v4/7/ips/generate", `{"start_ip":"192.168.1.103","end_ip":"192.168.1.110"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Conflicts) != 2 || body.Conflicts[0] != "192.168.1.103" {
		t.Fatalf("unexpected conflicts: %v", body.Conflicts)
	}
}

func TestGeneratePassesFamilyAndBody(t *testing.T) {
	var (
		gotFamily  addrspace.Family
		gotNetwork int64
		gotInput   domain.GenerateInput
	)
	api := newHandlerTestAPI(stubService{
		generateIPsFn: func(_ context.Context, family addrspace.Family, networkID int64, input domain.GenerateInput) (domain.GenerateResult, error) {
			gotFamily, gotNetwork, gotInput = family, networkID, input
			return domain.GenerateResult{
				Message: "1 IP addresses generated",
				Created: []domain.IPRecord{{ID: "id-1", Family: family, IP: netip.MustParseAddr("2001:db8::1")}},
			}, nil
		},
	}, nil)

	rec := serve(api, http.MethodPost, "/network/ipam/IPv6/9/ips/generate", `{"start_ip":"2001:db8::1","end_ip":"2001:db8::1","prefix":64,"title":"t"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	if gotFamily != addrspace.V6 || gotNetwork != 9 {
		t.Fatalf("unexpected scope: %s %d", gotFamily, gotNetwork)
	}
	if gotInput.Prefix == nil || *gotInput.Prefix != 64 || gotInput.Title != "t" {
		t.Fatalf("unexpected input: %+v", gotInput)
	}

	var body GenerateIPsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "1 IP addresses generated" || len(body.Created) != 1 || body.Created[0].Family != "v6" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestUnknownFamilyIsBadRequest(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	rec := serve(api, http.MethodGet, "/network/ipam/v5/7/ips", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestNextAvailableIP(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		nextIPFn: func(_ context.Context, family addrspace.Family, networkID int64) (netip.Addr, error) {
			if networkID == 8 {
				return netip.Addr{}, domain.ErrNoFreeAddress
			}
			return netip.MustParseAddr("192.168.1.1"), nil
		},
	}, nil)

	rec := serve(api, http.MethodGet, "/network/ipam/v4/7/next-available-ip", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"ip":"192.168.1.1"}` {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}

	rec = serve(api, http.MethodGet, "/network/ipam/v4/8/next-available-ip", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d for exhausted network, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestCreateIPReturnsConflictOnDuplicate(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createIPFn: func(context.Context, addrspace.Family, int64, domain.CreateIPInput) (domain.IPRecord, error) {
			return domain.IPRecord{}, domain.ErrDuplicateAddress
		},
	}, nil)

	rec := serve(api, http.MethodPost, "/network/ipam/v4/42/ips", `{"ip":"10.0.0.10","hostname":"h"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestUpdateIPReturnsRecordNotFound(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		updateIPFn: func(context.Context, addrspace.Family, domain.IPRecordID, domain.UpdateIPInput) (domain.IPRecord, error) {
			return domain.IPRecord{}, domain.ErrIPNotFound
		},
	}, nil)

	rec := serve(api, http.MethodPut, "/network/ipam/v4/ips/550e8400-e29b-41d4-a716-446655440000", `{"hostname":"new-host"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ip not found") {
		t.Fatalf("expected ip not found body, got %q", rec.Body.String())
	}
}

func TestAssignIPPassesNullAsUnassign(t *testing.T) {
	var calls []*int64
	api := newHandlerTestAPI(stubService{
		assignIPFn: func(_ context.Context, _ addrspace.Family, id domain.IPRecordID, customerID *int64) (domain.IPRecord, error) {
			calls = append(calls, customerID)
			return domain.IPRecord{ID: id, Family: addrspace.V4, IP: netip.MustParseAddr("10.0.0.5"), CustomerID: customerID}, nil
		},
	}, nil)

	rec := serve(api, http.MethodPut, "/network/ipam/v4/ips/abc/assignment", `{"customer_id":1042}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	var assigned IPResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &assigned); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !assigned.IsUsed || assigned.CustomerID == nil || *assigned.CustomerID != 1042 {
		t.Fatalf("unexpected assigned body: %+v", assigned)
	}

	rec = serve(api, http.MethodPut, "/network/ipam/v4/ips/abc/assignment", `{"customer_id":null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if len(calls) != 2 || calls[1] != nil {
		t.Fatalf("expected second call to unassign, got %v", calls)
	}
}

func TestDeleteIPGuardIsConflict(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		deleteIPFn: func(context.Context, addrspace.Family, domain.IPRecordID) error {
			return domain.ErrAddressAssigned
		},
	}, nil)

	rec := serve(api, http.MethodDelete, "/network/ipam/v4/ips/abc", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestDeleteNetworkReturnsNoContent(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	rec := serve(api, http.MethodDelete, "/api/v1/networks/3", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}

	rec = serve(api, http.MethodDelete, "/api/v1/networks/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d for bad id, got %d", http.StatusBadRequest, rec.Code)
	}
}
