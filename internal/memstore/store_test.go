package memstore

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
	"github.com/google/go-cmp/cmp"
	"go4.org/netipx"
)

func newNetwork(t *testing.T, s *Store, cidr string) domain.Network {
	t.Helper()

	n, err := s.Networks().Create(context.Background(), domain.CreateNetworkRecord{CIDR: netip.MustParsePrefix(cidr)})
	if err != nil {
		t.Fatalf("create network: %v", err)
	}
	return n
}

func v4Record(networkID int64, ip string) domain.NewIPRecord {
	return domain.NewIPRecord{NetworkID: networkID, Family: addrspace.V4, IP: netip.MustParseAddr(ip)}
}

func TestInsertManyIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := New()
	n := newNetwork(t, s, "10.0.0.0/24")
	ledger := s.Ledger()

	if _, err := ledger.InsertOne(ctx, v4Record(n.ID, "10.0.0.3")); err != nil {
		t.Fatalf("insert one: %v", err)
	}

	_, err := ledger.InsertMany(ctx, []domain.NewIPRecord{
		v4Record(n.ID, "10.0.0.2"),
		v4Record(n.ID, "10.0.0.3"),
		v4Record(n.ID, "10.0.0.4"),
	})
	var conflict *domain.RangeConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected RangeConflictError, got %v", err)
	}
	if diff := cmp.Diff([]netip.Addr{netip.MustParseAddr("10.0.0.3")}, conflict.Addresses, cmp.Comparer(func(a, b netip.Addr) bool { return a == b })); diff != "" {
		t.Fatalf("unexpected conflicts (-want +got):\n%s", diff)
	}

	records, err := ledger.ListByNetwork(ctx, n.ID, addrspace.V4)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected ledger to keep 1 record, got %d", len(records))
	}
}

func TestInsertManyRejectsDuplicatesWithinBatch(t *testing.T) {
	s := New()
	n := newNetwork(t, s, "10.0.0.0/24")

	_, err := s.Ledger().InsertMany(context.Background(), []domain.NewIPRecord{
		v4Record(n.ID, "10.0.0.9"),
		v4Record(n.ID, "10.0.0.9"),
	})
	if !errors.Is(err, domain.ErrRangeConflict) {
		t.Fatalf("expected ErrRangeConflict, got %v", err)
	}
}

func TestInsertOneRejectsDuplicateTuple(t *testing.T) {
	ctx := context.Background()
	s := New()
	n := newNetwork(t, s, "2001:db8::/64")
	ledger := s.Ledger()

	p64, p128 := 64, 128
	rec := domain.NewIPRecord{NetworkID: n.ID, Family: addrspace.V6, IP: netip.MustParseAddr("2001:db8::1"), Prefix: &p64}
	if _, err := ledger.InsertOne(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := ledger.InsertOne(ctx, rec); !errors.Is(err, domain.ErrDuplicateAddress) {
		t.Fatalf("expected ErrDuplicateAddress, got %v", err)
	}

	rec.Prefix = &p128
	if _, err := ledger.InsertOne(ctx, rec); err != nil {
		t.Fatalf("same address with another prefix is a different tuple: %v", err)
	}

	exists, err := ledger.Exists(ctx, n.ID, addrspace.V6, netip.MustParseAddr("2001:db8::1"), &p64)
	if err != nil || !exists {
		t.Fatalf("expected tuple to exist, got %v, %v", exists, err)
	}
}

func TestListByNetworkOrdersByAddress(t *testing.T) {
	ctx := context.Background()
	s := New()
	n := newNetwork(t, s, "10.0.0.0/24")
	ledger := s.Ledger()

	for _, ip := range []string{"10.0.0.20", "10.0.0.3", "10.0.0.100", "10.0.0.9"} {
		if _, err := ledger.InsertOne(ctx, v4Record(n.ID, ip)); err != nil {
			t.Fatalf("insert %s: %v", ip, err)
		}
	}

	records, err := ledger.ListByNetwork(ctx, n.ID, addrspace.V4)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := make([]string, 0, len(records))
	for _, r := range records {
		got = append(got, r.IP.String())
	}
	want := []string{"10.0.0.3", "10.0.0.9", "10.0.0.20", "10.0.0.100"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestOccupiedIsBoundedAndDistinct(t *testing.T) {
	ctx := context.Background()
	s := New()
	n := newNetwork(t, s, "2001:db8::/64")
	ledger := s.Ledger()

	p64, p128 := 64, 128
	for _, rec := range []domain.NewIPRecord{
		{NetworkID: n.ID, Family: addrspace.V6, IP: netip.MustParseAddr("2001:db8::2"), Prefix: &p64},
		{NetworkID: n.ID, Family: addrspace.V6, IP: netip.MustParseAddr("2001:db8::2"), Prefix: &p128},
		{NetworkID: n.ID, Family: addrspace.V6, IP: netip.MustParseAddr("2001:db8::ff"), Prefix: &p128},
	} {
		if _, err := ledger.InsertOne(ctx, rec); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	r := netipx.IPRangeFrom(netip.MustParseAddr("2001:db8::1"), netip.MustParseAddr("2001:db8::10"))
	occupied, err := ledger.Occupied(ctx, n.ID, addrspace.V6, r)
	if err != nil {
		t.Fatalf("occupied: %v", err)
	}
	if len(occupied) != 1 || occupied[0] != netip.MustParseAddr("2001:db8::2") {
		t.Fatalf("unexpected occupied set: %v", occupied)
	}
}

func TestDeleteNetworkRemovesRecords(t *testing.T) {
	ctx := context.Background()
	s := New()
	n := newNetwork(t, s, "10.0.0.0/24")
	rec, err := s.Ledger().InsertOne(ctx, v4Record(n.ID, "10.0.0.5"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	deleted, err := s.Networks().Delete(ctx, n.ID)
	if err != nil || !deleted {
		t.Fatalf("delete network: %v, %v", deleted, err)
	}
	if _, err := s.Ledger().FindByID(ctx, rec.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected record to be gone, got %v", err)
	}
	if _, err := s.Ledger().InsertOne(ctx, v4Record(n.ID, "10.0.0.6")); !errors.Is(err, domain.ErrNetworkNotFound) {
		t.Fatalf("expected ErrNetworkNotFound, got %v", err)
	}
}
