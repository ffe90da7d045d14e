package domain

import (
	"net/netip"
	"time"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
	"go4.org/netipx"
)

type IPRecordID string

// Network is an address space records are allocated from. Its family is the
// family of its CIDR.
type Network struct {
	ID          int64
	CIDR        netip.Prefix
	PoolStart   netip.Addr
	PoolEnd     netip.Addr
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (n Network) Family() addrspace.Family {
	return addrspace.FamilyOf(n.CIDR.Addr())
}

func (n Network) HasPool() bool {
	return n.PoolStart.IsValid() && n.PoolEnd.IsValid()
}

// UsableRange is the span the next-free search walks: the configured pool,
// or the CIDR without the v4 network/broadcast addresses and the v6
// subnet-router anycast address.
func (n Network) UsableRange() netipx.IPRange {
	if n.HasPool() {
		return netipx.IPRangeFrom(n.PoolStart, n.PoolEnd)
	}

	prefix := n.CIDR.Masked()
	r := netipx.RangeOfPrefix(prefix)
	from, to := r.From(), r.To()
	bits := prefix.Addr().BitLen()

	if prefix.Bits() < bits-1 {
		from = from.Next()
		if prefix.Addr().Is4() {
			to = to.Prev()
		}
	}
	return netipx.IPRangeFrom(from, to)
}

// reservedInPrefix reports whether ip is excluded from allocation in prefix:
// the v4 network and broadcast addresses below /31, and the v6 subnet-router
// anycast address below /127.
func reservedInPrefix(prefix netip.Prefix, ip netip.Addr) bool {
	prefix = prefix.Masked()
	if prefix.Bits() >= prefix.Addr().BitLen()-1 {
		return false
	}
	r := netipx.RangeOfPrefix(prefix)
	if ip == r.From() {
		return true
	}
	return ip.Is4() && ip == r.To()
}

type IPRecord struct {
	ID         IPRecordID
	NetworkID  int64
	Family     addrspace.Family
	IP         netip.Addr
	Prefix     *int
	Hostname   string
	Title      string
	Comment    string
	CustomerID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsUsed reports whether the record is bound to a customer.
func (r IPRecord) IsUsed() bool {
	return r.CustomerID != nil
}

// NewIPRecord is a record about to be written to the ledger.
type NewIPRecord struct {
	NetworkID  int64
	Family     addrspace.Family
	IP         netip.Addr
	Prefix     *int
	Hostname   string
	Title      string
	Comment    string
	CustomerID *int64
}
