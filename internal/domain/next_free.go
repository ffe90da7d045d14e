package domain

import (
	"context"
	"net/netip"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
)

// NextAvailableIP suggests the lowest address in the network's usable range
// that has no record. It does not reserve anything: a concurrent create may
// claim the address first, in which case the caller's create fails with
// ErrDuplicateAddress and should ask again.
func (s *networkService) NextAvailableIP(ctx context.Context, family addrspace.Family, networkID int64) (netip.Addr, error) {
	network, err := s.network(ctx, family, networkID)
	if err != nil {
		return netip.Addr{}, err
	}

	span := network.UsableRange()
	if !span.IsValid() {
		return netip.Addr{}, ErrNoFreeAddress
	}

	occupied, err := s.ips.Occupied(ctx, networkID, family, span)
	if err != nil {
		return netip.Addr{}, err
	}

	space := addrspace.For(family)
	candidate := addrspace.OrdinalOf(span.From())
	last := addrspace.OrdinalOf(span.To())

	for _, addr := range occupied {
		o := addrspace.OrdinalOf(addr)
		switch o.Cmp(candidate) {
		case -1:
			continue
		case 1:
			return space.Addr(candidate)
		}

		if candidate.Cmp(last) >= 0 {
			return netip.Addr{}, ErrNoFreeAddress
		}
		if candidate, err = space.Next(candidate); err != nil {
			return netip.Addr{}, ErrNoFreeAddress
		}
	}

	return space.Addr(candidate)
}
