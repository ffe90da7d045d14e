package domain

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
)

// MaxRangeSize caps how many addresses one generate request may create.
const MaxRangeSize = 256

// GenerateIPs materializes every address in [StartIP, EndIP] as a new record,
// or none of them. All validation happens before the ledger is written.
func (s *networkService) GenerateIPs(ctx context.Context, family addrspace.Family, networkID int64, input GenerateInput) (GenerateResult, error) {
	space := addrspace.For(family)

	start, err := space.Parse(input.StartIP)
	if err != nil {
		return GenerateResult{}, err
	}
	end, err := space.Parse(input.EndIP)
	if err != nil {
		return GenerateResult{}, err
	}

	size, err := addrspace.Size(start, end)
	if err != nil {
		return GenerateResult{}, err
	}
	if size.Cmp64(MaxRangeSize) > 0 {
		return GenerateResult{}, fmt.Errorf("%w: %s addresses requested, at most %d allowed", ErrRangeTooLarge, size, MaxRangeSize)
	}
	count, _ := size.Uint64()

	prefix, err := recordPrefix(family, input.Prefix)
	if err != nil {
		return GenerateResult{}, err
	}

	network, err := s.network(ctx, family, networkID)
	if err != nil {
		return GenerateResult{}, err
	}

	addrs := make([]netip.Addr, 0, count)
	for o := start; ; {
		addr, err := space.Addr(o)
		if err != nil {
			return GenerateResult{}, err
		}
		if err := validateIPInNetwork(network.CIDR, addr); err != nil {
			return GenerateResult{}, fmt.Errorf("%w: %s: %v", ErrInvalidRange, addr, err)
		}
		addrs = append(addrs, addr)

		if o.Cmp(end) == 0 {
			break
		}
		if o, err = space.Next(o); err != nil {
			return GenerateResult{}, err
		}
	}

	unlock := s.locks.Lock(networkID)
	defer unlock()

	var conflicts []netip.Addr
	for _, addr := range addrs {
		exists, err := s.ips.Exists(ctx, networkID, family, addr, prefix)
		if err != nil {
			return GenerateResult{}, err
		}
		if exists {
			conflicts = append(conflicts, addr)
		}
	}
	if len(conflicts) > 0 {
		return GenerateResult{}, &RangeConflictError{Addresses: conflicts}
	}

	records := make([]NewIPRecord, 0, len(addrs))
	for _, addr := range addrs {
		records = append(records, NewIPRecord{
			NetworkID: networkID,
			Family:    family,
			IP:        addr,
			Prefix:    prefix,
			Title:     input.Title,
			Comment:   input.Comment,
		})
	}

	created, err := s.ips.InsertMany(ctx, records)
	if err != nil {
		return GenerateResult{}, err
	}

	return GenerateResult{
		Message: fmt.Sprintf("%d IP addresses generated", len(created)),
		Created: created,
	}, nil
}
