package domain

import (
	"context"
	"fmt"
	"net/netip"
	"strings"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
)

type networkService struct {
	networks NetworkRepository
	ips      Ledger
	locks    *networkLocks

	guardAssignedDelete bool
}

type Option func(*networkService)

// WithGuardedDelete makes DeleteIP refuse records that are bound to a
// customer.
func WithGuardedDelete(enabled bool) Option {
	return func(s *networkService) {
		s.guardAssignedDelete = enabled
	}
}

func NewNetworkService(networks NetworkRepository, ips Ledger, opts ...Option) NetworkService {
	s := &networkService{
		networks: networks,
		ips:      ips,
		locks:    newNetworkLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *networkService) ListNetworks(ctx context.Context) ([]Network, error) {
	return s.networks.List(ctx)
}

func (s *networkService) CreateNetwork(ctx context.Context, input CreateNetworkInput) (Network, error) {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(input.CIDR))
	if err != nil {
		return Network{}, fmt.Errorf("%w: invalid cidr", ErrInvalidInput)
	}
	if prefix.Addr().Zone() != "" || prefix.Addr().Is4In6() {
		return Network{}, fmt.Errorf("%w: invalid cidr", ErrInvalidInput)
	}
	prefix = prefix.Masked()
	if addrspace.OverlapsV4Mapped(prefix) {
		return Network{}, fmt.Errorf("%w: cidr overlaps the IPv4-mapped block %s", ErrInvalidInput, addrspace.V4MappedBlock)
	}

	record := CreateNetworkRecord{CIDR: prefix, Description: input.Description}

	if input.PoolStart != "" || input.PoolEnd != "" {
		if input.PoolStart == "" || input.PoolEnd == "" {
			return Network{}, fmt.Errorf("%w: pool_start and pool_end must be set together", ErrInvalidInput)
		}
		space := addrspace.For(addrspace.FamilyOf(prefix.Addr()))
		start, err := space.ParseAddr(input.PoolStart)
		if err != nil {
			return Network{}, err
		}
		end, err := space.ParseAddr(input.PoolEnd)
		if err != nil {
			return Network{}, err
		}
		if end.Less(start) {
			return Network{}, fmt.Errorf("%w: pool_end is before pool_start", ErrInvalidRange)
		}
		if !prefix.Contains(start) || !prefix.Contains(end) {
			return Network{}, fmt.Errorf("%w: pool is outside %s", ErrInvalidRange, prefix)
		}
		if reservedInPrefix(prefix, start) || reservedInPrefix(prefix, end) {
			return Network{}, fmt.Errorf("%w: pool includes a reserved address of %s", ErrInvalidRange, prefix)
		}
		record.PoolStart = start
		record.PoolEnd = end
	}

	return s.networks.Create(ctx, record)
}

func (s *networkService) GetNetwork(ctx context.Context, id int64) (Network, error) {
	return s.networks.FindByID(ctx, id)
}

func (s *networkService) DeleteNetwork(ctx context.Context, id int64) error {
	deleted, err := s.networks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNetworkNotFound
	}
	return nil
}

func (s *networkService) ListIPs(ctx context.Context, family addrspace.Family, networkID int64) ([]IPRecord, error) {
	if _, err := s.network(ctx, family, networkID); err != nil {
		return nil, err
	}
	return s.ips.ListByNetwork(ctx, networkID, family)
}

func (s *networkService) CreateIP(ctx context.Context, family addrspace.Family, networkID int64, input CreateIPInput) (IPRecord, error) {
	space := addrspace.For(family)
	ip, err := space.ParseAddr(input.IP)
	if err != nil {
		return IPRecord{}, err
	}

	prefix, err := recordPrefix(family, input.Prefix)
	if err != nil {
		return IPRecord{}, err
	}
	if family == addrspace.V6 && input.Hostname != "" {
		return IPRecord{}, fmt.Errorf("%w: hostname is only supported for ipv4", ErrInvalidInput)
	}
	if input.CustomerID != nil && *input.CustomerID <= 0 {
		return IPRecord{}, fmt.Errorf("%w: customer id must be positive", ErrInvalidInput)
	}

	network, err := s.network(ctx, family, networkID)
	if err != nil {
		return IPRecord{}, err
	}
	if err := validateIPInNetwork(network.CIDR, ip); err != nil {
		return IPRecord{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	unlock := s.locks.Lock(networkID)
	defer unlock()

	return s.ips.InsertOne(ctx, NewIPRecord{
		NetworkID:  networkID,
		Family:     family,
		IP:         ip,
		Prefix:     prefix,
		Hostname:   input.Hostname,
		Title:      input.Title,
		Comment:    input.Comment,
		CustomerID: input.CustomerID,
	})
}

func (s *networkService) UpdateIP(ctx context.Context, family addrspace.Family, id IPRecordID, input UpdateIPInput) (IPRecord, error) {
	if _, err := s.record(ctx, family, id); err != nil {
		return IPRecord{}, err
	}
	if family == addrspace.V6 && input.Hostname != nil && *input.Hostname != "" {
		return IPRecord{}, fmt.Errorf("%w: hostname is only supported for ipv4", ErrInvalidInput)
	}
	return s.ips.Update(ctx, id, input)
}

// AssignIP binds the record to a customer, or frees it when customerID is
// nil. No other record is touched.
func (s *networkService) AssignIP(ctx context.Context, family addrspace.Family, id IPRecordID, customerID *int64) (IPRecord, error) {
	if customerID != nil && *customerID <= 0 {
		return IPRecord{}, fmt.Errorf("%w: customer id must be positive", ErrInvalidInput)
	}
	if _, err := s.record(ctx, family, id); err != nil {
		return IPRecord{}, err
	}
	return s.ips.SetCustomer(ctx, id, customerID)
}

func (s *networkService) DeleteIP(ctx context.Context, family addrspace.Family, id IPRecordID) error {
	record, err := s.record(ctx, family, id)
	if err != nil {
		return err
	}
	if s.guardAssignedDelete && record.IsUsed() {
		return ErrAddressAssigned
	}

	deleted, err := s.ips.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrIPNotFound
	}
	return nil
}

// network loads a network and requires it to belong to family.
func (s *networkService) network(ctx context.Context, family addrspace.Family, id int64) (Network, error) {
	network, err := s.networks.FindByID(ctx, id)
	if err != nil {
		return Network{}, err
	}
	if network.Family() != family {
		return Network{}, ErrNetworkNotFound
	}
	return network, nil
}

func (s *networkService) record(ctx context.Context, family addrspace.Family, id IPRecordID) (IPRecord, error) {
	record, err := s.ips.FindByID(ctx, id)
	if err != nil {
		return IPRecord{}, err
	}
	if record.Family != family {
		return IPRecord{}, ErrIPNotFound
	}
	return record, nil
}

// recordPrefix normalizes the prefix stored with a record: IPv4 records
// carry none, IPv6 records default to a host prefix.
func recordPrefix(family addrspace.Family, prefix *int) (*int, error) {
	if family == addrspace.V4 {
		return nil, nil
	}
	p := 128
	if prefix != nil {
		p = *prefix
	}
	if err := addrspace.ValidatePrefix(family, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func validateIPInNetwork(prefix netip.Prefix, ip netip.Addr) error {
	if !prefix.Contains(ip) {
		return fmt.Errorf("ip not in network")
	}

	if reservedInPrefix(prefix, ip) {
		if ip.Is4() {
			return fmt.Errorf("network or broadcast ip")
		}
		return fmt.Errorf("subnet-router anycast ip")
	}

	return nil
}
