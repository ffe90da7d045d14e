package domain

import (
	"context"
	"net/netip"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
	"go4.org/netipx"
)

// CreateNetworkRecord is a validated network ready to be stored.
type CreateNetworkRecord struct {
	CIDR        netip.Prefix
	PoolStart   netip.Addr
	PoolEnd     netip.Addr
	Description string
}

type NetworkRepository interface {
	List(ctx context.Context) ([]Network, error)
	FindByID(ctx context.Context, id int64) (Network, error)
	Create(ctx context.Context, input CreateNetworkRecord) (Network, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Ledger is the authoritative store of address records.
type Ledger interface {
	// ListByNetwork returns records ordered by address, then prefix.
	ListByNetwork(ctx context.Context, networkID int64, family addrspace.Family) ([]IPRecord, error)
	Exists(ctx context.Context, networkID int64, family addrspace.Family, ip netip.Addr, prefix *int) (bool, error)
	// Occupied returns the distinct allocated addresses inside r in ascending order.
	Occupied(ctx context.Context, networkID int64, family addrspace.Family, r netipx.IPRange) ([]netip.Addr, error)
	FindByID(ctx context.Context, id IPRecordID) (IPRecord, error)
	InsertOne(ctx context.Context, record NewIPRecord) (IPRecord, error)
	// InsertMany adds all records or none of them.
	InsertMany(ctx context.Context, records []NewIPRecord) ([]IPRecord, error)
	Update(ctx context.Context, id IPRecordID, input UpdateIPInput) (IPRecord, error)
	SetCustomer(ctx context.Context, id IPRecordID, customerID *int64) (IPRecord, error)
	Delete(ctx context.Context, id IPRecordID) (bool, error)
}
