package domain

import (
	"context"
	"net/netip"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
)

type NetworkService interface {
	ListNetworks(ctx context.Context) ([]Network, error)
	CreateNetwork(ctx context.Context, input CreateNetworkInput) (Network, error)
	GetNetwork(ctx context.Context, id int64) (Network, error)
	DeleteNetwork(ctx context.Context, id int64) error

	ListIPs(ctx context.Context, family addrspace.Family, networkID int64) ([]IPRecord, error)
	CreateIP(ctx context.Context, family addrspace.Family, networkID int64, input CreateIPInput) (IPRecord, error)
	GenerateIPs(ctx context.Context, family addrspace.Family, networkID int64, input GenerateInput) (GenerateResult, error)
	NextAvailableIP(ctx context.Context, family addrspace.Family, networkID int64) (netip.Addr, error)
	UpdateIP(ctx context.Context, family addrspace.Family, id IPRecordID, input UpdateIPInput) (IPRecord, error)
	AssignIP(ctx context.Context, family addrspace.Family, id IPRecordID, customerID *int64) (IPRecord, error)
	DeleteIP(ctx context.Context, family addrspace.Family, id IPRecordID) error
}
