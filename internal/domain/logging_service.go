package domain

import (
	"context"
	"log/slog"
	"net/netip"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
)

type loggingNetworkService struct {
	logger *slog.Logger
	next   NetworkService
}

func NewLoggingNetworkService(logger *slog.Logger, next NetworkService) NetworkService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingNetworkService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingNetworkService) ListNetworks(ctx context.Context) ([]Network, error) {
	networks, err := s.next.ListNetworks(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list networks failed", "err", err.Error())
	}
	return networks, err
}

func (s *loggingNetworkService) CreateNetwork(ctx context.Context, input CreateNetworkInput) (Network, error) {
	network, err := s.next.CreateNetwork(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create network failed", "cidr", input.CIDR, "err", err.Error())
		return Network{}, err
	}

	s.logger.InfoContext(ctx, "network created", "id", network.ID, "cidr", network.CIDR.String(), "actor", ActorFromContext(ctx))
	return network, nil
}

func (s *loggingNetworkService) GetNetwork(ctx context.Context, id int64) (Network, error) {
	network, err := s.next.GetNetwork(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get network failed", "id", id, "err", err.Error())
	}
	return network, err
}

func (s *loggingNetworkService) DeleteNetwork(ctx context.Context, id int64) error {
	err := s.next.DeleteNetwork(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete network failed", "id", id, "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "network deleted", "id", id)
	return nil
}

func (s *loggingNetworkService) ListIPs(ctx context.Context, family addrspace.Family, networkID int64) ([]IPRecord, error) {
	ips, err := s.next.ListIPs(ctx, family, networkID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list ips failed", "family", family, "network_id", networkID, "err", err.Error())
	}
	return ips, err
}

func (s *loggingNetworkService) CreateIP(ctx context.Context, family addrspace.Family, networkID int64, input CreateIPInput) (IPRecord, error) {
	ip, err := s.next.CreateIP(ctx, family, networkID, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create ip failed", "family", family, "network_id", networkID, "ip", input.IP, "err", err.Error())
		return IPRecord{}, err
	}

	s.logger.DebugContext(ctx, "ip created", "network_id", networkID, "ip", ip.IP.String(), "id", string(ip.ID))
	return ip, nil
}

func (s *loggingNetworkService) GenerateIPs(ctx context.Context, family addrspace.Family, networkID int64, input GenerateInput) (GenerateResult, error) {
	result, err := s.next.GenerateIPs(ctx, family, networkID, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "generate ips failed",
			"family", family,
			"network_id", networkID,
			"start_ip", input.StartIP,
			"end_ip", input.EndIP,
			"err", err.Error(),
		)
		return GenerateResult{}, err
	}

	s.logger.InfoContext(ctx, "ips generated",
		"family", family,
		"network_id", networkID,
		"start_ip", input.StartIP,
		"end_ip", input.EndIP,
		"count", len(result.Created),
		"actor", ActorFromContext(ctx),
	)
	return result, nil
}

func (s *loggingNetworkService) NextAvailableIP(ctx context.Context, family addrspace.Family, networkID int64) (netip.Addr, error) {
	ip, err := s.next.NextAvailableIP(ctx, family, networkID)
	if err != nil {
		s.logger.ErrorContext(ctx, "next available ip failed", "family", family, "network_id", networkID, "err", err.Error())
		return netip.Addr{}, err
	}

	s.logger.DebugContext(ctx, "next available ip", "family", family, "network_id", networkID, "ip", ip.String())
	return ip, nil
}

func (s *loggingNetworkService) UpdateIP(ctx context.Context, family addrspace.Family, id IPRecordID, input UpdateIPInput) (IPRecord, error) {
	ip, err := s.next.UpdateIP(ctx, family, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "update ip failed", "family", family, "ip_id", string(id), "err", err.Error())
	}
	return ip, err
}

func (s *loggingNetworkService) AssignIP(ctx context.Context, family addrspace.Family, id IPRecordID, customerID *int64) (IPRecord, error) {
	ip, err := s.next.AssignIP(ctx, family, id, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "assign ip failed", "family", family, "ip_id", string(id), "err", err.Error())
		return IPRecord{}, err
	}

	if customerID == nil {
		s.logger.InfoContext(ctx, "ip unassigned", "ip_id", string(id), "ip", ip.IP.String(), "actor", ActorFromContext(ctx))
	} else {
		s.logger.InfoContext(ctx, "ip assigned", "ip_id", string(id), "ip", ip.IP.String(), "customer_id", *customerID, "actor", ActorFromContext(ctx))
	}
	return ip, nil
}

func (s *loggingNetworkService) DeleteIP(ctx context.Context, family addrspace.Family, id IPRecordID) error {
	err := s.next.DeleteIP(ctx, family, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete ip failed", "family", family, "ip_id", string(id), "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "ip deleted", "family", family, "ip_id", string(id), "actor", ActorFromContext(ctx))
	return nil
}
