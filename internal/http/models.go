package http

import (
	"time"

	"github.com/Flarenzy/ipam-ledger/internal/domain"
)

// NetworkResponse is the view of a network returned to clients and used in Swagger.
type NetworkResponse struct {
	ID          int64     `json:"id" example:"7"`
	CIDR        string    `json:"cidr" example:"192.168.1.0/24"`
	Family      string    `json:"family" example:"v4"`
	PoolStart   string    `json:"pool_start,omitempty" example:"192.168.1.100"`
	PoolEnd     string    `json:"pool_end,omitempty" example:"192.168.1.200"`
	Description string    `json:"description" example:"Access network, POP 3"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateNetworkRequest is the payload accepted when creating a network.
type CreateNetworkRequest struct {
	CIDR        string `json:"cidr" example:"192.168.1.0/24" validate:"required"`
	PoolStart   string `json:"pool_start" example:"192.168.1.100"`
	PoolEnd     string `json:"pool_end" example:"192.168.1.200"`
	Description string `json:"description" example:"Access network, POP 3"`
}

// ErrorResponse is a simple envelope for error messages. Conflicts lists the
// already allocated addresses when a generate request collides.
type ErrorResponse struct {
	Error     string   `json:"error" example:"network not found"`
	Conflicts []string `json:"conflicts,omitempty" example:"192.168.1.103"`
}

// IPResponse is the view of a ledger record returned to clients.
type IPResponse struct {
	ID         string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	NetworkID  int64     `json:"network_id" example:"7"`
	Family     string    `json:"family" example:"v4"`
	IP         string    `json:"ip" example:"192.168.1.100"`
	Prefix     *int      `json:"prefix" example:"64"`
	Hostname   string    `json:"hostname" example:"cpe-1042"`
	Title      string    `json:"title" example:"Rack A"`
	Comment    string    `json:"comment" example:"reserved for fiber customers"`
	IsUsed     bool      `json:"is_used" example:"false"`
	CustomerID *int64    `json:"customer_id" example:"1042"`
	CreatedAt  time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateIPRequest is the payload accepted when adding a single record.
type CreateIPRequest struct {
	IP         string `json:"ip" example:"192.168.1.10"`
	Prefix     *int   `json:"prefix" example:"128"`
	Hostname   string `json:"hostname" example:"cpe-1042"`
	Title      string `json:"title" example:"Rack A"`
	Comment    string `json:"comment" example:""`
	CustomerID *int64 `json:"customer_id" example:"1042"`
}

// UpdateIPRequest patches record metadata. Omitted fields are unchanged.
type UpdateIPRequest struct {
	Hostname *string `json:"hostname" example:"cpe-2001"`
	Title    *string `json:"title" example:"Rack B"`
	Comment  *string `json:"comment" example:"moved"`
}

// GenerateIPsRequest asks for every address in [start_ip, end_ip].
type GenerateIPsRequest struct {
	StartIP string `json:"start_ip" example:"192.168.1.100"`
	EndIP   string `json:"end_ip" example:"192.168.1.105"`
	Prefix  *int   `json:"prefix" example:"64"`
	Title   string `json:"title" example:"Rack A"`
	Comment string `json:"comment" example:"bulk import"`
}

type GenerateIPsResponse struct {
	Message string       `json:"message" example:"6 IP addresses generated"`
	Created []IPResponse `json:"created"`
}

// AssignIPRequest binds a record to a customer, or frees it when
// customer_id is null.
type AssignIPRequest struct {
	CustomerID *int64 `json:"customer_id" example:"1042"`
}

type NextAvailableIPResponse struct {
	IP string `json:"ip" example:"192.168.1.1"`
}

func networkToResponse(n domain.Network) NetworkResponse {
	resp := NetworkResponse{
		ID:          n.ID,
		CIDR:        n.CIDR.String(),
		Family:      n.Family().String(),
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
	if n.HasPool() {
		resp.PoolStart = n.PoolStart.String()
		resp.PoolEnd = n.PoolEnd.String()
	}
	return resp
}

func networksToResponse(networks []domain.Network) []NetworkResponse {
	out := make([]NetworkResponse, 0, len(networks))
	for _, n := range networks {
		out = append(out, networkToResponse(n))
	}
	return out
}

func ipToResponse(i domain.IPRecord) IPResponse {
	return IPResponse{
		ID:         string(i.ID),
		NetworkID:  i.NetworkID,
		Family:     i.Family.String(),
		IP:         i.IP.String(),
		Prefix:     i.Prefix,
		Hostname:   i.Hostname,
		Title:      i.Title,
		Comment:    i.Comment,
		IsUsed:     i.IsUsed(),
		CustomerID: i.CustomerID,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func ipsToResponse(ips []domain.IPRecord) []IPResponse {
	out := make([]IPResponse, 0, len(ips))
	for _, ip := range ips {
		out = append(out, ipToResponse(ip))
	}
	return out
}

func (r CreateNetworkRequest) toInput() domain.CreateNetworkInput {
	return domain.CreateNetworkInput{
		CIDR:        r.CIDR,
		PoolStart:   r.PoolStart,
		PoolEnd:     r.PoolEnd,
		Description: r.Description,
	}
}

func (r CreateIPRequest) toInput() domain.CreateIPInput {
	return domain.CreateIPInput{
		IP:         r.IP,
		Prefix:     r.Prefix,
		Hostname:   r.Hostname,
		Title:      r.Title,
		Comment:    r.Comment,
		CustomerID: r.CustomerID,
	}
}

func (r UpdateIPRequest) toInput() domain.UpdateIPInput {
	return domain.UpdateIPInput{
		Hostname: r.Hostname,
		Title:    r.Title,
		Comment:  r.Comment,
	}
}

func (r GenerateIPsRequest) toInput() domain.GenerateInput {
	return domain.GenerateInput{
		StartIP: r.StartIP,
		EndIP:   r.EndIP,
		Prefix:  r.Prefix,
		Title:   r.Title,
		Comment: r.Comment,
	}
}
