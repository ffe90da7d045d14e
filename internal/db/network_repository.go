package db

import (
	"context"
	"errors"

	sqlc "github.com/Flarenzy/ipam-ledger/internal/db/sqlc"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type NetworkRepository struct {
	queries *sqlc.Queries
}

func NewNetworkRepository(queries *sqlc.Queries) *NetworkRepository {
	return &NetworkRepository{queries: queries}
}

func (r *NetworkRepository) List(ctx context.Context) ([]domain.Network, error) {
	networks, err := r.queries.ListNetworks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Network, 0, len(networks))
	for _, network := range networks {
		out = append(out, toDomainNetwork(network))
	}

	return out, nil
}

func (r *NetworkRepository) FindByID(ctx context.Context, id int64) (domain.Network, error) {
	network, err := r.queries.GetNetworkByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return domain.Network{}, domain.ErrNetworkNotFound
		}
		return domain.Network{}, err
	}

	return toDomainNetwork(network), nil
}

func (r *NetworkRepository) Create(ctx context.Context, input domain.CreateNetworkRecord) (domain.Network, error) {
	params := sqlc.CreateNetworkParams{
		Cidr:        input.CIDR,
		Description: input.Description,
	}
	if input.PoolStart.IsValid() && input.PoolEnd.IsValid() {
		params.PoolStart = &input.PoolStart
		params.PoolEnd = &input.PoolEnd
	}

	network, err := r.queries.CreateNetwork(ctx, params)
	if err != nil {
		if isConstraintViolation(err, "unique_cidr") {
			return domain.Network{}, domain.ErrConflict
		}
		return domain.Network{}, err
	}

	return toDomainNetwork(network), nil
}

// Delete removes the network. Its records go with it through the foreign
// key cascade.
func (r *NetworkRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.queries.DeleteNetworkByID(ctx, id)
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func toDomainNetwork(network sqlc.Network) domain.Network {
	out := domain.Network{
		ID:          network.ID,
		CIDR:        network.Cidr,
		Description: network.Description,
		CreatedAt:   network.CreatedAt.Time,
		UpdatedAt:   network.UpdatedAt.Time,
	}
	if network.PoolStart != nil && network.PoolEnd != nil {
		out.PoolStart = *network.PoolStart
		out.PoolEnd = *network.PoolEnd
	}
	return out
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isConstraintViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
