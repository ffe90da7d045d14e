package db

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
	sqlc "github.com/Flarenzy/ipam-ledger/internal/db/sqlc"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go4.org/netipx"
)

// TxBeginner is the connection handle bulk inserts open transactions on.
// *pgxpool.Pool satisfies it.
type TxBeginner interface {
	sqlc.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

type IPRepository struct {
	db      TxBeginner
	queries *sqlc.Queries
}

func NewIPRepository(db TxBeginner) *IPRepository {
	return &IPRepository{db: db, queries: sqlc.New(db)}
}

func (r *IPRepository) ListByNetwork(ctx context.Context, networkID int64, family addrspace.Family) ([]domain.IPRecord, error) {
	records, err := r.queries.ListIPRecordsByNetwork(ctx, sqlc.ListIPRecordsByNetworkParams{
		NetworkID: networkID,
		Family:    family.String(),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.IPRecord, 0, len(records))
	for _, record := range records {
		out = append(out, toDomainIP(record))
	}

	return out, nil
}

func (r *IPRepository) Exists(ctx context.Context, networkID int64, family addrspace.Family, ip netip.Addr, prefix *int) (bool, error) {
	return r.queries.IPRecordExists(ctx, sqlc.IPRecordExistsParams{
		NetworkID: networkID,
		Family:    family.String(),
		Ip:        ip,
		Prefix:    toPgInt2(prefix),
	})
}

func (r *IPRepository) Occupied(ctx context.Context, networkID int64, family addrspace.Family, span netipx.IPRange) ([]netip.Addr, error) {
	return r.queries.ListOccupiedIPs(ctx, sqlc.ListOccupiedIPsParams{
		NetworkID: networkID,
		Family:    family.String(),
		FromIp:    span.From(),
		ToIp:      span.To(),
	})
}

func (r *IPRepository) FindByID(ctx context.Context, id domain.IPRecordID) (domain.IPRecord, error) {
	parsedID, err := parseDomainIPID(id)
	if err != nil {
		return domain.IPRecord{}, domain.ErrIPNotFound
	}

	record, err := r.queries.GetIPRecordByID(ctx, parsedID)
	if err != nil {
		if isNoRows(err) {
			return domain.IPRecord{}, domain.ErrIPNotFound
		}
		return domain.IPRecord{}, err
	}

	return toDomainIP(record), nil
}

func (r *IPRepository) InsertOne(ctx context.Context, input domain.NewIPRecord) (domain.IPRecord, error) {
	record, err := r.queries.CreateIPRecord(ctx, toCreateParams(input))
	if err != nil {
		switch {
		case isConstraintViolation(err, "unique_ip"):
			return domain.IPRecord{}, domain.ErrDuplicateAddress
		case isForeignKeyViolation(err):
			return domain.IPRecord{}, domain.ErrNetworkNotFound
		}
		return domain.IPRecord{}, err
	}

	return toDomainIP(record), nil
}

// InsertMany writes every record in one transaction. The network's advisory
// lock is held until commit so replicas sharing the database serialize bulk
// writes to the same network.
func (r *IPRepository) InsertMany(ctx context.Context, inputs []domain.NewIPRecord) (out []domain.IPRecord, err error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin insert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	q := r.queries.WithTx(tx)
	if err := q.LockNetwork(ctx, inputs[0].NetworkID); err != nil {
		return nil, fmt.Errorf("lock network: %w", err)
	}

	out = make([]domain.IPRecord, 0, len(inputs))
	for _, input := range inputs {
		record, err := q.CreateIPRecord(ctx, toCreateParams(input))
		if err != nil {
			switch {
			case isConstraintViolation(err, "unique_ip"):
				return nil, &domain.RangeConflictError{Addresses: []netip.Addr{input.IP}}
			case isForeignKeyViolation(err):
				return nil, domain.ErrNetworkNotFound
			}
			return nil, err
		}
		out = append(out, toDomainIP(record))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit insert: %w", err)
	}
	return out, nil
}

func (r *IPRepository) Update(ctx context.Context, id domain.IPRecordID, input domain.UpdateIPInput) (domain.IPRecord, error) {
	parsedID, err := parseDomainIPID(id)
	if err != nil {
		return domain.IPRecord{}, domain.ErrIPNotFound
	}

	record, err := r.queries.UpdateIPRecord(ctx, sqlc.UpdateIPRecordParams{
		Hostname: toPgText(input.Hostname),
		Title:    toPgText(input.Title),
		Comment:  toPgText(input.Comment),
		ID:       parsedID,
	})
	if err != nil {
		if isNoRows(err) {
			return domain.IPRecord{}, domain.ErrIPNotFound
		}
		return domain.IPRecord{}, err
	}

	return toDomainIP(record), nil
}

func (r *IPRepository) SetCustomer(ctx context.Context, id domain.IPRecordID, customerID *int64) (domain.IPRecord, error) {
	parsedID, err := parseDomainIPID(id)
	if err != nil {
		return domain.IPRecord{}, domain.ErrIPNotFound
	}

	var customer pgtype.Int8
	if customerID != nil {
		customer = pgtype.Int8{Int64: *customerID, Valid: true}
	}

	record, err := r.queries.SetIPRecordCustomer(ctx, sqlc.SetIPRecordCustomerParams{
		ID:         parsedID,
		CustomerID: customer,
	})
	if err != nil {
		if isNoRows(err) {
			return domain.IPRecord{}, domain.ErrIPNotFound
		}
		return domain.IPRecord{}, err
	}

	return toDomainIP(record), nil
}

func (r *IPRepository) Delete(ctx context.Context, id domain.IPRecordID) (bool, error) {
	parsedID, err := parseDomainIPID(id)
	if err != nil {
		return false, nil
	}

	deleted, err := r.queries.DeleteIPRecordByID(ctx, parsedID)
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func toCreateParams(input domain.NewIPRecord) sqlc.CreateIPRecordParams {
	params := sqlc.CreateIPRecordParams{
		NetworkID: input.NetworkID,
		Family:    input.Family.String(),
		Ip:        input.IP,
		Prefix:    toPgInt2(input.Prefix),
		Hostname:  input.Hostname,
		Title:     input.Title,
		Comment:   input.Comment,
	}
	if input.CustomerID != nil {
		params.CustomerID = pgtype.Int8{Int64: *input.CustomerID, Valid: true}
	}
	return params
}

func toDomainIP(record sqlc.IpRecord) domain.IPRecord {
	out := domain.IPRecord{
		ID:        domain.IPRecordID(uuid.UUID(record.ID.Bytes).String()),
		NetworkID: record.NetworkID,
		Family:    addrspace.Family(record.Family),
		IP:        record.Ip,
		Hostname:  record.Hostname,
		Title:     record.Title,
		Comment:   record.Comment,
		CreatedAt: record.CreatedAt.Time,
		UpdatedAt: record.UpdatedAt.Time,
	}
	if record.Prefix.Valid {
		prefix := int(record.Prefix.Int16)
		out.Prefix = &prefix
	}
	if record.CustomerID.Valid {
		customer := record.CustomerID.Int64
		out.CustomerID = &customer
	}
	return out
}

func parseDomainIPID(id domain.IPRecordID) (pgtype.UUID, error) {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return pgtype.UUID{}, err
	}

	return pgtype.UUID{Bytes: u, Valid: true}, nil
}

func toPgInt2(v *int) pgtype.Int2 {
	if v == nil {
		return pgtype.Int2{}
	}
	return pgtype.Int2{Int16: int16(*v), Valid: true}
}

func toPgText(v *string) pgtype.Text {
	if v == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *v, Valid: true}
}
