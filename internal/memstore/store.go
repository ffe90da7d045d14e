// Package memstore keeps networks and the address ledger in process memory.
// It backs the service when STORAGE=memory and is used throughout the tests.
package memstore

import (
	"context"
	"net/netip"
	"slices"
	"sync"
	"time"

	"github.com/Flarenzy/ipam-ledger/internal/addrspace"
	"github.com/Flarenzy/ipam-ledger/internal/domain"
	"github.com/google/uuid"
	"go4.org/netipx"
)

type recordKey struct {
	networkID int64
	family    addrspace.Family
	ip        netip.Addr
	prefix    int
}

func keyOf(networkID int64, family addrspace.Family, ip netip.Addr, prefix *int) recordKey {
	k := recordKey{networkID: networkID, family: family, ip: ip, prefix: -1}
	if prefix != nil {
		k.prefix = *prefix
	}
	return k
}

type Store struct {
	mu            sync.RWMutex
	now           func() time.Time
	nextNetworkID int64
	networks      map[int64]domain.Network
	records       map[domain.IPRecordID]domain.IPRecord
	index         map[recordKey]domain.IPRecordID
}

func New() *Store {
	return &Store{
		now:           time.Now,
		nextNetworkID: 1,
		networks:      make(map[int64]domain.Network),
		records:       make(map[domain.IPRecordID]domain.IPRecord),
		index:         make(map[recordKey]domain.IPRecordID),
	}
}

// Networks returns the store's network repository view.
func (s *Store) Networks() *NetworkRepository {
	return &NetworkRepository{store: s}
}

// Ledger returns the store's ledger view.
func (s *Store) Ledger() *Ledger {
	return &Ledger{store: s}
}

// Ping satisfies the readiness check.
func (s *Store) Ping(context.Context) error {
	return nil
}

type NetworkRepository struct {
	store *Store
}

func (r *NetworkRepository) List(_ context.Context) ([]domain.Network, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Network, 0, len(r.store.networks))
	for _, n := range r.store.networks {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b domain.Network) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}

func (r *NetworkRepository) FindByID(_ context.Context, id int64) (domain.Network, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n, ok := r.store.networks[id]
	if !ok {
		return domain.Network{}, domain.ErrNetworkNotFound
	}
	return n, nil
}

func (r *NetworkRepository) Create(_ context.Context, input domain.CreateNetworkRecord) (domain.Network, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, n := range r.store.networks {
		if n.CIDR == input.CIDR {
			return domain.Network{}, domain.ErrConflict
		}
	}

	now := r.store.now()
	n := domain.Network{
		ID:          r.store.nextNetworkID,
		CIDR:        input.CIDR,
		PoolStart:   input.PoolStart,
		PoolEnd:     input.PoolEnd,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.store.nextNetworkID++
	r.store.networks[n.ID] = n
	return n, nil
}

// Delete removes the network and every record allocated in it.
func (r *NetworkRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.networks[id]; !ok {
		return false, nil
	}
	delete(r.store.networks, id)

	for recordID, rec := range r.store.records {
		if rec.NetworkID == id {
			delete(r.store.index, keyOf(rec.NetworkID, rec.Family, rec.IP, rec.Prefix))
			delete(r.store.records, recordID)
		}
	}
	return true, nil
}

type Ledger struct {
	store *Store
}

func (l *Ledger) ListByNetwork(_ context.Context, networkID int64, family addrspace.Family) ([]domain.IPRecord, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	var out []domain.IPRecord
	for _, rec := range l.store.records {
		if rec.NetworkID == networkID && rec.Family == family {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, compareRecords)
	return out, nil
}

func (l *Ledger) Exists(_ context.Context, networkID int64, family addrspace.Family, ip netip.Addr, prefix *int) (bool, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	_, ok := l.store.index[keyOf(networkID, family, ip, prefix)]
	return ok, nil
}

func (l *Ledger) Occupied(_ context.Context, networkID int64, family addrspace.Family, r netipx.IPRange) ([]netip.Addr, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	var out []netip.Addr
	for _, rec := range l.store.records {
		if rec.NetworkID == networkID && rec.Family == family && r.Contains(rec.IP) {
			out = append(out, rec.IP)
		}
	}
	slices.SortFunc(out, netip.Addr.Compare)
	return slices.Compact(out), nil
}

func (l *Ledger) FindByID(_ context.Context, id domain.IPRecordID) (domain.IPRecord, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	rec, ok := l.store.records[id]
	if !ok {
		return domain.IPRecord{}, domain.ErrIPNotFound
	}
	return rec, nil
}

func (l *Ledger) InsertOne(_ context.Context, record domain.NewIPRecord) (domain.IPRecord, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	if _, ok := l.store.networks[record.NetworkID]; !ok {
		return domain.IPRecord{}, domain.ErrNetworkNotFound
	}
	if _, ok := l.store.index[keyOf(record.NetworkID, record.Family, record.IP, record.Prefix)]; ok {
		return domain.IPRecord{}, domain.ErrDuplicateAddress
	}
	return l.insertLocked(record), nil
}

func (l *Ledger) InsertMany(_ context.Context, records []domain.NewIPRecord) ([]domain.IPRecord, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	seen := make(map[recordKey]struct{}, len(records))
	var conflicts []netip.Addr
	for _, record := range records {
		if _, ok := l.store.networks[record.NetworkID]; !ok {
			return nil, domain.ErrNetworkNotFound
		}
		k := keyOf(record.NetworkID, record.Family, record.IP, record.Prefix)
		if _, ok := l.store.index[k]; ok {
			conflicts = append(conflicts, record.IP)
			continue
		}
		if _, ok := seen[k]; ok {
			conflicts = append(conflicts, record.IP)
			continue
		}
		seen[k] = struct{}{}
	}
	if len(conflicts) > 0 {
		return nil, &domain.RangeConflictError{Addresses: conflicts}
	}

	out := make([]domain.IPRecord, 0, len(records))
	for _, record := range records {
		out = append(out, l.insertLocked(record))
	}
	return out, nil
}

func (l *Ledger) insertLocked(record domain.NewIPRecord) domain.IPRecord {
	now := l.store.now()
	rec := domain.IPRecord{
		ID:         domain.IPRecordID(uuid.NewString()),
		NetworkID:  record.NetworkID,
		Family:     record.Family,
		IP:         record.IP,
		Prefix:     copyPtr(record.Prefix),
		Hostname:   record.Hostname,
		Title:      record.Title,
		Comment:    record.Comment,
		CustomerID: copyPtr(record.CustomerID),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	l.store.records[rec.ID] = rec
	l.store.index[keyOf(rec.NetworkID, rec.Family, rec.IP, rec.Prefix)] = rec.ID
	return rec
}

func (l *Ledger) Update(_ context.Context, id domain.IPRecordID, input domain.UpdateIPInput) (domain.IPRecord, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	rec, ok := l.store.records[id]
	if !ok {
		return domain.IPRecord{}, domain.ErrIPNotFound
	}
	if input.Hostname != nil {
		rec.Hostname = *input.Hostname
	}
	if input.Title != nil {
		rec.Title = *input.Title
	}
	if input.Comment != nil {
		rec.Comment = *input.Comment
	}
	rec.UpdatedAt = l.store.now()
	l.store.records[id] = rec
	return rec, nil
}

func (l *Ledger) SetCustomer(_ context.Context, id domain.IPRecordID, customerID *int64) (domain.IPRecord, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	rec, ok := l.store.records[id]
	if !ok {
		return domain.IPRecord{}, domain.ErrIPNotFound
	}
	rec.CustomerID = copyPtr(customerID)
	rec.UpdatedAt = l.store.now()
	l.store.records[id] = rec
	return rec, nil
}

func (l *Ledger) Delete(_ context.Context, id domain.IPRecordID) (bool, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	rec, ok := l.store.records[id]
	if !ok {
		return false, nil
	}
	delete(l.store.index, keyOf(rec.NetworkID, rec.Family, rec.IP, rec.Prefix))
	delete(l.store.records, id)
	return true, nil
}

func compareRecords(a, b domain.IPRecord) int {
	if c := a.IP.Compare(b.IP); c != 0 {
		return c
	}
	switch {
	case a.Prefix == nil && b.Prefix == nil:
		return 0
	case a.Prefix == nil:
		return -1
	case b.Prefix == nil:
		return 1
	}
	return *a.Prefix - *b.Prefix
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
