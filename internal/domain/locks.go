package domain

import "sync"

// networkLocks serializes ledger mutation per network. Entries are
// reference counted so idle networks do not accumulate mutexes.
type networkLocks struct {
	mu    sync.Mutex
	locks map[int64]*networkLock
}

type networkLock struct {
	mu   sync.Mutex
	refs int
}

func newNetworkLocks() *networkLocks {
	return &networkLocks{locks: make(map[int64]*networkLock)}
}

// Lock blocks until the network's lock is held and returns the release func.
func (l *networkLocks) Lock(networkID int64) func() {
	l.mu.Lock()
	lock, ok := l.locks[networkID]
	if !ok {
		lock = &networkLock{}
		l.locks[networkID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, networkID)
		}
		l.mu.Unlock()
	}
}

func (l *networkLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
