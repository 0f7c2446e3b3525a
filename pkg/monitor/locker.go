package monitor

import "sync"

// MonitorLockStore hands out one mutex per monitor id. Transition detection
// serializes its read-evaluate-persist-dispatch sequence through it so
// near-simultaneous pings cannot alert twice for one transition.
type MonitorLockStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMonitorLockStore() *MonitorLockStore {
	return &MonitorLockStore{
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *MonitorLockStore) Get(monitorID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[monitorID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[monitorID] = lock
	}
	return lock
}
