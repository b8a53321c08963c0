package session

import "sync"

// Store keeps one active flow per user. Sessions are keyed strictly by
// user id and never aliased. Bot handlers run on separate goroutines, so
// each user additionally has an event lock: holders of Acquire get the
// one-event-at-a-time guarantee the flow steps rely on.
type Store struct {
	mu    sync.Mutex
	flows map[int64]Flow
	locks map[int64]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		flows: make(map[int64]Flow),
		locks: make(map[int64]*sync.Mutex),
	}
}

// Acquire blocks until no other event for the user is in flight and
// returns the release function.
func (s *Store) Acquire(userID int64) func() {
	s.mu.Lock()
	l := s.locks[userID]
	if l == nil {
		l = new(sync.Mutex)
		s.locks[userID] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// Active returns the user's current flow, if any.
func (s *Store) Active(userID int64) (Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[userID]
	return f, ok
}

// Start replaces whatever flow the user had with a fresh one.
// Prior partial state is discarded unconditionally.
func (s *Store) Start(userID int64, f Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[userID] = f
}

// Clear resets the user to idle.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, userID)
}
