package session

import "sync"

// Session links a posted quiz poll to its originating chat and the
// index of the correct option after shuffling.
type Session struct {
	ChatID        int64
	MessageID     int
	Options       []string
	CorrectOption int
}

// Store maps Telegram poll ids to their sessions for the lifetime of
// the process. Entries are never evicted: a restart invalidates
// in-flight polls, which is accepted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]Session),
	}
}

func (s *Store) Put(pollID string, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[pollID] = sess
}

func (s *Store) Get(pollID string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[pollID]
	return sess, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
