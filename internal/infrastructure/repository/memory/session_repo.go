package memory

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// SessionRepository keeps sessions in the store's bounded session table.
type SessionRepository struct {
	store *Store
}

var _ contract.ISessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// SaveSession inserts the session. When the table is full, expired sessions are
// dropped first and then the session closest to expiry is evicted.
func (r *SessionRepository) SaveSession(ctx context.Context, session *entity.Session) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.Token]; !exists && len(s.sessions) >= s.maxSessions {
		s.purgeExpiredLocked()
		for len(s.sessions) >= s.maxSessions {
			s.evictSoonestLocked()
		}
	}
	c := *session
	s.sessions[session.Token] = &c
	return nil
}

func (r *SessionRepository) GetSession(ctx context.Context, token string) (*entity.Session, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, token)
		return nil, nil
	}
	c := *sess
	return &c, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, token string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[token]
	delete(s.sessions, token)
	return ok, nil
}

func (r *SessionRepository) DeleteSessionsByUser(ctx context.Context, userID string) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for token, sess := range s.sessions {
		if sess.UserID == userID {
			delete(s.sessions, token)
			n++
		}
	}
	return n, nil
}

func (r *SessionRepository) PurgeExpired(ctx context.Context) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.purgeExpiredLocked(), nil
}

func (r *SessionRepository) CountSessions(ctx context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions), nil
}

func (s *Store) purgeExpiredLocked() int {
	now := s.now()
	n := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

func (s *Store) evictSoonestLocked() {
	var victim *entity.Session
	for _, sess := range s.sessions {
		if victim == nil || sess.ExpiresAt.Before(victim.ExpiresAt) {
			victim = sess
		}
	}
	if victim != nil {
		delete(s.sessions, victim.Token)
	}
}
