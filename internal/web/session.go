package web

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/user-admin/internal/ui"
)

// session is one browser's console: its controllers plus the notices
// waiting to be shown on the next render.
type session struct {
	id   uuid.UUID
	list *ui.ListController

	mu       sync.Mutex
	notices  []ui.Notice
	lastSeen time.Time
}

func (s *session) Notify(n ui.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, n)
}

func (s *session) takeNotices() []ui.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	notices := s.notices
	s.notices = nil
	return notices
}

// SessionStore keeps sessions in memory and drops those idle longer than
// the TTL.
type SessionStore struct {
	newList ListFactory
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// ListFactory builds the list controller of a new session.
type ListFactory func(notifier ui.Notifier) *ui.ListController

func NewSessionStore(svc ui.UserService, ttl time.Duration) *SessionStore {
	return newSessionStore(func(notifier ui.Notifier) *ui.ListController {
		return ui.NewListController(svc, notifier, nil)
	}, ttl, time.Now)
}

func newSessionStore(newList ListFactory, ttl time.Duration, now func() time.Time) *SessionStore {
	return &SessionStore{
		newList:  newList,
		ttl:      ttl,
		now:      now,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) get(id uuid.UUID) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}

	now := s.now()
	sess.mu.Lock()
	expired := now.Sub(sess.lastSeen) > s.ttl
	if !expired {
		sess.lastSeen = now
	}
	sess.mu.Unlock()

	if expired {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}

// create registers a new session and loads its list once, the way a freshly
// mounted list view would.
func (s *SessionStore) create(ctx context.Context) (*session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	sess := &session{id: id, lastSeen: s.now()}
	sess.list = s.newList(sess)

	s.mu.Lock()
	s.purgeLocked()
	s.sessions[id] = sess
	s.mu.Unlock()

	if err := sess.list.Refresh(ctx); err != nil {
		log.Warn().Err(err).Str("session_id", id.String()).Msg("Initial user load failed")
	}

	return sess, nil
}

func (s *SessionStore) purgeLocked() {
	now := s.now()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastSeen)
		sess.mu.Unlock()

		if idle > s.ttl {
			delete(s.sessions, id)
			log.Debug().Str("session_id", id.String()).Dur("idle", idle).Msg("Session expired")
		}
	}
}
