// Package memory is the process-local record store. A single Store owns every
// collection and serializes access through one RWMutex; repositories are thin
// views over it so that multi-step operations can share the lock.
package memory

import (
	"sync"
	"time"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// DefaultMaxSessions bounds the session table when no limit is configured.
const DefaultMaxSessions = 100000

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Store holds all mutable entities keyed by id.
type Store struct {
	mu    sync.RWMutex
	clock contract.IClock

	users      map[string]*entity.User
	userOrder  orderedIDs
	emailIndex map[string]string

	blogs     map[string]*entity.Blog
	blogOrder orderedIDs

	posts     map[string]*entity.CommunityPost
	postOrder orderedIDs

	notifications     map[string]*entity.Notification
	notificationOrder orderedIDs

	sessions    map[string]*entity.Session
	maxSessions int

	cars []entity.Car
	news []entity.NewsArticle
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock.
func WithClock(clock contract.IClock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMaxSessions caps the session table. Values <= 0 keep the default.
func WithMaxSessions(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clock:         systemClock{},
		users:         make(map[string]*entity.User),
		emailIndex:    make(map[string]string),
		blogs:         make(map[string]*entity.Blog),
		posts:         make(map[string]*entity.CommunityPost),
		notifications: make(map[string]*entity.Notification),
		sessions:      make(map[string]*entity.Session),
		maxSessions:   DefaultMaxSessions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC()
}

// orderedIDs remembers insertion order so listings are deterministic.
// Removal leaves a hole that later compaction drops, so add and remove are
// amortized O(1). The zero value is ready to use.
type orderedIDs struct {
	ids []string
	pos map[string]int
}

func (o *orderedIDs) add(id string) {
	if o.pos == nil {
		o.pos = make(map[string]int)
	}
	if _, ok := o.pos[id]; ok {
		return
	}
	o.pos[id] = len(o.ids)
	o.ids = append(o.ids, id)
}

func (o *orderedIDs) remove(id string) {
	if _, ok := o.pos[id]; !ok {
		return
	}
	delete(o.pos, id)
	if holes := len(o.ids) - len(o.pos); holes > 32 && holes > len(o.pos) {
		o.compact()
	}
}

func (o *orderedIDs) compact() {
	live := make([]string, 0, len(o.pos))
	for i, id := range o.ids {
		if p, ok := o.pos[id]; ok && p == i {
			o.pos[id] = len(live)
			live = append(live, id)
		}
	}
	o.ids = live
}

func (o *orderedIDs) len() int { return len(o.pos) }

// each visits live ids in insertion order until fn returns false.
func (o *orderedIDs) each(fn func(id string) bool) {
	for i, id := range o.ids {
		if p, ok := o.pos[id]; !ok || p != i {
			continue
		}
		if !fn(id) {
			return
		}
	}
}
