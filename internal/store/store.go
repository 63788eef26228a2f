package store

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"workboard/internal/models"
	"workboard/internal/utils"
)

// PersistFunc writes a post-mutation snapshot to durable storage. It runs
// synchronously after every successful mutation; a returned error is logged
// and never surfaced to the mutating caller (persistence is fire-and-forget).
type PersistFunc func(models.AppState) error

// Subscriber receives a snapshot after every committed mutation.
type Subscriber func(models.AppState)

// Store is the application state container. All domain entities live in a
// single AppState tree guarded by one mutex; every mutation runs to
// completion under the lock and commits atomically from the caller's
// perspective. Reads hand out deep-copied snapshots, so callers never alias
// internal state.
type Store struct {
	mu    sync.RWMutex
	state models.AppState

	clock   func() time.Time
	newID   func() string
	persist PersistFunc
	logger  *zap.Logger

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithState seeds the store with previously persisted state.
func WithState(state models.AppState) Option {
	return func(s *Store) { s.state = state }
}

// WithPersist installs the post-mutation persistence hook.
func WithPersist(fn PersistFunc) Option {
	return func(s *Store) { s.persist = fn }
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIDGenerator overrides entity id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a Store over the initial default state, then applies options.
func New(opts ...Option) *Store {
	s := &Store{
		state:  models.NewAppState(),
		clock:  func() time.Time { return time.Now().UTC() },
		newID:  utils.GenerateID,
		logger: zap.NewNop(),
		subs:   map[int]Subscriber{},
	}
	for _, opt := range opts {
		opt(s)
	}
	// A persisted document may carry explicit nulls for collections;
	// operations assume they exist.
	if s.state.Users == nil {
		s.state.Users = []models.User{}
	}
	if s.state.Boards == nil {
		s.state.Boards = []models.Board{}
	}
	if s.state.Tasks == nil {
		s.state.Tasks = []models.Task{}
	}
	if s.state.BoardFilters == nil {
		s.state.BoardFilters = map[string]models.BoardFilter{}
	}
	if s.state.ViewMode == "" {
		s.state.ViewMode = models.ViewModeOverseer
	}
	return s
}

// Subscribe registers a listener that is invoked with a snapshot after every
// committed mutation. Listeners run synchronously on the mutating goroutine
// while the write lock is held, so they must work off the snapshot they are
// given rather than calling back into the store. The returned function
// removes the listener.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// commit persists and publishes the state after a successful mutation. It is
// called with the write lock held so snapshots are delivered in commit order.
func (s *Store) commit() {
	snapshot := s.state.Clone()
	if s.persist != nil {
		if err := s.persist(snapshot); err != nil {
			s.logger.Error("failed to persist state", zap.Error(err))
		}
	}
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(snapshot)
	}
}

// Snapshot returns a deep copy of the entire state tree.
func (s *Store) Snapshot() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}
