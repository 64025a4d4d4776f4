package logic

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSessionTTL is how long a cart may sit idle before Sweep ends it.
const DefaultSessionTTL = 30 * time.Minute

// Sessions maps session ids to their carts.
type Sessions struct {
	mu        sync.Mutex
	carts     map[uuid.UUID]*Cart
	observers []func(Change)
	ttl       time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// Option configures Sessions.
type Option func(*Sessions)

// WithTTL sets the idle timeout. Non-positive values disable sweeping.
func WithTTL(ttl time.Duration) Option {
	return func(s *Sessions) { s.ttl = ttl }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Sessions) { s.now = now }
}

// WithLogger sets the registry logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Sessions) { s.logger = logger }
}

func NewSessions(opts ...Option) *Sessions {
	s := &Sessions{
		carts:  make(map[uuid.UUID]*Cart),
		ttl:    DefaultSessionTTL,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns the session's cart, creating an empty one on first use.
func (s *Sessions) Open(id uuid.UUID) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[id]; ok {
		cart.Touch()
		return cart
	}

	cart := newCart(id, s.now)
	for _, fn := range s.observers {
		cart.Subscribe(fn)
	}
	s.carts[id] = cart
	s.logger.Debug("session opened", zap.String("session", id.String()))
	return cart
}

// Get returns the session's cart if it exists.
func (s *Sessions) Get(id uuid.UUID) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[id]
	return cart, ok
}

// End destroys the session's cart. Subscribers see a CartCleared event if
// the cart had lines.
func (s *Sessions) End(id uuid.UUID) bool {
	s.mu.Lock()
	cart, ok := s.carts[id]
	delete(s.carts, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	cart.clear(ReasonSessionEnded)
	s.logger.Debug("session ended", zap.String("session", id.String()))
	return true
}

// Sweep ends every session idle for longer than the TTL and returns how
// many were ended.
func (s *Sessions) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	var expired []*Cart
	for id, cart := range s.carts {
		if now.Sub(cart.LastSeen()) > s.ttl {
			expired = append(expired, cart)
			delete(s.carts, id)
		}
	}
	s.mu.Unlock()

	for _, cart := range expired {
		cart.clear(ReasonSessionExpired)
	}
	if len(expired) > 0 {
		s.logger.Info("expired idle sessions", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Len is the number of open sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// Subscribe attaches fn to every open cart and every cart opened later.
func (s *Sessions) Subscribe(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
	for _, cart := range s.carts {
		cart.Subscribe(fn)
	}
}

// TTL is the configured idle timeout.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}
