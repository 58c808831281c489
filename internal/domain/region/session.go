package region

import (
	"errors"
	"fmt"
	"sync"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

var (
	// ErrAlreadyResolved is returned when a resolved session is bound to another region
	ErrAlreadyResolved = errors.New("region: session already resolved")
	// ErrUnresolved is returned when a router is requested before resolution
	ErrUnresolved = errors.New("region: session not resolved")
)

// Session is a navigation context's one-shot region binding: it moves from
// Unresolved to Resolved exactly once and stays there.
type Session struct {
	mu     sync.Mutex
	state  State
	region domain.Region
}

// NewSession returns an unresolved session
func NewSession() *Session {
	return &Session{}
}

// Bind resolves the session to region. Binding again to the same region is a no-op.
func (s *Session) Bind(region domain.Region) error {
	r, ok := domain.ParseRegion(string(region))
	if !ok {
		return fmt.Errorf("region: bind unsupported region %q", region)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Resolved {
		if s.region == r {
			return nil
		}
		return fmt.Errorf("%w: bound to %s, not %s", ErrAlreadyResolved, s.region, r)
	}
	s.state, s.region = Resolved, r
	return nil
}

// State reports the session state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Region returns the bound region and whether the session is resolved
func (s *Session) Region() (domain.Region, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region, s.state == Resolved
}

// Router returns a Router for the bound region
func (s *Session) Router() (Router, error) {
	r, ok := s.Region()
	if !ok {
		return Router{}, ErrUnresolved
	}
	return NewRouter(r), nil
}
