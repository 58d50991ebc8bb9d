package adminclient

import (
	"context"
	"errors"
	"sync"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/policy"
)

// GuardState is the dashboard's view of the current route check.
type GuardState string

const (
	StateUnchecked       GuardState = "unchecked"
	StateChecking        GuardState = "checking"
	StateAuthenticated   GuardState = "authenticated"
	StateUnauthenticated GuardState = "unauthenticated"
	StateDenied          GuardState = "denied"
	// StateError means the check itself failed (transport error or a 5xx
	// from the server). The session may still be live; callers retry with
	// backoff instead of redirecting to login.
	StateError GuardState = "error"
)

// RouteRequirement describes what a dashboard route needs: a role floor
// and, for nursery-scoped pages, the nursery being viewed.
type RouteRequirement struct {
	Role      domain.Role
	NurseryID *int
}

// RouteGuard gates dashboard navigation. Every navigation calls Check;
// checks run concurrently and only the most recent one may publish its
// result, so a slow response for a page the user already left can never
// overwrite the state of the page they are on.
//
// The guard is advisory. The server re-evaluates the same policy on every
// request, so a stale or spoofed client check exposes nothing.
type RouteGuard struct {
	client *Client

	mu         sync.Mutex
	state      GuardState
	principal  *domain.Principal
	generation uint64
	onChange   func(GuardState)
}

// NewRouteGuard builds a guard in the Unchecked state. onChange, if
// non-nil, is invoked (with the guard unlocked) whenever the published
// state changes.
func NewRouteGuard(client *Client, onChange func(GuardState)) *RouteGuard {
	return &RouteGuard{
		client:   client,
		state:    StateUnchecked,
		onChange: onChange,
	}
}

// State returns the current published state.
func (g *RouteGuard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Principal returns the principal from the last successful check, or nil.
func (g *RouteGuard) Principal() *domain.Principal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.principal
}

// Check verifies the session against req and publishes the outcome. If a
// newer Check starts while this one is in flight, this one's result is
// discarded and the state it would have set never appears.
func (g *RouteGuard) Check(ctx context.Context, req RouteRequirement) GuardState {
	g.mu.Lock()
	g.generation++
	gen := g.generation
	g.state = StateChecking
	g.mu.Unlock()
	g.notify(StateChecking)

	principal, err := g.client.Me(ctx)

	var next GuardState
	switch {
	case errors.Is(err, ErrUnauthenticated):
		principal = nil
		next = StateUnauthenticated
	case err != nil:
		// The check failed, not the session. Publishing Unauthenticated
		// here would bounce a possibly logged-in user to the login page.
		g.mu.Lock()
		principal = g.principal
		g.mu.Unlock()
		next = StateError
	default:
		decision := policy.Decide(principal, req.Role, req.NurseryID)
		if decision.Allowed {
			next = StateAuthenticated
		} else if decision.Reason == policy.ReasonUnauthenticated {
			next = StateUnauthenticated
		} else {
			next = StateDenied
		}
	}

	g.mu.Lock()
	if gen != g.generation {
		// A later navigation superseded this check; its result wins.
		state := g.state
		g.mu.Unlock()
		return state
	}
	g.state = next
	g.principal = principal
	g.mu.Unlock()

	g.notify(next)
	return next
}

// Reset returns the guard to Unchecked, dropping any in-flight check.
func (g *RouteGuard) Reset() {
	g.mu.Lock()
	g.generation++
	g.state = StateUnchecked
	g.principal = nil
	g.mu.Unlock()
	g.notify(StateUnchecked)
}

func (g *RouteGuard) notify(state GuardState) {
	if g.onChange != nil {
		g.onChange(state)
	}
}
