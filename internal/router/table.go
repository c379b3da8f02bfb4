package router

import (
	"strings"

	"github.com/abhisek/learnpath/internal/screen"
)

// LoginPath is where protected routes send visitors without a session.
const LoginPath = "/login"

// Request is what a route factory receives.
type Request struct {
	Location Location

	// Params holds the values captured by {name} segments.
	Params map[string]string
}

// Factory builds the screen for a matched route.
type Factory func(req Request) screen.Screen

type route struct {
	pattern   []string
	factory   Factory
	protected bool
	conds     []func(Location) bool
}

// RouteOption configures a route registered with Handle.
type RouteOption func(*route)

// Protected requires an active session. Visitors without one are sent to
// LoginPath instead.
func Protected() RouteOption {
	return func(r *route) { r.protected = true }
}

// When adds a condition that must hold for the route to match.
func When(cond func(Location) bool) RouteOption {
	return func(r *route) { r.conds = append(r.conds, cond) }
}

// HasQuery matches locations carrying a non-empty query parameter.
func HasQuery(key string) func(Location) bool {
	return func(l Location) bool { return l.Param(key) != "" }
}

// Table maps paths to screens. Routes are tried in registration order and
// the first match wins.
type Table struct {
	routes   []*route
	notFound Factory
}

// NewTable creates a table that falls back to notFound.
func NewTable(notFound Factory) *Table {
	return &Table{notFound: notFound}
}

// Handle registers a route. pattern is an absolute path whose segments are
// either literals or {name} placeholders matching exactly one segment.
func (t *Table) Handle(pattern string, f Factory, opts ...RouteOption) {
	r := &route{pattern: segments(cleanPath(pattern)), factory: f}
	for _, opt := range opts {
		opt(r)
	}
	t.routes = append(t.routes, r)
}

// Resolve picks the screen for loc. The returned Location is where the user
// actually ends up, which differs from loc on a login redirect.
func (t *Table) Resolve(loc Location, authed bool) (screen.Screen, Location) {
	if loc.invalid {
		return t.notFound(Request{Location: loc}), loc
	}

	for _, r := range t.routes {
		params, ok := r.match(loc)
		if !ok {
			continue
		}
		if r.protected && !authed {
			if loc.Path == LoginPath {
				// A protected login route would loop forever.
				break
			}
			return t.Resolve(At(LoginPath), authed)
		}
		return r.factory(Request{Location: loc, Params: params}), loc
	}
	return t.notFound(Request{Location: loc}), loc
}

func (r *route) match(loc Location) (map[string]string, bool) {
	segs := segments(loc.Path)
	if len(segs) != len(r.pattern) {
		return nil, false
	}

	var params map[string]string
	for i, p := range r.pattern {
		if name, ok := placeholder(p); ok {
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}

	for _, cond := range r.conds {
		if !cond(loc) {
			return nil, false
		}
	}
	return params, true
}

func placeholder(seg string) (string, bool) {
	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") && len(seg) > 2 {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}
