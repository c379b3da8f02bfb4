package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/screen"
)

// DefaultOrigin prefixes paths when rendering the current URL.
const DefaultOrigin = "http://localhost:9091"

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to swap the top screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// NavigateMsg requests navigation to a location through the route table.
// Reset clears the history so Esc cannot return to earlier pages.
type NavigateMsg struct {
	To    Location
	Reset bool
}

// OpenAddressBarMsg asks the shell to open the address bar.
type OpenAddressBarMsg struct {
	Prefill string
}

// NavigateTo returns a command that navigates to loc.
func NavigateTo(loc Location) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: loc} }
}

// ResetTo returns a command that navigates to loc and drops the history.
func ResetTo(loc Location) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: loc, Reset: true} }
}

type entry struct {
	screen screen.Screen
	loc    Location
}

// Router manages a stack of screens.
type Router struct {
	stack  []entry
	routes *Table
	authed func() bool
	origin string
}

// Option configures a Router.
type Option func(*Router)

// WithAuth sets the check used for protected routes.
func WithAuth(authed func() bool) Option {
	return func(r *Router) { r.authed = authed }
}

// WithOrigin sets the scheme and host used by URL.
func WithOrigin(origin string) Option {
	return func(r *Router) { r.origin = origin }
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen, opts ...Option) *Router {
	r := newRouter(opts)
	r.stack = []entry{{screen: initial, loc: At("/")}}
	return r
}

// NewAt creates a Router whose first screen is resolved from loc.
func NewAt(routes *Table, loc Location, opts ...Option) *Router {
	r := newRouter(opts)
	r.routes = routes
	s, landed := routes.Resolve(loc, r.authed())
	r.stack = []entry{{screen: s, loc: landed}}
	return r
}

func newRouter(opts []Option) *Router {
	r := &Router{
		authed: func() bool { return false },
		origin: DefaultOrigin,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, entry{screen: s, loc: r.Location()})
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the top screen for s, keeping the stack depth.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = []entry{{screen: s, loc: At("/")}}
		return s.Init()
	}
	r.stack[len(r.stack)-1].screen = s
	return s.Init()
}

// Navigate resolves loc and pushes the resulting screen. With reset the
// stack is replaced instead.
func (r *Router) Navigate(loc Location, reset bool) tea.Cmd {
	if r.routes == nil {
		return nil
	}
	s, landed := r.routes.Resolve(loc, r.authed())
	e := entry{screen: s, loc: landed}
	if reset {
		r.stack = []entry{e}
	} else {
		r.stack = append(r.stack, e)
	}
	return s.Init()
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1].screen
}

// Location returns where the active screen lives.
func (r *Router) Location() Location {
	if len(r.stack) == 0 {
		return At("/")
	}
	return r.stack[len(r.stack)-1].loc
}

// URL renders the active location as an absolute URL.
func (r *Router) URL() string {
	return r.origin + r.Location().String()
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case NavigateMsg:
		return r.Navigate(msg.To, msg.Reset)
	case screen.Addressed:
		return r.deliver(msg.Target(), msg)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1].screen = updated
	return cmd
}

// deliver hands msg to the mounted screen with id. Messages for screens
// that have left the stack are dropped.
func (r *Router) deliver(id screen.ViewID, msg tea.Msg) tea.Cmd {
	for i := len(r.stack) - 1; i >= 0; i-- {
		s, ok := r.stack[i].screen.(screen.Identified)
		if !ok || s.ViewID() != id {
			continue
		}
		updated, cmd := r.stack[i].screen.Update(msg)
		r.stack[i].screen = updated
		return cmd
	}
	return nil
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
