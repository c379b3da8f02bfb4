package router

import (
	"net/url"
	"path"
	"strings"
)

// Location is a route target. State is transient data handed to the next
// page; it never appears in the URL and does not survive a restart.
type Location struct {
	Path  string
	Query url.Values
	State any

	invalid bool
}

// ParseLocation turns an address such as "/login", "/lab?node_id=3" or a
// full URL into a Location. Input that cannot be parsed yields a Location
// that only the not-found route matches.
func ParseLocation(raw string) Location {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Location{Path: raw, invalid: true}
	}
	return Location{Path: cleanPath(u.Path), Query: u.Query()}
}

// At is shorthand for a Location with only a path.
func At(p string) Location {
	return Location{Path: cleanPath(p)}
}

// WithState returns a copy of l carrying state.
func (l Location) WithState(state any) Location {
	l.State = state
	return l
}

// Param returns the first value of a query parameter.
func (l Location) Param(key string) string {
	return l.Query.Get(key)
}

// String renders the path and query, without state.
func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

func cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func segments(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
