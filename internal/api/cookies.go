package api

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
)

// CookieResetter is implemented by clients that hold backend session
// cookies. Logout calls it so a cookie-authenticated backend session cannot
// outlive the local one.
type CookieResetter interface {
	ResetCookies()
}

// sessionJar is a cookie jar that can be emptied while requests are in
// flight.
type sessionJar struct {
	mu  sync.RWMutex
	jar *cookiejar.Jar
}

var _ http.CookieJar = (*sessionJar)(nil)

func newSessionJar() (*sessionJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &sessionJar{jar: jar}, nil
}

func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	j.jar.SetCookies(u, cookies)
}

func (j *sessionJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.jar.Cookies(u)
}

// reset drops every stored cookie.
func (j *sessionJar) reset() {
	fresh, _ := cookiejar.New(nil)
	j.mu.Lock()
	j.jar = fresh
	j.mu.Unlock()
}
