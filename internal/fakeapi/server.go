// Package fakeapi is a small stand-in for the learning platform backend.
// It serves the user and progress endpoints the terminal client calls and
// keeps all state in memory.
package fakeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/abhisek/learnpath/internal/api"
)

const sessionCookie = "learnpath_session"

// Server is the stand-in backend.
type Server struct {
	cfg       Config
	endpoints api.Endpoints
	users     *userStore

	mu    sync.Mutex
	known map[string]map[string]bool // email -> node ids
}

// NewServer creates a server with the seeded account registered.
func NewServer(cfg Config, endpoints api.Endpoints) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{
		cfg:       cfg,
		endpoints: endpoints,
		users:     newUserStore(cfg.BcryptCost),
		known:     make(map[string]map[string]bool),
	}
	_, err := s.users.create(api.RegistrationInput{
		FirstName: "Cypress",
		LastName:  "Test",
		Username:  SeedUsername,
		Email:     SeedEmail,
		Password:  SeedPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return s, nil
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if s.cfg.Verbose {
		r.Use(middleware.Logger)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post(s.endpoints.Login, s.handleLogin)
	r.Post(s.endpoints.Logout, s.handleLogout)
	r.Post(s.endpoints.Register, s.handleRegister)
	r.With(s.authMiddleware).Post(s.endpoints.MarkKnown, s.handleMarkKnown)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not_found", "resource not found")
	})
	return r
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("fakeapi listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type userSummary struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userSummary `json:"user"`
}

func summarize(u *user) userSummary {
	return userSummary{Email: u.Email, Username: u.Username, FirstName: u.FirstName, LastName: u.LastName}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.Credentials
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	u, err := s.users.authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "invalid_credentials", err.Error())
		return
	}

	token, err := newAccessToken(s.cfg, u)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "server_error", "could not issue token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.cfg.TokenTTL),
	})
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: summarize(u)})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegistrationInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	if field := firstMissing(req); field != "" {
		writeError(w, r, http.StatusBadRequest, "validation_error", field+" is required")
		return
	}

	u, err := s.users.create(req)
	switch {
	case errors.Is(err, errEmailTaken), errors.Is(err, errUsernameTaken):
		writeError(w, r, http.StatusConflict, "conflict", err.Error())
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "server_error", "could not create account")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": summarize(u)})
}

func firstMissing(in api.RegistrationInput) string {
	fields := []struct{ name, value string }{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"username", in.Username},
		{"email", in.Email},
		{"password", in.Password},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}

type markKnownRequest struct {
	NodeID string `json:"nodeId"`
}

type markKnownResponse struct {
	NodeID   string `json:"nodeId"`
	Finished bool   `json:"finished"`
}

func (s *Server) handleMarkKnown(w http.ResponseWriter, r *http.Request) {
	var req markKnownRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.NodeID) == "" {
		writeError(w, r, http.StatusBadRequest, "validation_error", "nodeId is required")
		return
	}

	c := claimsFromContext(r.Context())
	s.mu.Lock()
	nodes := s.known[c.Email]
	if nodes == nil {
		nodes = make(map[string]bool)
		s.known[c.Email] = nodes
	}
	nodes[req.NodeID] = true
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, markKnownResponse{NodeID: req.NodeID, Finished: true})
}

// KnownNodes returns the node ids email has marked as known.
func (s *Server) KnownNodes(email string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id := range s.known[normalizeEmail(email)] {
		ids = append(ids, id)
	}
	return ids
}

type claimsKey struct{}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			if ck, err := r.Cookie(sessionCookie); err == nil {
				token = ck.Value
			}
		}
		if token == "" {
			writeError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}

		c, err := parseAccessToken(s.cfg, token)
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, "unauthorized", "invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, c)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFromContext(ctx context.Context) *claims {
	c, _ := ctx.Value(claimsKey{}).(*claims)
	return c
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, typ, message string) {
	writeJSON(w, status, api.ServerError{
		Type:          typ,
		ServerErrorID: api.ErrorID(uuid.NewString()),
		Message:       message,
		StatusCode:    status,
		URL:           r.URL.Path,
	})
}
