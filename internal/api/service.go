package api

import (
	"context"
	"net/http"
)

// Operation labels used for request logging.
const (
	OpLogin     = "login"
	OpLogout    = "logout"
	OpRegister  = "register"
	OpMarkKnown = "mark-known"
)

// Service exposes the typed backend operations on top of a Client.
type Service struct {
	client    Client
	endpoints Endpoints
}

// NewService creates a Service that sends requests through client.
func NewService(client Client, endpoints Endpoints) *Service {
	return &Service{client: client, endpoints: endpoints}
}

// Login submits credentials.
func (s *Service) Login(ctx context.Context, creds Credentials) Outcome {
	ctx = WithOperation(ctx, OpLogin)
	return s.client.Post(ctx, s.endpoints.Login, creds)
}

// Logout ends the backend session. The caller navigates away regardless
// of the outcome, so stored cookies are dropped even when the call fails.
func (s *Service) Logout(ctx context.Context) Outcome {
	ctx = WithOperation(ctx, OpLogout)
	out := s.client.Post(ctx, s.endpoints.Logout, nil)
	if r, ok := s.client.(CookieResetter); ok {
		r.ResetCookies()
	}
	return out
}

// Register creates an account. The backend answers 201 on success.
func (s *Service) Register(ctx context.Context, in RegistrationInput) Outcome {
	ctx = WithOperation(ctx, OpRegister)
	return s.client.Post(ctx, s.endpoints.Register, in)
}

type markKnownRequest struct {
	NodeID string `json:"nodeId"`
}

// MarkNodeKnown records that the learner already knows a node.
func (s *Service) MarkNodeKnown(ctx context.Context, nodeID string) Outcome {
	ctx = WithOperation(ctx, OpMarkKnown)
	return s.client.Post(ctx, s.endpoints.MarkKnown, markKnownRequest{NodeID: nodeID})
}

// LoginResponse is the part of the login body the client cares about.
type LoginResponse struct {
	Token string `json:"token"`
	User  struct {
		Email    string `json:"email"`
		Username string `json:"username"`
	} `json:"user"`
}

// statusText is used in logs when no response arrived.
func statusText(status int) string {
	if status == 0 {
		return "no response"
	}
	return http.StatusText(status)
}
