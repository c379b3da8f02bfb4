package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationInput is the registration form payload.
type RegistrationInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ServerError is the error payload returned by the backend. It is surfaced
// to the user as text and not interpreted any further.
type ServerError struct {
	Type          string `json:"type,omitempty"`
	ServerErrorID ErrorID `json:"server_error_id,omitempty"`
	Stack         string `json:"stack,omitempty"`
	Message       string `json:"message"`
	StatusCode    int    `json:"status_code,omitempty"`
	URL           string `json:"url,omitempty"`
}

func (e *ServerError) Error() string {
	return e.Message
}

// ErrorID is the backend's error identifier. Some backends send it as a
// number, so both JSON strings and numbers decode into its text form.
type ErrorID string

func (id *ErrorID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ErrorID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("server_error_id: %w", err)
	}
	*id = ErrorID(n.String())
	return nil
}

// FailureKind records where a failed call broke down. It exists for the
// request log; UI code treats every failure the same way.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTransport
	FailureApplication
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureApplication:
		return "application"
	default:
		return "none"
	}
}

// Outcome is the normalized result of an API call. Exactly one of Data
// (on success) or Err (on failure) is meaningful.
type Outcome struct {
	// Status is the HTTP status code, or 0 when no response arrived.
	Status int

	// Data is the raw success body. May be empty.
	Data json.RawMessage

	// Err is set for every failure, transport or application.
	Err *ServerError

	Kind FailureKind
}

// OK reports whether the call succeeded with a 2xx response.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Status >= 200 && o.Status < 300
}

// Created reports whether the backend answered 201 Created.
func (o Outcome) Created() bool {
	return o.OK() && o.Status == http.StatusCreated
}

// ErrorMessage returns the user-facing error text, or "" on success.
func (o Outcome) ErrorMessage() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Message
}

// Decode unmarshals the success body into v.
func (o Outcome) Decode(v any) error {
	if len(o.Data) == 0 {
		return nil
	}
	return json.Unmarshal(o.Data, v)
}

// Success builds a successful Outcome. Mostly useful in tests and mocks.
func Success(status int, data json.RawMessage) Outcome {
	return Outcome{Status: status, Data: data}
}

// Failure builds a failed application Outcome with the given message.
func Failure(status int, message string) Outcome {
	return Outcome{
		Status: status,
		Err:    &ServerError{Message: message, StatusCode: status},
		Kind:   FailureApplication,
	}
}
