package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// GenericErrorMessage is shown when a failure carries no usable message.
const GenericErrorMessage = "Something went wrong. Please try again."

// ErrTransport indicates the request never produced an HTTP response.
type ErrTransport struct {
	URL string
	Err error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrApplication indicates a non-2xx response.
type ErrApplication struct {
	Status int
	URL    string
	Body   json.RawMessage
}

func (e *ErrApplication) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.Status, e.URL)
}

// normalize folds either error class into the single failure shape that
// callers see.
func normalize(err error) Outcome {
	var app *ErrApplication
	if errors.As(err, &app) {
		return Outcome{
			Status: app.Status,
			Err:    decodeServerError(app.Status, app.URL, app.Body),
			Kind:   FailureApplication,
		}
	}

	se := &ServerError{Message: GenericErrorMessage}
	var tr *ErrTransport
	if errors.As(err, &tr) {
		se.URL = tr.URL
	}
	return Outcome{Err: se, Kind: FailureTransport}
}

// decodeServerError builds a ServerError from a response body, falling back
// to the generic message when the body is not a valid error payload.
func decodeServerError(status int, url string, body json.RawMessage) *ServerError {
	se := &ServerError{}
	if err := validateErrorPayload(body); err != nil || json.Unmarshal(body, se) != nil {
		se = &ServerError{Message: GenericErrorMessage}
	}
	if se.StatusCode == 0 {
		se.StatusCode = status
	}
	if se.URL == "" {
		se.URL = url
	}
	return se
}
