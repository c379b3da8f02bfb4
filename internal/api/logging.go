package api

import (
	"context"
	"log"
	"time"

	"github.com/abhisek/learnpath/internal/store"
)

// LoggingClient is a decorator that records every API call as an event.
type LoggingClient struct {
	inner     Client
	eventRepo store.RequestEventRepo
}

var _ CookieResetter = (*LoggingClient)(nil)

// WithLogging wraps a Client with event logging.
func WithLogging(c Client, repo store.RequestEventRepo) Client {
	return &LoggingClient{inner: c, eventRepo: repo}
}

func (l *LoggingClient) Post(ctx context.Context, path string, body any) Outcome {
	requestID := RequestIDFrom(ctx)
	ctx = WithRequestID(ctx, requestID)

	start := time.Now()
	out := l.inner.Post(ctx, path, body)

	data := store.RequestEventData{
		RequestID:    requestID,
		Operation:    OperationFrom(ctx),
		Method:       "POST",
		Path:         path,
		Status:       out.Status,
		LatencyMs:    time.Since(start).Milliseconds(),
		Success:      out.OK(),
		FailureKind:  out.Kind.String(),
		ErrorMessage: out.ErrorMessage(),
	}

	// Log the event but don't fail the request if logging fails.
	if err := l.eventRepo.AppendRequest(ctx, data); err != nil {
		log.Printf("warning: failed to log %s request event: %v", data.Operation, err)
	}
	if !out.OK() {
		log.Printf("%s %s: %s (%s)", data.Operation, path, out.ErrorMessage(), statusText(out.Status))
	}

	return out
}

// ResetCookies forwards to the wrapped client when it holds cookies.
func (l *LoggingClient) ResetCookies() {
	if r, ok := l.inner.(CookieResetter); ok {
		r.ResetCookies()
	}
}
