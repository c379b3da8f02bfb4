package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	Operation string    // exact match when set
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
}

// RequestEventData captures a single API call.
type RequestEventData struct {
	RequestID    string
	Operation    string
	Method       string
	Path         string
	Status       int
	LatencyMs    int64
	Success      bool
	FailureKind  string
	ErrorMessage string
}

// RequestEvent is a stored API call.
type RequestEvent struct {
	ID           int64     `db:"id"`
	Timestamp    time.Time `db:"timestamp"`
	RequestID    string    `db:"request_id"`
	Operation    string    `db:"operation"`
	Method       string    `db:"method"`
	Path         string    `db:"path"`
	Status       int       `db:"status"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	FailureKind  string    `db:"failure_kind"`
	ErrorMessage string    `db:"error_message"`
}

// OperationUsage aggregates request events for one operation.
type OperationUsage struct {
	Operation    string `db:"operation"`
	Calls        int    `db:"calls"`
	Failures     int    `db:"failures"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// RequestEventRepo provides append and query access to API call events.
type RequestEventRepo interface {
	// AppendRequest records an API call event.
	AppendRequest(ctx context.Context, data RequestEventData) error

	// QueryRequests returns events, newest first.
	QueryRequests(ctx context.Context, opts QueryOpts) ([]RequestEvent, error)

	// UsageByOperation aggregates events per operation.
	UsageByOperation(ctx context.Context) ([]OperationUsage, error)
}
