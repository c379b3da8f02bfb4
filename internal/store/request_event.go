package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// requestEventRepo implements RequestEventRepo on top of sqlx.
type requestEventRepo struct {
	db *sqlx.DB
}

func (r *requestEventRepo) AppendRequest(ctx context.Context, data RequestEventData) error {
	if data.FailureKind == "" {
		data.FailureKind = "none"
	}

	_, err := r.db.ExecContext(ctx, `INSERT INTO request_events
		(timestamp, request_id, operation, method, path, status, latency_ms, success, failure_kind, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(),
		data.RequestID,
		data.Operation,
		data.Method,
		data.Path,
		data.Status,
		data.LatencyMs,
		data.Success,
		data.FailureKind,
		data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save request event: %w", err)
	}
	return nil
}

func (r *requestEventRepo) QueryRequests(ctx context.Context, opts QueryOpts) ([]RequestEvent, error) {
	var (
		where []string
		args  []any
	)
	if opts.Operation != "" {
		where = append(where, "operation = ?")
		args = append(args, opts.Operation)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UTC())
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UTC())
	}

	q := "SELECT * FROM request_events"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	var events []RequestEvent
	if err := r.db.SelectContext(ctx, &events, q, args...); err != nil {
		return nil, fmt.Errorf("query request events: %w", err)
	}
	return events, nil
}

func (r *requestEventRepo) UsageByOperation(ctx context.Context) ([]OperationUsage, error) {
	var usage []OperationUsage
	err := r.db.SelectContext(ctx, &usage, `SELECT
			operation,
			COUNT(*) AS calls,
			SUM(CASE WHEN success THEN 0 ELSE 1 END) AS failures,
			CAST(AVG(latency_ms) AS INTEGER) AS avg_latency_ms
		FROM request_events
		GROUP BY operation
		ORDER BY calls DESC, operation`)
	if err != nil {
		return nil, fmt.Errorf("aggregate request events: %w", err)
	}
	return usage, nil
}
