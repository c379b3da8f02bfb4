package api

import "context"

type contextKey string

const (
	operationKey contextKey = "api_operation"
	requestIDKey contextKey = "api_request_id"
)

// WithOperation attaches an operation label to the context for event logging.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// OperationFrom extracts the operation label from the context.
func OperationFrom(ctx context.Context) string {
	if v, ok := ctx.Value(operationKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithRequestID pins the X-Request-ID used for calls made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the pinned request id, or a new one.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v
	}
	return newRequestID()
}
