package api

import (
	"context"
	"sync"
)

// MockCall records a single Post made against a MockClient.
type MockCall struct {
	Operation string
	Path      string
	Body      any
}

// MockClient is a deterministic Client for testing.
// It returns canned outcomes in FIFO order and records all calls.
type MockClient struct {
	mu       sync.Mutex
	outcomes []Outcome
	Calls    []MockCall
	resets   int
}

var (
	_ Client         = (*MockClient)(nil)
	_ CookieResetter = (*MockClient)(nil)
)

// NewMockClient creates a MockClient with the given canned outcomes.
func NewMockClient(outcomes ...Outcome) *MockClient {
	return &MockClient{outcomes: outcomes}
}

// Post returns the next canned outcome, or a transport failure when the
// queue is empty.
func (m *MockClient) Post(ctx context.Context, path string, body any) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Operation: OperationFrom(ctx), Path: path, Body: body})

	if len(m.outcomes) == 0 {
		return Outcome{Err: &ServerError{Message: GenericErrorMessage}, Kind: FailureTransport}
	}

	out := m.outcomes[0]
	m.outcomes = m.outcomes[1:]
	return out
}

// AddOutcome appends a canned outcome to the queue.
func (m *MockClient) AddOutcome(out Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, out)
}

// CallCount returns the number of Post calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// ResetCookies counts cookie resets.
func (m *MockClient) ResetCookies() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
}

// ResetCount returns how many times ResetCookies was called.
func (m *MockClient) ResetCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets
}
