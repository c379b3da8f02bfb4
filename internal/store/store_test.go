package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.RequestEventRepo()
	ctx := context.Background()

	events, err := repo.QueryRequests(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, events)

	require.NoError(t, repo.AppendRequest(ctx, RequestEventData{
		RequestID:    "r1",
		Operation:    "login",
		Method:       "POST",
		Path:         "/api/v1/users/login",
		Status:       401,
		LatencyMs:    12,
		Success:      false,
		FailureKind:  "application",
		ErrorMessage: "incorrect Username or Password",
	}))
	require.NoError(t, repo.AppendRequest(ctx, RequestEventData{
		RequestID: "r2",
		Operation: "login",
		Method:    "POST",
		Path:      "/api/v1/users/login",
		Status:    200,
		LatencyMs: 8,
		Success:   true,
	}))
	require.NoError(t, repo.AppendRequest(ctx, RequestEventData{
		RequestID: "r3",
		Operation: "logout",
		Method:    "POST",
		Path:      "/api/v1/users/logout",
		Status:    200,
		Success:   true,
	}))

	all, err := repo.QueryRequests(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "r3", all[0].RequestID, "newest first")
	assert.Equal(t, "none", all[0].FailureKind)

	logins, err := repo.QueryRequests(ctx, QueryOpts{Operation: "login", Limit: 1})
	require.NoError(t, err)
	require.Len(t, logins, 1)
	assert.Equal(t, "r2", logins[0].RequestID)
	assert.True(t, logins[0].Success)
	assert.WithinDuration(t, time.Now(), logins[0].Timestamp, time.Minute)

	future, err := repo.QueryRequests(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestUsageByOperation(t *testing.T) {
	s := openTestStore(t)
	repo := s.RequestEventRepo()
	ctx := context.Background()

	for _, ok := range []bool{true, false, false} {
		require.NoError(t, repo.AppendRequest(ctx, RequestEventData{
			RequestID: "x", Operation: "register", Method: "POST", Path: "/r", Success: ok, LatencyMs: 10,
		}))
	}
	require.NoError(t, repo.AppendRequest(ctx, RequestEventData{
		RequestID: "y", Operation: "logout", Method: "POST", Path: "/l", Success: true, LatencyMs: 4,
	}))

	usage, err := repo.UsageByOperation(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 2)
	assert.Equal(t, OperationUsage{Operation: "register", Calls: 3, Failures: 2, AvgLatencyMs: 10}, usage[0])
	assert.Equal(t, "logout", usage[1].Operation)
}

func TestDefaultDBPathFromEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "lp.db")
	t.Setenv("LEARNPATH_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}
