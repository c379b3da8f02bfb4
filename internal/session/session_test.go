package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/learnpath/internal/api"
)

var _ api.TokenSource = (*Session)(nil)

func TestBeginAndClear(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := New()
	s.now = func() time.Time { return fixed }

	assert.False(t, s.Active())
	assert.Empty(t, s.Token())

	s.Begin("cypresstest@gmail.com", "tok")
	assert.True(t, s.Active())
	assert.Equal(t, "cypresstest@gmail.com", s.Email())
	assert.Equal(t, "tok", s.Token())
	assert.Equal(t, fixed, s.StartedAt())

	s.Clear()
	assert.False(t, s.Active())
	assert.Empty(t, s.Email())
	assert.Empty(t, s.Token())
	assert.True(t, s.StartedAt().IsZero())
}

func TestCookieOnlySessionIsActive(t *testing.T) {
	s := New()
	s.Begin("a@b.c", "")
	assert.True(t, s.Active())
	assert.Empty(t, s.Token())
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Begin("a@b.c", "tok")
		}()
		go func() {
			defer wg.Done()
			_ = s.Token()
			_ = s.Active()
		}()
	}
	wg.Wait()
	assert.True(t, s.Active())
}
