package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/navigation"
	"github.com/abhisek/learnpath/internal/router"
)

func TestEmailSources(t *testing.T) {
	tr := i18n.New(language.English)
	tests := []struct {
		name string
		loc  router.Location
		want string
	}{
		{"state", router.At("/verify").WithState(navigation.RegisteredState{Email: "a@b.c"}), "We sent a verification link to a@b.c."},
		{"string state", router.At("/verify").WithState("s@t.u"), "We sent a verification link to s@t.u."},
		{"query", router.ParseLocation("/verify?email=q%40r.s"), "We sent a verification link to q@r.s."},
		{"fallback", router.At("/verify"), "Check your inbox."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tr, tt.loc)
			assert.Contains(t, v.View(100, 20), tt.want)
		})
	}
}
