package app

import (
	"golang.org/x/text/language"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/screens/landing"
	"github.com/abhisek/learnpath/internal/screens/login"
	"github.com/abhisek/learnpath/internal/screens/node"
	"github.com/abhisek/learnpath/internal/screens/notfound"
	"github.com/abhisek/learnpath/internal/screens/register"
	"github.com/abhisek/learnpath/internal/screens/verify"
	"github.com/abhisek/learnpath/internal/screens/welcome"
	"github.com/abhisek/learnpath/internal/session"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Service    *api.Service
	Session    *session.Session
	Translator *i18n.Translator

	// Start is the first page shown. Defaults to "/".
	Start router.Location

	// Origin prefixes paths in the address bar.
	Origin string
}

func (o Options) withDefaults() Options {
	if o.Session == nil {
		o.Session = session.New()
	}
	if o.Translator == nil {
		o.Translator = i18n.New(language.English)
	}
	if o.Start.Path == "" {
		o.Start = router.At("/")
	}
	if o.Origin == "" {
		o.Origin = router.DefaultOrigin
	}
	return o
}

// routes registers every page. Order matters: the node route's single
// segment pattern would otherwise shadow the fixed pages.
func routes(o Options) *router.Table {
	tr, svc, sess := o.Translator, o.Service, o.Session

	t := router.NewTable(func(req router.Request) screen.Screen {
		return notfound.New(tr, req.Location)
	})
	t.Handle("/", func(router.Request) screen.Screen {
		return landing.New(tr)
	})
	t.Handle("/login", func(req router.Request) screen.Screen {
		return login.New(svc, sess, tr, req.Location.State)
	})
	t.Handle("/register", func(router.Request) screen.Screen {
		return register.New(svc, tr)
	})
	t.Handle("/verify", func(req router.Request) screen.Screen {
		return verify.New(tr, req.Location)
	})
	t.Handle("/welcome", func(router.Request) screen.Screen {
		return welcome.New(svc, sess, tr)
	}, router.Protected())
	t.Handle("/{environmentType}", func(req router.Request) screen.Screen {
		return node.New(svc, tr, req)
	}, router.Protected(), router.When(router.HasQuery("node_id")))
	return t
}
