package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/obision/example-go/internal/app"
	"github.com/obision/example-go/internal/app/about"
	"github.com/obision/example-go/internal/app/logui"
	"github.com/obision/example-go/internal/app/theme"
	"github.com/obision/example-go/internal/app/window"
	"github.com/obision/example-go/internal/config"
	"github.com/obision/example-go/internal/config/kvstate"
	"github.com/obision/example-go/internal/gtkutil/cssutil"
	"github.com/obision/example-go/internal/locale"
	"github.com/obision/example-go/internal/shell"
	"github.com/pkg/errors"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
)

func main() {
	glib.LogUseDefaultLogger()

	// Quit the application on a SIGINT.
	sigctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a := app.New(config.AppID)

	ctx := app.WithApplication(sigctx, a)
	ctx = locale.WithLocalPrinter(ctx)

	state := kvstate.NewConfigState("theme.json")
	state.OnSaveError(func(err error) {
		app.Error(ctx, errors.Wrap(err, "cannot save theme"))
	})

	pref := theme.NewPreference(state)

	a.Connect("startup", func() { startup(ctx, a, pref) })
	a.ConnectShutdown(func() {
		// Pending asynchronous saves are dropped once the main loop stops.
		if err := state.SaveSync(); err != nil {
			log.Println("cannot save theme on exit:", err)
		}
	})

	s := shell.New(a, func(s *shell.Shell) shell.Window {
		return window.New(ctx, s, pref)
	})

	go func() {
		<-sigctx.Done()
		// Quit with high priority.
		glib.IdleAddPriority(coreglib.PriorityHigh, func() { a.Quit() })
	}()

	if code := s.Run(os.Args); code != 0 {
		log.Println("exit status", code)
		os.Exit(code)
	}
}

// startup runs once per process before the first activation.
func startup(ctx context.Context, a *app.Application, pref *theme.Preference) {
	adw.Init()
	logui.Capture()
	cssutil.ApplyGlobalCSS()

	if err := locale.BundledError(); err != nil {
		a.Error(err)
	}

	pref.Subscribe(theme.Apply)

	a.AddCallbackAction("about", func() { about.Show(ctx) })
	a.AddCallbackAction("logs", func() { logui.Show(ctx) }, "<Control>l")
	a.AddCallbackAction("quit", func() { a.Quit() }, "<Control>q")
}
