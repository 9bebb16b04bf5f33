package app

import (
	"context"
	"log"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/obision/example-go/internal/components/errpopup"
	"github.com/obision/example-go/internal/gtkutil"
)

// Application wraps a GTK application so that it can be driven by the
// application shell.
type Application struct {
	*gtk.Application
}

type ctxKey uint

const (
	applicationKey ctxKey = iota
)

// New creates a new GTK application with the given ID and no special flags.
func New(id string) *Application {
	return Wrap(gtk.NewApplication(id, gio.ApplicationFlagsNone))
}

// Wrap wraps a GTK application.
func Wrap(gtkapp *gtk.Application) *Application {
	return &Application{Application: gtkapp}
}

// WithApplication injects the given application instance into a context. The
// returned context will also be cancelled if the application shuts down.
func WithApplication(ctx context.Context, app *Application) context.Context {
	ctx = context.WithValue(ctx, applicationKey, app)

	ctx, cancel := context.WithCancel(ctx)
	app.Connect("shutdown", cancel)

	return ctx
}

// FromContext pulls the application from the given context. If the given
// context isn't derived from Application, then nil is returned.
func FromContext(ctx context.Context) *Application {
	app, _ := ctx.Value(applicationKey).(*Application)
	return app
}

// GTKWindowFromContext returns the active window of the application inside
// the context, or nil if there is none.
func GTKWindowFromContext(ctx context.Context) *gtk.Window {
	app := FromContext(ctx)
	if app == nil {
		return nil
	}
	return app.ActiveWindow()
}

// OnActivate binds f to the application's activate signal.
func (app *Application) OnActivate(f func()) {
	app.Connect("activate", f)
}

// Error calls Error on the application inside the context. It panics if the
// context does not have the application.
func Error(ctx context.Context, err ...error) {
	FromContext(ctx).Error(err...)
}

// Error logs the errors and shows them in a popup. It may be called from any
// goroutine.
func (app *Application) Error(err ...error) {
	errs := filterAndLogErrors("error:", err)
	if len(errs) == 0 {
		return
	}
	errpopup.Show(app.Application, errs)
}

func filterAndLogErrors(prefix string, errors []error) []error {
	nonNils := errors[:0]

	for _, err := range errors {
		if err == nil {
			continue
		}
		nonNils = append(nonNils, err)
		log.Println(prefix, err)
	}

	return nonNils
}

// AddCallbackAction is a convenient function for adding a SimpleAction. The
// given accelerators are bound to the action, if any.
func (app *Application) AddCallbackAction(name string, f func(), accels ...string) {
	app.AddAction(gtkutil.ActionFunc(name, f))

	if len(accels) > 0 {
		app.SetAccelsForAction("app."+name, accels)
	}
}
