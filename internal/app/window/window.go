// Package window builds the application's main window.
package window

import (
	"context"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/obision/example-go/internal/app"
	"github.com/obision/example-go/internal/app/theme"
	"github.com/obision/example-go/internal/gtkutil"
	"github.com/obision/example-go/internal/gtkutil/cssutil"
	"github.com/obision/example-go/internal/locale"
	"github.com/obision/example-go/internal/shell"
)

var _ = cssutil.WriteCSS(`
	.main-content {
		margin: 24px;
	}

	.main-heading {
		font-size: 1.5em;
		font-weight: 600;
	}

	.main-button {
		min-width: 160px;
	}

	.dark-mode-row {
		margin-top: 12px;
	}
`)

// Window is the main application window.
type Window struct {
	*gtk.ApplicationWindow
	Header *gtk.HeaderBar
	Button *gtk.Button
	Dark   *gtk.Switch
}

// New creates the main window for the application inside ctx. Clicking its
// primary button calls s.ButtonClicked; toggling the dark mode switch updates
// pref.
func New(ctx context.Context, s *shell.Shell, pref *theme.Preference) *Window {
	w := Window{}

	w.ApplicationWindow = gtk.NewApplicationWindow(app.FromContext(ctx).Application)
	w.SetDefaultSize(400, 300)
	w.SetTitle(locale.S(ctx, "Obision Example"))

	menu := gtkutil.NewMenuButton("open-menu-symbolic", locale.S(ctx, "Main Menu"), [][2]string{
		{locale.S(ctx, "_About"), "app.about"},
		{locale.S(ctx, "_Logs"), "app.logs"},
		{locale.S(ctx, "_Quit"), "app.quit"},
	})

	w.Header = gtk.NewHeaderBar()
	w.Header.SetShowTitleButtons(true)
	w.Header.PackEnd(menu)
	w.SetTitlebar(w.Header)

	heading := gtk.NewLabel(locale.S(ctx, "Welcome to the Go example"))
	heading.AddCSSClass("main-heading")
	heading.SetWrap(true)
	heading.SetJustify(gtk.JustifyCenter)

	w.Button = gtk.NewButtonWithLabel(locale.S(ctx, "Click me"))
	w.Button.AddCSSClass("main-button")
	w.Button.AddCSSClass("suggested-action")
	w.Button.AddCSSClass("pill")
	w.Button.SetHAlign(gtk.AlignCenter)
	w.Button.ConnectClicked(func() { s.ButtonClicked(w.Button) })

	darkLabel := gtk.NewLabel(locale.S(ctx, "Dark Mode"))
	darkLabel.SetHExpand(true)
	darkLabel.SetXAlign(0)

	w.Dark = gtk.NewSwitch()
	w.Dark.SetVAlign(gtk.AlignCenter)

	darkRow := gtk.NewBox(gtk.OrientationHorizontal, 12)
	darkRow.AddCSSClass("dark-mode-row")
	darkRow.Append(darkLabel)
	darkRow.Append(w.Dark)

	// syncing is set while the switch is moved to match the current style, so
	// that its handler does not store the result as a new preference.
	var syncing bool
	sync := func() {
		syncing = true
		w.Dark.SetActive(pref.Scheme().IsDark(theme.SystemDark()))
		syncing = false
	}

	// The main window lives as long as the application, so neither handler is
	// ever disconnected.
	pref.Subscribe(func(theme.Scheme) { sync() })
	adw.StyleManagerGetDefault().Connect("notify::dark", sync)

	w.Dark.Connect("state-set", func(_ *gtk.Switch, state bool) bool {
		if !syncing {
			pref.Set(theme.SchemeForDark(state))
		}
		return false
	})

	box := gtk.NewBox(gtk.OrientationVertical, 18)
	box.AddCSSClass("main-content")
	box.SetVAlign(gtk.AlignCenter)
	box.Append(heading)
	box.Append(w.Button)
	box.Append(darkRow)

	w.SetChild(box)

	return &w
}
