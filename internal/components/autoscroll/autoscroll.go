// Package autoscroll provides a scrolled window that sticks to its bottom
// while new content is appended.
package autoscroll

import (
	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Window describes an automatically scrolled window.
type Window struct {
	*gtk.ScrolledWindow
	vadj     *gtk.Adjustment
	bottomed bool
}

// NewWindow creates a new Window that starts anchored to the bottom.
func NewWindow() *Window {
	w := Window{
		ScrolledWindow: gtk.NewScrolledWindow(),
		bottomed:       true,
	}
	w.vadj = w.ScrolledWindow.VAdjustment()
	w.SetPropagateNaturalHeight(true)

	w.vadj.Connect("notify::upper", func() {
		if w.bottomed {
			w.vadj.SetValue(w.vadj.Upper())
		}
	})
	w.vadj.Connect("value-changed", func() {
		// Only stay anchored if the user hasn't scrolled up.
		w.bottomed = (w.vadj.Upper() - w.vadj.PageSize()) <= w.vadj.Value()
	})

	return &w
}

// IsBottomed returns true if the scrolled window is currently bottomed out.
func (w *Window) IsBottomed() bool {
	return w.bottomed
}

// ScrollToBottom scrolls the window to bottom.
func (w *Window) ScrollToBottom() {
	glib.IdleAdd(func() {
		w.vadj.SetValue(w.vadj.Upper())
	})
}
