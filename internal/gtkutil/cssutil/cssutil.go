// Package cssutil collects CSS written by packages and applies it to the
// default display.
package cssutil

import (
	"bytes"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

var globalCSS bytes.Buffer

// WriteCSS adds the given CSS to the global stylesheet. It returns true so
// that it can be used in a package-level var declaration.
func WriteCSS(css string) bool {
	globalCSS.WriteString(css)
	globalCSS.WriteByte('\n')
	return true
}

// Applier returns a constructor that adds the dot-separated classes to a
// widget. It also writes the CSS to the global CSS.
func Applier(class, css string) func(gtk.Widgetter) {
	WriteCSS(css)
	classes := strings.Split(class, ".")
	return func(w gtk.Widgetter) {
		widget := gtk.BaseWidget(w)
		for _, class := range classes {
			widget.AddCSSClass(class)
		}
	}
}

// ApplyGlobalCSS applies the current global CSS to the default display.
func ApplyGlobalCSS() {
	prov := gtk.NewCSSProvider()
	prov.LoadFromData(globalCSS.Bytes())

	display := gdk.DisplayGetDefault()
	gtk.StyleContextAddProviderForDisplay(display, prov, 600)
}
