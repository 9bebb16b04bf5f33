// Package locale provides localized message printing using the user's
// language preferences.
package locale

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"strings"
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales
var localesFS embed.FS

type ctxKey uint

const (
	printerKey ctxKey = iota
)

var (
	localPrinter     *message.Printer
	localPrinterErr  error
	localPrinterOnce sync.Once
)

// Bundled loads the translations shipped inside the binary. The catalog is
// usable even if an error is returned.
func Bundled() (catalog.Catalog, error) {
	locales, err := fs.Sub(localesFS, "locales")
	if err != nil {
		log.Panicln("locale: bundled locales missing:", err)
	}
	return Load(locales)
}

// BundledError returns the error from loading the bundled translations for the
// local printer, or nil.
func BundledError() error {
	loadLocalPrinter()
	return localPrinterErr
}

func loadLocalPrinter() {
	localPrinterOnce.Do(func() {
		cat, err := Bundled()
		if err != nil {
			log.Println("locale:", err)
			localPrinterErr = err
		}
		localPrinter = NewPrinter(cat, glib.GetLanguageNames())
	})
}

// NewPrinter creates a printer for the best language in cat that matches the
// given preferred languages, in order of preference. Unparsable languages are
// skipped. English is the fallback.
func NewPrinter(cat catalog.Catalog, preferred []string) *message.Printer {
	var langs []language.Tag

	for _, lang := range preferred {
		// GLib includes the C locale, which means no translation.
		if lang == "C" || lang == "POSIX" {
			continue
		}

		// Drop the codeset and modifier, e.g. es_ES.UTF-8@euro.
		if i := strings.IndexAny(lang, ".@"); i != -1 {
			lang = lang[:i]
		}

		t, err := language.Parse(lang)
		if err != nil {
			log.Printf("locale: cannot parse language %s: %v", lang, err)
			continue
		}
		langs = append(langs, t)
	}

	supported := append([]language.Tag{language.English}, cat.Languages()...)
	matcher := language.NewMatcher(supported)

	tag := language.English
	if len(langs) > 0 {
		_, index, confidence := matcher.Match(langs...)
		if confidence > language.No {
			tag = supported[index]
		}
	}

	return message.NewPrinter(tag, message.Catalog(cat))
}

// WithLocalPrinter inserts the local printer into the context scope.
func WithLocalPrinter(ctx context.Context) context.Context {
	loadLocalPrinter()
	return WithPrinter(ctx, localPrinter)
}

// WithPrinter inserts the given printer into a new context and returns it.
func WithPrinter(ctx context.Context, p *message.Printer) context.Context {
	return context.WithValue(ctx, printerKey, p)
}

// Printer returns the printer inside the context OR the local printer if none.
func Printer(ctx context.Context) *message.Printer {
	p, ok := ctx.Value(printerKey).(*message.Printer)
	if ok {
		return p
	}
	loadLocalPrinter()
	return localPrinter
}

// S formats the given message key using ctx's printer.
func S(ctx context.Context, key message.Reference) string {
	return Printer(ctx).Sprintf(key)
}
