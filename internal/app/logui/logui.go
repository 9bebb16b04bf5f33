// Package logui keeps the process log in a GTK text buffer. Lines written by
// app.Error are highlighted so they stand out in the log window.
package logui

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/obision/example-go/internal/app"
	"github.com/obision/example-go/internal/components/autoscroll"
	"github.com/obision/example-go/internal/gtkutil/cssutil"
	"github.com/obision/example-go/internal/locale"
)

// MaxChars is the number of characters the log keeps before dropping the
// oldest lines.
const MaxChars = 500_000

// ErrorTag is the name of the text tag applied to error lines.
const ErrorTag = "error"

var logOnce sync.Once
var logBuffer *Buffer

// Capture makes the default logger write into Default as well as its current
// output. It must be called on the main loop, once the toolkit is
// initialized.
func Capture() {
	logger := log.Default()
	logger.SetOutput(io.MultiWriter(logger.Writer(), Default()))
}

// Default returns the buffer that Capture writes into.
func Default() *Buffer {
	logOnce.Do(func() { logBuffer = NewBuffer() })
	return logBuffer
}

// Buffer is a read-only log buffer.
type Buffer struct {
	*gtk.TextBuffer
	errorTag *gtk.TextTag
}

// NewBuffer creates an empty log buffer.
func NewBuffer() *Buffer {
	errorTag := gtk.NewTextTag(ErrorTag)
	errorTag.SetObjectProperty("foreground", "#e01b24")
	errorTag.SetObjectProperty("weight", 700)

	table := gtk.NewTextTagTable()
	table.Add(errorTag)

	b := &Buffer{
		TextBuffer: gtk.NewTextBuffer(table),
		errorTag:   errorTag,
	}
	b.SetEnableUndo(false)
	return b
}

// Write appends log output. It may be called from any goroutine; the text is
// inserted on the main loop.
func (b *Buffer) Write(p []byte) (int, error) {
	lines := splitLines(strings.ToValidUTF8(string(p), "\uFFFD"))
	glib.IdleAdd(func() { b.append(lines) })
	return len(p), nil
}

func (b *Buffer) append(lines []string) {
	for _, line := range lines {
		end := b.EndIter()
		start := end.Offset()
		b.Insert(end, line)

		if isErrorLine(line) {
			b.ApplyTag(b.errorTag, b.IterAtOffset(start), b.EndIter())
		}
	}

	if over := b.CharCount() - MaxChars; over > 0 {
		cut := b.IterAtOffset(over)
		// Drop whole lines only.
		if !cut.StartsLine() {
			cut.ForwardLine()
		}
		b.Delete(b.StartIter(), cut)
	}
}

// splitLines splits text after every newline, keeping the newlines.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isErrorLine reports whether line was logged by app.Error. The date and time
// the standard logger prepends are skipped.
func isErrorLine(line string) bool {
	for i := 0; i < 2; i++ {
		j := strings.IndexByte(line, ' ')
		if j == -1 || strings.Trim(line[:j], "0123456789/:.") != "" {
			break
		}
		line = line[j+1:]
	}
	return strings.HasPrefix(line, "error: ")
}

var _ = cssutil.WriteCSS(`
	.logui-view {
		padding: 6px 8px;
	}
`)

var viewer *gtk.Window

// Show presents the log window, creating it on first use. It must be called on
// the main loop.
func Show(ctx context.Context) {
	if viewer == nil {
		viewer = newViewer(ctx, Default())
		viewer.SetHideOnClose(true)
	}
	viewer.Present()
}

func newViewer(ctx context.Context, buffer *Buffer) *gtk.Window {
	view := gtk.NewTextViewWithBuffer(buffer.TextBuffer)
	view.AddCSSClass("logui-view")
	view.SetEditable(false)
	view.SetCursorVisible(false)
	view.SetMonospace(true)
	view.SetWrapMode(gtk.WrapWordChar)

	scroll := autoscroll.NewWindow()
	scroll.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scroll.SetChild(view)
	scroll.ScrollToBottom()

	w := gtk.NewWindow()
	w.SetTitle(locale.S(ctx, "Application Logs"))
	w.SetDefaultSize(560, 380)
	w.SetChild(scroll)

	if a := app.FromContext(ctx); a != nil {
		w.SetApplication(a.Application)
	}

	esc := gtk.NewEventControllerKey()
	esc.ConnectKeyPressed(func(val, _ uint, _ gdk.ModifierType) bool {
		if val != gdk.KEY_Escape {
			return false
		}
		w.Close()
		return true
	})
	w.AddController(esc)

	return w
}
