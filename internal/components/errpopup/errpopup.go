// Package errpopup shows reported errors in a dialog, one at a time.
package errpopup

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"
	"github.com/obision/example-go/internal/gtkutil/cssutil"
	"github.com/obision/example-go/internal/locale"
)

var css = cssutil.Applier("errpopup", `
	.errpopup-page {
		margin: 12px 18px;
	}
	.errpopup-summary {
		font-weight: bold;
		color: @error_color;
	}
`)

// current is the open popup. Errors reported while it is open are queued into
// it rather than stacking dialogs.
var current *popup

// Show queues errs into the application's error popup. Nil errors are
// skipped. It may be called from any goroutine.
func Show(app *gtk.Application, errs []error) {
	glib.IdleAdd(func() { show(app, errs) })
}

func show(app *gtk.Application, errs []error) {
	if current != nil {
		current.queue.push(errs)
		current.updateButton()
		return
	}

	p := popup{}
	p.queue.push(errs)
	if p.queue.remaining() == 0 {
		return
	}

	p.build(app)
	p.advance()

	current = &p
	p.dialog.Show()
}

type popup struct {
	ctx    context.Context
	dialog *gtk.Dialog
	stack  *gtk.Stack
	next   *gtk.Button
	queue  queue
}

func (p *popup) build(app *gtk.Application) {
	p.ctx = context.Background()

	p.stack = gtk.NewStack()
	p.stack.SetTransitionType(gtk.StackTransitionTypeSlideLeft)
	p.stack.SetVExpand(true)

	p.dialog = gtk.NewDialog()
	p.dialog.SetApplication(app)
	p.dialog.SetTitle(locale.S(p.ctx, "Error"))
	p.dialog.SetDefaultSize(380, 180)
	p.dialog.SetModal(true)
	if parent := app.ActiveWindow(); parent != nil {
		p.dialog.SetTransientFor(parent)
	}

	content := p.dialog.ContentArea()
	content.Append(p.stack)
	css(content)

	p.next = p.dialog.AddButton(locale.S(p.ctx, "Next"), int(gtk.ResponseOK)).(*gtk.Button)
	p.dialog.SetDefaultWidget(p.next)

	p.dialog.ConnectResponse(func(resp int) {
		if resp != int(gtk.ResponseOK) {
			p.close()
			return
		}
		p.advance()
	})
}

// advance shows the next message or closes the popup if there is none.
func (p *popup) advance() {
	msg, ok := p.queue.next()
	if !ok {
		p.close()
		return
	}

	page := messagePage(msg)
	p.stack.AddChild(page)
	p.stack.SetVisibleChild(page)

	p.updateButton()
}

func (p *popup) updateButton() {
	if p.queue.remaining() > 0 {
		p.next.SetLabel(locale.S(p.ctx, "Next"))
	} else {
		p.next.SetLabel(locale.S(p.ctx, "OK"))
	}
}

func (p *popup) close() {
	p.dialog.Destroy()
	if current == p {
		current = nil
	}
}

func messagePage(msg Message) gtk.Widgetter {
	summary := gtk.NewLabel(msg.Summary)
	summary.AddCSSClass("errpopup-summary")
	summary.SetXAlign(0)
	summary.SetWrap(true)

	box := gtk.NewBox(gtk.OrientationVertical, 6)
	box.AddCSSClass("errpopup-page")
	box.Append(summary)

	if msg.Detail != "" {
		detail := gtk.NewLabel(msg.Detail)
		detail.SetXAlign(0)
		detail.SetWrap(true)
		detail.SetWrapMode(pango.WrapWordChar)
		detail.SetSelectable(true)
		box.Append(detail)
	}

	return box
}
