// Package gtkutil provides small helpers around gotk4.
package gtkutil

import (
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// CallbackAction extends SimpleAction to provide idiomatic callback APIs.
type CallbackAction struct {
	*gio.SimpleAction
}

// NewCallbackAction creates a new CallbackAction.
func NewCallbackAction(name string) *CallbackAction {
	a := gio.NewSimpleAction(name, nil)
	return &CallbackAction{a}
}

// ActionFunc creates a CallbackAction from a function.
func ActionFunc(name string, f func()) *CallbackAction {
	c := NewCallbackAction(name)
	c.OnActivate(f)
	return c
}

// OnActivate binds the given function callback to be called when the action is
// activated.
func (a *CallbackAction) OnActivate(f func()) {
	a.SimpleAction.Connect("activate", f)
}

// MenuPair creates a gio.Menu out of the given menu pairs. The first value of
// a pair is the label, the second is the detailed action name.
func MenuPair(pairs [][2]string) *gio.Menu {
	menu := gio.NewMenu()
	for _, pair := range pairs {
		menu.Append(pair[0], pair[1])
	}
	return menu
}

// NewMenuButton creates an icon menu button that pops up a menu made from the
// given pairs.
func NewMenuButton(icon, tooltip string, pairs [][2]string) *gtk.MenuButton {
	button := gtk.NewMenuButton()
	button.SetIconName(icon)
	button.SetTooltipText(tooltip)
	button.SetMenuModel(MenuPair(pairs))
	return button
}
