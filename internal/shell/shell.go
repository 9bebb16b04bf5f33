// Package shell provides the application shell: it owns the toolkit
// application, presents the main window on activation and hands the process
// arguments to the toolkit's run loop.
package shell

// ClickedLabel is the label a clicked primary button is set to.
const ClickedLabel = "¡Clickeado!"

// Application describes the toolkit application that the shell drives.
type Application interface {
	// ApplicationID returns the reverse-domain identifier.
	ApplicationID() string
	// OnActivate binds f to the activate signal.
	OnActivate(f func())
	// Run blocks on the toolkit's run loop and returns its exit status.
	Run(args []string) int
}

// Window describes anything that can be presented to the user.
type Window interface {
	Present()
}

// Button describes a button with a settable label.
type Button interface {
	SetLabel(label string)
}

// WindowFunc constructs the main window. It is called on the first activation
// only.
type WindowFunc func(s *Shell) Window

// Shell is the application shell.
type Shell struct {
	app       Application
	newWindow WindowFunc
	window    Window
}

// New creates a new shell around app and connects its activate signal. The
// given newWindow constructs the main window; it may call ButtonClicked from
// its button's click handler.
func New(app Application, newWindow WindowFunc) *Shell {
	s := &Shell{
		app:       app,
		newWindow: newWindow,
	}
	app.OnActivate(s.Activate)
	return s
}

// Application returns the application that the shell owns.
func (s *Shell) Application() Application { return s.app }

// Window returns the main window, or nil if the application was never
// activated.
func (s *Shell) Window() Window { return s.window }

// Activate presents the main window, constructing it if this is the first
// activation.
func (s *Shell) Activate() {
	if s.window == nil {
		s.window = s.newWindow(s)
	}
	s.window.Present()
}

// ButtonClicked sets the label of the given button to ClickedLabel.
func (s *Shell) ButtonClicked(b Button) {
	b.SetLabel(ClickedLabel)
}

// Run runs the application with the given arguments and returns its exit
// status. It blocks until the run loop exits.
func (s *Shell) Run(args []string) int {
	return s.app.Run(args)
}
