package shell

import (
	"reflect"
	"testing"

	"github.com/obision/example-go/internal/config"
)

type fakeApplication struct {
	id         string
	activators []func()
	runArgs    [][]string
	runStatus  int
}

func (a *fakeApplication) ApplicationID() string { return a.id }

func (a *fakeApplication) OnActivate(f func()) {
	a.activators = append(a.activators, f)
}

func (a *fakeApplication) Run(args []string) int {
	a.runArgs = append(a.runArgs, args)
	// Emulate the toolkit: startup then activate.
	for _, f := range a.activators {
		f()
	}
	return a.runStatus
}

type fakeWindow struct {
	presents int
}

func (w *fakeWindow) Present() { w.presents++ }

type fakeButton struct {
	label string
	sets  int
}

func (b *fakeButton) SetLabel(label string) {
	b.label = label
	b.sets++
}

func newTestShell(t *testing.T) (*Shell, *fakeApplication, *[]*fakeWindow) {
	t.Helper()

	app := &fakeApplication{id: config.AppID}
	windows := []*fakeWindow{}

	s := New(app, func(*Shell) Window {
		w := &fakeWindow{}
		windows = append(windows, w)
		return w
	})

	return s, app, &windows
}

func TestNew(t *testing.T) {
	s, app, windows := newTestShell(t)

	if s.Application() != Application(app) {
		t.Fatalf("shell owns %v, expected %v", s.Application(), app)
	}
	if id := s.Application().ApplicationID(); id != config.AppID {
		t.Fatalf("unexpected application ID %q", id)
	}
	if n := len(app.activators); n != 1 {
		t.Fatalf("expected exactly 1 activate handler, got %d", n)
	}
	if s.Window() != nil {
		t.Fatal("window constructed before activation")
	}
	if n := len(*windows); n != 0 {
		t.Fatalf("expected no windows before activation, got %d", n)
	}
}

func TestActivate(t *testing.T) {
	s, app, windows := newTestShell(t)

	app.activators[0]()

	if n := len(*windows); n != 1 {
		t.Fatalf("expected 1 window, got %d", n)
	}
	w := (*windows)[0]
	if w.presents != 1 {
		t.Fatalf("expected 1 present call, got %d", w.presents)
	}
	if s.Window() != Window(w) {
		t.Fatal("shell does not hold the presented window")
	}

	t.Run("again", func(t *testing.T) {
		s.Activate()

		if n := len(*windows); n != 1 {
			t.Fatalf("reactivation constructed another window: %d windows", n)
		}
		if w.presents != 2 {
			t.Fatalf("expected 2 present calls, got %d", w.presents)
		}
	})
}

func TestButtonClicked(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"initial", "Click me"},
		{"empty", ""},
		{"clicked", ClickedLabel},
	}

	s, _, _ := newTestShell(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := &fakeButton{label: test.label}

			s.ButtonClicked(b)
			s.ButtonClicked(b)

			if b.label != "¡Clickeado!" {
				t.Fatalf("unexpected label %q", b.label)
			}
			if b.sets != 2 {
				t.Fatalf("expected 2 SetLabel calls, got %d", b.sets)
			}
		})
	}
}

func TestRun(t *testing.T) {
	s, app, windows := newTestShell(t)
	app.runStatus = 3

	args := []string{"obision-example", "--gapplication-service", "file.txt"}

	if code := s.Run(args); code != 3 {
		t.Fatalf("expected exit status 3, got %d", code)
	}
	if len(app.runArgs) != 1 {
		t.Fatalf("expected 1 run call, got %d", len(app.runArgs))
	}
	if !reflect.DeepEqual(app.runArgs[0], args) {
		t.Fatalf("args mismatch:\n-> %q\n<- %q", args, app.runArgs[0])
	}
	if &app.runArgs[0][0] != &args[0] {
		t.Fatal("args were copied instead of forwarded")
	}

	window := s.Window()

	t.Run("twice", func(t *testing.T) {
		app.runStatus = 0

		if code := s.Run(nil); code != 0 {
			t.Fatalf("expected exit status 0, got %d", code)
		}
		if len(app.runArgs) != 2 {
			t.Fatalf("expected 2 run calls, got %d", len(app.runArgs))
		}
		if app.runArgs[1] != nil {
			t.Fatalf("second run got args %q, expected nil", app.runArgs[1])
		}
		if s.Window() != window {
			t.Fatal("second run replaced the main window")
		}
		if n := len(*windows); n != 1 {
			t.Fatalf("expected 1 window after 2 runs, got %d", n)
		}
		if n := len(app.activators); n != 1 {
			t.Fatalf("run registered more handlers: %d", n)
		}
	})
}
