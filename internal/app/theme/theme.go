// Package theme persists the user's color scheme and applies it through
// libadwaita's style manager.
package theme

import (
	"log"
	"sync"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/obision/example-go/internal/config/kvstate"
	"github.com/pkg/errors"
)

// Scheme is a color scheme preference.
type Scheme uint8

const (
	// Default follows the system preference.
	Default Scheme = iota
	Light
	Dark
)

var schemeNames = [...]string{
	Default: "default",
	Light:   "light",
	Dark:    "dark",
}

// String returns the scheme's name.
func (s Scheme) String() string {
	if int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return "Scheme(?)"
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if int(s) >= len(schemeNames) {
		return nil, errors.Errorf("unknown scheme %d", s)
	}
	return []byte(schemeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(b []byte) error {
	for i, name := range schemeNames {
		if name == string(b) {
			*s = Scheme(i)
			return nil
		}
	}
	return errors.Errorf("unknown scheme %q", b)
}

// IsDark reports whether the scheme ends up dark. Default follows systemDark,
// the system's current preference.
func (s Scheme) IsDark(systemDark bool) bool {
	switch s {
	case Dark:
		return true
	case Light:
		return false
	default:
		return systemDark
	}
}

// SystemDark reports whether the style manager currently renders dark. It must
// be called on the main loop after the application has started up.
func SystemDark() bool {
	return adw.StyleManagerGetDefault().Dark()
}

// SchemeForDark returns Dark if dark is true, otherwise Light.
func SchemeForDark(dark bool) Scheme {
	if dark {
		return Dark
	}
	return Light
}

// adwScheme maps the scheme to libadwaita's.
func (s Scheme) adwScheme() adw.ColorScheme {
	switch s {
	case Light:
		return adw.ColorSchemeForceLight
	case Dark:
		return adw.ColorSchemeForceDark
	default:
		return adw.ColorSchemeDefault
	}
}

const stateKey = "color-scheme"

// Load reads the scheme from the given state. Default is returned if there is
// none or if it is invalid.
func Load(state *kvstate.State) Scheme {
	var s Scheme
	if !state.Get(stateKey, &s) {
		return Default
	}
	return s
}

// Store writes the scheme into the given state. It does not save the state to
// disk.
func Store(state *kvstate.State, s Scheme) {
	state.Set(stateKey, s)
}

// Apply applies the scheme to the default style manager. It must be called on
// the main loop after the application has started up.
func Apply(s Scheme) {
	adw.StyleManagerGetDefault().SetColorScheme(s.adwScheme())
}

// Preference is the persisted color scheme preference. Subscribers are called
// on the main loop whenever it changes.
type Preference struct {
	state *kvstate.State
	save  func()

	mu     sync.Mutex
	scheme Scheme
	subs   map[uint64]func(Scheme)
	subID  uint64
}

// NewPreference loads the preference from the given state.
func NewPreference(state *kvstate.State) *Preference {
	return &Preference{
		state:  state,
		save:   state.Save,
		scheme: Load(state),
		subs:   make(map[uint64]func(Scheme)),
	}
}

// Scheme returns the current scheme.
func (p *Preference) Scheme() Scheme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scheme
}

// Set updates the scheme, saves it and notifies subscribers. Setting the same
// scheme again does nothing. It must be called on the main loop.
func (p *Preference) Set(s Scheme) {
	p.mu.Lock()
	if p.scheme == s {
		p.mu.Unlock()
		return
	}
	p.scheme = s
	subs := make([]func(Scheme), 0, len(p.subs))
	for _, f := range p.subs {
		subs = append(subs, f)
	}
	p.mu.Unlock()

	log.Println("theme: color scheme set to", s)

	Store(p.state, s)
	p.save()

	for _, f := range subs {
		f(s)
	}
}

// Subscribe calls f now with the current scheme and again on every change. The
// returned function removes the subscription.
func (p *Preference) Subscribe(f func(Scheme)) (rm func()) {
	p.mu.Lock()
	id := p.subID
	p.subID++
	p.subs[id] = f
	s := p.scheme
	p.mu.Unlock()

	f(s)

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}
