// Package kvstate provides a small key-value configuration database for use in
// various components to store state.
package kvstate

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/obision/example-go/internal/config"
	"github.com/pkg/errors"
)

// State is a single state configuration file.
type State struct {
	path  string
	store store

	mut    sync.Mutex
	state  map[string]json.RawMessage
	gen    uint64
	loaded bool

	// writeMu serializes file writes. written is the generation on disk; the
	// file as loaded is generation 0.
	writeMu sync.Mutex
	written uint64
}

// NewConfigState creates a State inside the app-state directory of the
// configuration path. The file is named after the last tail.
func NewConfigState(tails ...string) *State {
	tails = append([]string{"app-state"}, tails...)
	return NewState(config.Path(tails...))
}

// NewState creates a new state config at the given path. The file is read
// lazily.
func NewState(path string) *State {
	s := State{path: path}
	s.store = newStore(s.snapshotFunc)
	return &s
}

// OnSaveError sets the function called on the main loop when an asynchronous
// Save fails. It must be called before the first Save.
func (s *State) OnSaveError(f func(error)) {
	s.store.onError = f
}

// Path returns the file path of the state.
func (s *State) Path() string { return s.path }

// Get gets the value of the key into dst. False is returned if the key does
// not exist or its value cannot be unmarshaled into dst.
func (s *State) Get(key string, dst interface{}) bool {
	s.mut.Lock()
	s.load()
	b, ok := s.state[key]
	s.mut.Unlock()

	if !ok {
		return false
	}

	if err := json.Unmarshal(b, dst); err != nil {
		log.Printf("kvstate: cannot unmarshal %q into %T: %v", b, dst, err)
		return false
	}

	return true
}

// Set sets the value of the key. Set does not persist the value; call Save
// from the main loop for that.
func (s *State) Set(key string, val interface{}) {
	b, err := json.Marshal(val)
	if err != nil {
		log.Panicf("cannot marshal %T: %v", val, err)
	}

	s.mut.Lock()
	s.load()
	s.state[key] = b
	s.gen++
	s.mut.Unlock()
}

// Save asynchronously writes the state to disk. It must be called on the main
// loop.
func (s *State) Save() {
	s.store.Save()
}

// SaveSync writes the state to disk in the calling goroutine. Nothing is
// written if the state has not changed since the last write.
func (s *State) SaveSync() error {
	b, gen, err := s.marshal()
	if err != nil {
		return err
	}
	return s.write(b, gen)
}

func (s *State) write(b []byte, gen uint64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if gen <= s.written {
		return nil
	}

	if err := config.WriteFile(s.path, b); err != nil {
		return errors.Wrap(err, "cannot save state")
	}

	s.written = gen
	return nil
}

func (s *State) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.state = make(map[string]json.RawMessage)

	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("kvstate: cannot open state:", err)
		}
		return
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&s.state); err != nil {
		log.Printf("kvstate: state %q has invalid JSON: %v", s.path, err)
		s.state = make(map[string]json.RawMessage)
	}
}

func (s *State) marshal() ([]byte, uint64, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	s.load()

	b, err := json.MarshalIndent(s.state, "", "\t")
	if err != nil {
		return nil, 0, errors.Wrap(err, "cannot marshal state")
	}
	return b, s.gen, nil
}

// snapshotFunc captures the state as it is now. The returned function writes
// that snapshot and may be called from any goroutine.
func (s *State) snapshotFunc() func() error {
	b, gen, err := s.marshal()
	if err != nil {
		return func() error { return err }
	}

	return func() error {
		if err := s.write(b, gen); err != nil {
			log.Println("kvstate:", err)
			return err
		}
		return nil
	}
}
