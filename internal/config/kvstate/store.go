package kvstate

import "github.com/diamondburned/gotk4/pkg/core/glib"

// store coalesces saves: while one write is running, further Save calls
// collapse into a single follow-up write. It must only be used from the main
// loop.
type store struct {
	snapshot func() (write func() error)
	onError  func(error)
	idle     func(func())

	saving  bool
	pending bool
}

func newStore(snapshot func() (write func() error)) store {
	return store{
		snapshot: snapshot,
		idle:     func(f func()) { glib.IdleAdd(f) },
	}
}

// Save queues a write of the current snapshot.
func (s *store) Save() {
	s.pending = true
	if !s.saving {
		s.start()
	}
}

func (s *store) start() {
	s.saving = true
	s.pending = false

	write := s.snapshot()

	go func() {
		err := write()

		s.idle(func() {
			s.saving = false

			if err != nil && s.onError != nil {
				s.onError(err)
			}

			if s.pending {
				s.start()
			}
		})
	}()
}
