package kvstate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app-state", "test.json")

	type value struct {
		Name  string
		Count int
	}

	values := map[string]value{
		"hello": {"世界", 1},
		"empty": {},
	}

	state := NewState(path)

	var v value
	if state.Get("hello", &v) {
		t.Fatal("unexpected key in fresh state")
	}

	for k, v := range values {
		state.Set(k, v)
	}

	if err := state.SaveSync(); err != nil {
		t.Fatal("cannot save state:", err)
	}

	t.Run("new", func(t *testing.T) {
		newState := NewState(path)

		for k, expect := range values {
			var got value
			if !newState.Get(k, &got) {
				t.Fatalf("missing key %q", k)
			}
			if got != expect {
				t.Fatalf("value mismatch for key %q:\n-> %v\n<- %v", k, expect, got)
			}
		}
	})
}

func TestStateInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")

	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	state := NewState(path)

	var s string
	if state.Get("color-scheme", &s) {
		t.Fatal("invalid file yielded a value")
	}

	state.Set("color-scheme", "dark")

	if !state.Get("color-scheme", &s) || s != "dark" {
		t.Fatalf("cannot read back value, got %q", s)
	}

	var n int
	if state.Get("color-scheme", &n) {
		t.Fatal("string value was unmarshaled into an int")
	}
}

func TestStateSaveError(t *testing.T) {
	dir := t.TempDir()

	// A regular file where the state directory should be.
	blocker := filepath.Join(dir, "app-state")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	state := NewState(filepath.Join(blocker, "theme.json"))

	loop := make(mainLoop, 1)
	state.store.idle = loop.idle

	var reported error
	state.OnSaveError(func(err error) { reported = err })

	state.Set("color-scheme", "dark")
	state.Save()
	loop.runOne(t)

	if reported == nil {
		t.Fatal("failed save was not reported")
	}

	if err := state.SaveSync(); err == nil {
		t.Fatal("SaveSync succeeded writing under a regular file")
	}
}

func TestStateStaleSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	state := NewState(path)

	state.Set("color-scheme", "light")
	stale := state.snapshotFunc()

	state.Set("color-scheme", "dark")
	if err := state.SaveSync(); err != nil {
		t.Fatal("cannot save state:", err)
	}

	if err := stale(); err != nil {
		t.Fatal("stale write failed:", err)
	}

	var s string
	if !NewState(path).Get("color-scheme", &s) || s != "dark" {
		t.Fatalf("stale snapshot overwrote newer state, got %q", s)
	}
}

func TestStateSaveUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	state := NewState(path)

	if err := state.SaveSync(); err != nil {
		t.Fatal("cannot save state:", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("unchanged state was written:", err)
	}

	state.Set("color-scheme", "dark")
	if err := state.SaveSync(); err != nil {
		t.Fatal("cannot save state:", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal("changed state was not written:", err)
	}
}
