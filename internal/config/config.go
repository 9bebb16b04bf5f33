// Package config provides configuration facilities.
package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// AppName is the name of the application. It names the configuration
// directory.
const AppName = "obision-example"

// AppID is the reverse-domain application identifier. It must be unique among
// running applications on the session bus.
const AppID = "com.obision.example.Go"

var (
	configPath     string
	configPathOnce sync.Once
)

// Path returns the path to the application's configuration directory with the
// given tails appended. If the path fails, then the function panics.
func Path(tails ...string) string {
	configPathOnce.Do(func() {
		d, err := os.UserConfigDir()
		if err != nil {
			log.Panicln("failed to get user config dir:", err)
		}

		configPath = filepath.Join(d, AppName)
	})

	if len(tails) == 0 {
		return configPath
	}

	return filepath.Join(append([]string{configPath}, tails...)...)
}

// WriteFile writes b into path atomically. The parent directories are created
// if they don't exist yet.
func WriteFile(path string, b []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "cannot mkdir config dir")
	}

	f, err := os.CreateTemp(dir, ".tmp.*")
	if err != nil {
		return errors.Wrap(err, "cannot create temp file")
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(b); err != nil {
		f.Close()
		return errors.Wrap(err, "cannot write temp file")
	}

	if err := f.Close(); err != nil {
		return errors.Wrap(err, "cannot close temp file")
	}

	if err := os.Rename(f.Name(), path); err != nil {
		return errors.Wrap(err, "cannot commit file")
	}

	return nil
}
