package locale

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/message/pipeline"
)

// LoadError lists the language directories whose catalogs could not be
// loaded. Every other language is still in the returned catalog.
type LoadError struct {
	Failed map[string]error
}

func (e *LoadError) Error() string {
	langs := e.Languages()
	if len(langs) == 1 {
		return fmt.Sprintf("cannot load translations for %s: %v", langs[0], e.Failed[langs[0]])
	}
	return fmt.Sprintf("cannot load translations for %s", strings.Join(langs, ", "))
}

// Languages returns the failed language directories, sorted.
func (e *LoadError) Languages() []string {
	langs := make([]string, 0, len(e.Failed))
	for lang := range e.Failed {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Load builds a catalog out of gotext JSON files laid out as
// <language>/<name>.json in fsys. A file whose declared language differs from
// its directory is rejected.
func Load(fsys fs.FS) (*catalog.Builder, error) {
	b := catalog.NewBuilder()

	files, err := fs.Glob(fsys, "*/*.json")
	if err != nil {
		return b, errors.Wrap(err, "cannot list catalogs")
	}

	failed := map[string]error{}

	for _, file := range files {
		dir := path.Dir(file)
		if failed[dir] != nil {
			continue
		}
		if err := addCatalog(b, fsys, file); err != nil {
			failed[dir] = errors.Wrap(err, path.Base(file))
		}
	}

	if len(failed) > 0 {
		return b, &LoadError{Failed: failed}
	}
	return b, nil
}

func addCatalog(b *catalog.Builder, fsys fs.FS, file string) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return err
	}

	var msgs pipeline.Messages
	if err := json.Unmarshal(data, &msgs); err != nil {
		return errors.Wrap(err, "invalid catalog")
	}

	if dir := language.Make(path.Dir(file)); msgs.Language != dir {
		return errors.Errorf("catalog is for %s, not %s", msgs.Language, dir)
	}

	for _, msg := range msgs.Messages {
		text, err := msg.Substitute(msg.Translation.Msg)
		if err != nil {
			return errors.Wrapf(err, "message %q", msg.ID)
		}

		for _, id := range msg.ID {
			if err := b.SetString(msgs.Language, id, text); err != nil {
				return errors.Wrapf(err, "message %q", id)
			}
		}
	}

	return nil
}
