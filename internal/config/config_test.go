package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPath(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)
	t.Setenv("HOME", configDir)

	base := Path()

	if dir := filepath.Base(base); dir != AppName {
		t.Fatalf("config path %q does not end in %q", base, AppName)
	}

	tests := []struct {
		tails  []string
		expect string
	}{
		{nil, base},
		{[]string{"theme.json"}, filepath.Join(base, "theme.json")},
		{[]string{"app-state", "theme.json"}, filepath.Join(base, "app-state", "theme.json")},
	}

	for _, test := range tests {
		if p := Path(test.tails...); p != test.expect {
			t.Errorf("Path(%q) = %q, expected %q", test.tails, p, test.expect)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")

	for _, content := range []string{`{"a":1}`, `{}`} {
		if err := WriteFile(path, []byte(content)); err != nil {
			t.Fatal("cannot write file:", err)
		}

		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal("cannot read file back:", err)
		}
		if string(b) != content {
			t.Fatalf("content mismatch:\n-> %s\n<- %s", content, b)
		}
	}

	ents, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Fatalf("temporary files left behind: %d entries", len(ents))
	}
}
