package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestJSONLoaderLoad(t *testing.T) {
	path := writeFile(t, "config.json", `{"ui": {"theme": "dark"}, "version": "1.0.0"}`)

	got, err := NewJSONLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ui, ok := got["ui"].(map[string]any)
	if !ok || ui["theme"] != "dark" {
		t.Errorf("ui section = %v", got["ui"])
	}
	if got["version"] != "1.0.0" {
		t.Errorf("version = %v", got["version"])
	}
}

func TestJSONLoaderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	got, err := NewJSONLoader(path).Load()
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if got != nil {
		t.Errorf("missing file must yield nil map, got %v", got)
	}
}

func TestJSONLoaderUnreadablePath(t *testing.T) {
	// A directory cannot be read as a file; the failure is an I/O
	// error, not a parse error and not a missing file.
	_, err := NewJSONLoader(t.TempDir()).Load()

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}

	var perr *ParseError
	if errors.As(err, &perr) {
		t.Error("read failure reported as *ParseError")
	}
}

func TestJSONLoaderMalformed(t *testing.T) {
	path := writeFile(t, "bad.json", `{"ui": {"theme": `)

	_, err := NewJSONLoader(path).Load()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestJSONLoaderNonObjectRoot(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"array", `[1, 2, 3]`},
		{"string", `"just a string"`},
		{"number", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "root.json", tt.content)

			_, err := NewJSONLoader(path).Load()

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if !strings.Contains(perr.Message, "object") {
				t.Errorf("ParseError.Message = %q, want object-root complaint", perr.Message)
			}
		})
	}
}

func TestJSONLoaderFromReader(t *testing.T) {
	got, err := NewJSONLoader("").LoadFromReader(strings.NewReader(`{"k": 1}`))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if got["k"] != float64(1) {
		t.Errorf("k = %v, want 1", got["k"])
	}
}

func TestForPath(t *testing.T) {
	if _, ok := ForPath("config.toml").(*TOMLLoader); !ok {
		t.Error("ForPath(.toml) did not return a TOML loader")
	}
	if _, ok := ForPath("config.TOML").(*TOMLLoader); !ok {
		t.Error("ForPath(.TOML) did not return a TOML loader")
	}
	if _, ok := ForPath("config.json").(*JSONLoader); !ok {
		t.Error("ForPath(.json) did not return a JSON loader")
	}
	if _, ok := ForPath("config").(*JSONLoader); !ok {
		t.Error("ForPath without extension must default to JSON")
	}
}
