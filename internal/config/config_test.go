package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/you-not-fish/codetree/internal/syntax"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "morse.yaml")
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestBuiltinTreesValid(t *testing.T) {
	for name, text := range Builtin {
		if !syntax.ValidateTree(text) {
			t.Errorf("builtin tree %q is invalid", name)
		}
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	text, err := c.Lookup("")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if text != syntax.DefaultTree {
		t.Errorf("default tree = %q, want syntax.DefaultTree", text)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
tree: tiny
mode: decode
cache: 64
trees:
  tiny: "(E * T)"
  letters: "(A * N)"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Mode != ModeDecode || c.Cache != 64 || c.Tree != "tiny" {
		t.Errorf("config = %+v", c)
	}

	text, err := c.Lookup("")
	if err != nil || text != "(E * T)" {
		t.Errorf("Lookup(\"\") = %q, %v, want (E * T)", text, err)
	}
	// Configured trees shadow builtins.
	if text, _ := c.Lookup("letters"); text != "(A * N)" {
		t.Errorf("Lookup(letters) = %q, want the configured tree", text)
	}
	if text, _ := c.Lookup("morse"); text != syntax.DefaultTree {
		t.Errorf("Lookup(morse) = %q, want the builtin tree", text)
	}

	want := []string{"letters", "morse", "tiny"}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if c.Tree != DefaultTreeName || c.Mode != "" || c.Cache != 0 {
		t.Errorf("config = %+v, want defaults", c)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"bad_yaml", "tree: [", "parse config"},
		{"unknown_key", "colour: blue", "parse config"},
		{"bad_mode", "mode: both", `mode "both"`},
		{"negative_cache", "cache: -1", "must not be negative"},
		{"empty_tree", "trees:\n  x: \"\"", "x: empty tree"},
		{"unknown_tree", "tree: mose", `unknown tree "mose" (did you mean "morse"?)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", tt.src)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q, want it to contain %q", err, tt.msg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(absent) error = %v, want os.ErrNotExist", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	c := Default()
	_, err := c.Lookup("letterz")
	var ute *UnknownTreeError
	if !errors.As(err, &ute) {
		t.Fatalf("error %v (%T), want *UnknownTreeError", err, err)
	}
	if ute.Name != "letterz" {
		t.Errorf("Name = %q", ute.Name)
	}

	_, err = c.Lookup("qqqq")
	if !errors.As(err, &ute) || ute.Suggestion != "" {
		t.Errorf("Lookup(qqqq) = %v, want no suggestion", err)
	}
}

func TestSuggest(t *testing.T) {
	cands := []string{"letters", "morse", "tiny"}
	tests := []struct {
		target string
		want   string
	}{
		{"mrs", "morse"},
		{"LET", "letters"},
		{"morsecode", "morse"},
		{"xyz", ""},
	}

	for _, tt := range tests {
		if got := Suggest(tt.target, cands); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}
