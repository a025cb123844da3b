// Package config loads the optional YAML configuration of the morse command.
//
// A configuration names trees and picks defaults:
//
//	tree: wide            # tree used when none is given on the command line
//	mode: decode          # encode or decode
//	cache: 256            # decoded words kept in the decoder's LRU cache
//	trees:
//	  wide: "((E * T) ...)"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/codetree/internal/syntax"
)

// Modes.
const (
	ModeEncode = "encode"
	ModeDecode = "decode"
)

// DefaultTreeName names the tree used when nothing else is selected.
const DefaultTreeName = "morse"

// Builtin holds the trees available without any configuration.
var Builtin = map[string]string{
	DefaultTreeName: syntax.DefaultTree,
	"letters":       syntax.LettersTree,
}

// Config is the decoded configuration file.
type Config struct {
	Tree  string            `yaml:"tree"`
	Mode  string            `yaml:"mode"`
	Cache int               `yaml:"cache"`
	Trees map[string]string `yaml:"trees"`
}

// UnknownTreeError reports a tree name that is neither configured nor built in.
type UnknownTreeError struct {
	Name       string
	Suggestion string // closest known name, may be empty
}

func (e *UnknownTreeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown tree %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown tree %q", e.Name)
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Tree: DefaultTreeName}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML configuration. Unknown keys are errors.
// An empty document yields Default.
func Parse(data []byte) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.Tree == "" {
		c.Tree = DefaultTreeName
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the mode, the cache size, and that the selected tree exists.
func (c *Config) Validate() error {
	switch c.Mode {
	case "", ModeEncode, ModeDecode:
	default:
		return fmt.Errorf("mode %q: want %q or %q", c.Mode, ModeEncode, ModeDecode)
	}
	if c.Cache < 0 {
		return fmt.Errorf("cache %d: must not be negative", c.Cache)
	}
	for name, text := range c.Trees {
		if name == "" {
			return errors.New("trees: empty tree name")
		}
		if text == "" {
			return fmt.Errorf("trees: %s: empty tree", name)
		}
	}
	if _, err := c.Lookup(c.Tree); err != nil {
		return err
	}
	return nil
}

// Lookup returns the description of the named tree. Configured trees shadow
// built-in ones; an empty name selects c.Tree.
func (c *Config) Lookup(name string) (string, error) {
	if name == "" {
		name = c.Tree
	}
	if name == "" {
		name = DefaultTreeName
	}
	if text, ok := c.Trees[name]; ok {
		return text, nil
	}
	if text, ok := Builtin[name]; ok {
		return text, nil
	}
	return "", &UnknownTreeError{Name: name, Suggestion: Suggest(name, c.Names())}
}

// Names returns every tree name known to c, sorted.
func (c *Config) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range []map[string]string{c.Trees, Builtin} {
		for name := range m {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Suggest returns the candidate closest to target, or "" if none is close.
// Candidates containing target as a case-insensitive subsequence are ranked
// by edit distance; failing that, the longest candidate that is itself a
// subsequence of target is returned.
func Suggest(target string, candidates []string) string {
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best := ""
	for _, cand := range candidates {
		if len(cand) > len(best) && fuzzy.MatchFold(cand, target) {
			best = cand
		}
	}
	return best
}
