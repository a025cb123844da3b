package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/you-not-fish/codetree/internal/codebook"
	"github.com/you-not-fish/codetree/internal/config"
	"github.com/you-not-fish/codetree/internal/syntax"
)

const (
	historyFile = ".morse_history"
	promptEnc   = "encode> "
	promptDec   = "decode> "
)

const replHelp = `Lines are encoded or decoded according to the current mode.

Commands:
  :e <text>       Encode text
  :d <codes>      Decode codewords
  :mode [e|d]     Show or switch the mode
  :tree           Show the tree and its fingerprint
  :maps           Show the codeword table
  :help           Show this help
  :quit           Exit
`

// replCommands lists the commands for suggestions.
var replCommands = []string{":e", ":d", ":mode", ":tree", ":maps", ":help", ":quit"}

// runRepl reads lines interactively until EOF or :quit.
func runRepl(s *session) int {
	if s.mode == "" {
		s.mode = config.ModeEncode
	}
	fmt.Printf("morse %s, tree %s\nType :help for commands, Ctrl+D exits.\n", Version, s.name)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		var out []string
		for _, c := range replCommands {
			if strings.HasPrefix(c, line) {
				out = append(out, c)
			}
		}
		return out
	})

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	done := make(chan struct{})
	defer close(done)
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go watchSignals(sigc, done, func() {
		ln.Close()
		os.Exit(130)
	})

	for {
		prompt := promptEnc
		if s.mode == config.ModeDecode {
			prompt = promptDec
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return 1
			}
			fmt.Println()
			return 0
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if s.eval(line, os.Stdout) {
			return 0
		}
	}
}

// watchSignals calls onSignal for the first signal on sigc. It returns
// without calling it once done is closed.
func watchSignals(sigc <-chan os.Signal, done <-chan struct{}, onSignal func()) {
	select {
	case <-sigc:
		onSignal()
	case <-done:
	}
}

// eval runs one REPL line and reports whether the session should end.
func (s *session) eval(line string, w io.Writer) (quit bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		fmt.Fprintln(w, s.transform(line))
		return false
	}

	cmd, arg, _ := strings.Cut(trimmed, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprint(w, replHelp)
	case ":e":
		fmt.Fprintln(w, s.enc.EncodeLine(arg))
	case ":d":
		fmt.Fprintln(w, s.dec.DecodeLine(arg))
	case ":mode":
		switch arg {
		case "":
		case "e", config.ModeEncode:
			s.mode = config.ModeEncode
		case "d", config.ModeDecode:
			s.mode = config.ModeDecode
		default:
			fmt.Fprintf(w, "unknown mode %q: want e or d\n", arg)
			return false
		}
		fmt.Fprintf(w, "mode: %s\n", s.mode)
	case ":tree":
		fmt.Fprintf(w, "%s  %s\n", syntax.FingerprintString(s.tree.Root), s.name)
		fmt.Fprintf(w, "%d nodes, depth %d, %d symbols\n", s.tree.Len(), s.tree.Depth(), len(s.maps))
		fmt.Fprintln(w, syntax.Format(s.tree.Root))
	case ":maps":
		codebook.Fprint(w, s.maps)
	default:
		if hint := config.Suggest(cmd, replCommands); hint != "" {
			fmt.Fprintf(w, "unknown command %s (did you mean %s?)\n", cmd, hint)
		} else {
			fmt.Fprintf(w, "unknown command %s. Type :help for commands.\n", cmd)
		}
	}
	return false
}
