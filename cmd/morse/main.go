// Package main implements the morse command: encode and decode text with a
// code tree.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/you-not-fish/codetree/internal/codebook"
	"github.com/you-not-fish/codetree/internal/codec"
	"github.com/you-not-fish/codetree/internal/config"
	"github.com/you-not-fish/codetree/internal/syntax"
)

// Command flags
var (
	encodeFlag  = flag.Bool("e", false, "Encode each input line")
	decodeFlag  = flag.Bool("d", false, "Decode each input line")
	configPath  = flag.String("config", "", "YAML configuration file")
	treeName    = flag.String("tree", "", "Use a named tree from the configuration or the builtins")
	cacheSize   = flag.Int("cache", -1, "Decoded words to cache (-1 = from config, 0 = off)")
	emitTokens  = flag.Bool("emit-tokens", false, "Output token stream of the tree")
	emitTree    = flag.Bool("emit-tree", false, "Output the parsed tree")
	treeFormat  = flag.String("tree-format", "text", "Tree output format (text, json or canon)")
	emitMaps    = flag.Bool("emit-maps", false, "Output the codeword table")
	fingerprint = flag.Bool("fingerprint", false, "Print the tree fingerprint")
	repl        = flag.Bool("repl", false, "Start an interactive session")
	verbose     = flag.Bool("v", false, "Report why a tree is invalid")
	trace       = flag.Bool("trace", false, "Output timing trace")
	version     = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

const usageLine = "USAGE: morse [-e or -d] [tree-file]"

// invalidTreeMsg is printed for every tree that cannot be used, whatever the
// reason.
const invalidTreeMsg = "ERROR: Invalid tree file."

var errTreeFile = errors.New("invalid tree file")

// options carries the parsed command line into run.
type options struct {
	encode, decode bool
	configPath     string
	treeName       string
	cacheSize      int
	emitTokens     bool
	emitTree       bool
	treeFormat     string
	emitMaps       bool
	fingerprint    bool
	repl           bool
	verbose        bool
	trace          bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "morse %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "%s\n\n", usageLine)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("morse version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	opts := options{
		encode:      *encodeFlag,
		decode:      *decodeFlag,
		configPath:  *configPath,
		treeName:    *treeName,
		cacheSize:   *cacheSize,
		emitTokens:  *emitTokens,
		emitTree:    *emitTree,
		treeFormat:  *treeFormat,
		emitMaps:    *emitMaps,
		fingerprint: *fingerprint,
		repl:        *repl,
		verbose:     *verbose,
		trace:       *trace,
	}
	os.Exit(run(opts, flag.Args(), os.Stdin))
}

// run executes one invocation and returns the exit code.
func run(opts options, args []string, stdin io.Reader) int {
	tr := tracer{enabled: opts.trace}

	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, usageLine)
		return 1
	}

	cfg := config.Default()
	if opts.configPath != "" {
		start := time.Now()
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		tr.phase("config", start)
	}

	inspecting := opts.emitTokens || opts.emitTree || opts.emitMaps || opts.fingerprint
	mode, err := resolveMode(opts, cfg)
	if err != nil || (mode == "" && !inspecting && !opts.repl) {
		fmt.Fprintln(os.Stderr, usageLine)
		return 1
	}

	filename, text, err := loadTree(cfg, opts.treeName, args)
	if err != nil {
		var ute *config.UnknownTreeError
		if errors.As(err, &ute) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		reportInvalid(opts, err)
		return 1
	}

	if opts.emitTokens {
		return runEmitTokens(filename, text)
	}

	start := time.Now()
	tree, err := syntax.Parse(filename, text, nil)
	if err != nil {
		reportInvalid(opts, err)
		return 1
	}
	tr.phase("parse", start)

	start = time.Now()
	enc, dec := codebook.BuildTree(tree)
	tr.phase("maps", start)

	cache := opts.cacheSize
	if cache < 0 {
		cache = cfg.Cache
	}
	s := &session{
		name: filename,
		tree: tree,
		mode: mode,
		enc:  codec.NewEncoder(enc),
		dec:  codec.NewDecoder(dec, codec.WithCache(cache)),
		maps: dec,
	}

	switch {
	case opts.emitTree:
		return runEmitTree(tree, opts.treeFormat)
	case opts.emitMaps:
		return runEmitMaps(dec)
	case opts.fingerprint:
		fmt.Printf("%s  %s\n", syntax.FingerprintString(tree.Root), filename)
		return 0
	case opts.repl:
		return runRepl(s)
	}

	start = time.Now()
	code := runTransform(s, stdin, os.Stdout)
	tr.phase(mode, start)
	return code
}

// resolveMode picks encode or decode from the flags, falling back to the
// configuration. Both flags at once is an error.
func resolveMode(opts options, cfg *config.Config) (string, error) {
	switch {
	case opts.encode && opts.decode:
		return "", errors.New("-e and -d are mutually exclusive")
	case opts.encode:
		return config.ModeEncode, nil
	case opts.decode:
		return config.ModeDecode, nil
	}
	return cfg.Mode, nil
}

// loadTree returns the tree description to use and a name for it. A tree
// file given on the command line wins over -tree and the configuration.
// An unreadable or blank tree file is reported as errTreeFile.
func loadTree(cfg *config.Config, name string, args []string) (string, string, error) {
	if len(args) == 1 {
		filename := args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", errTreeFile, err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", "", fmt.Errorf("%w: %s: empty", errTreeFile, filename)
		}
		return filename, string(data), nil
	}

	text, err := cfg.Lookup(name)
	if err != nil {
		return "", "", err
	}
	if name == "" {
		name = cfg.Tree
	}
	return "<" + name + ">", text, nil
}

// reportInvalid prints the generic invalid-tree message, preceded by the
// cause when -v is set.
func reportInvalid(opts options, err error) {
	if opts.verbose {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	fmt.Fprintln(os.Stderr, invalidTreeMsg)
}

// session is a validated tree with its codecs.
type session struct {
	name string
	tree *syntax.Tree
	mode string
	enc  *codec.Encoder
	dec  *codec.Decoder
	maps codebook.Decoding
}

// transform runs line through the session's current mode.
func (s *session) transform(line string) string {
	if s.mode == config.ModeDecode {
		return s.dec.DecodeLine(line)
	}
	return s.enc.EncodeLine(line)
}

// runTransform feeds every input line through the session's mode and
// writes one output line per input line, in order. Lines may be of any
// length; a trailing "\r" is dropped with the newline.
func runTransform(s *session, in io.Reader, out io.Writer) int {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	var readErr error
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			fmt.Fprintln(w, s.transform(line))
		}
		if err != nil {
			if err != io.EOF {
				readErr = err
			}
			break
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: write output: %v\n", err)
		return 1
	}
	if readErr != nil {
		fmt.Fprintf(os.Stderr, "error: read input: %v\n", readErr)
		return 1
	}
	return 0
}

// runEmitTokens scans the tree description and prints all tokens with positions.
func runEmitTokens(filename, text string) int {
	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, text, errh)

	fmt.Printf("%-20s %-8s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-8s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 8), strings.Repeat("-", 10))

	for {
		s.Next()
		tok := s.Token()
		fmt.Printf("%-20s %-8s %q\n", s.Pos(), tok, s.Literal())
		if tok.IsEOF() {
			break
		}
	}

	if len(errs) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errs {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}
	return 0
}

// runEmitTree prints the parsed tree in the requested format.
func runEmitTree(tree *syntax.Tree, format string) int {
	switch format {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, tree.Root); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "canon":
		fmt.Println(syntax.Format(tree.Root))
	case "text":
		syntax.Fprint(os.Stdout, tree.Root)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown tree format %q\n", format)
		return 1
	}
	return 0
}

// runEmitMaps prints the codeword table.
func runEmitMaps(dec codebook.Decoding) int {
	codebook.Fprint(os.Stdout, dec)
	return 0
}

// tracer prints phase timings to stderr when enabled.
type tracer struct {
	enabled bool
}

func (t tracer) phase(name string, start time.Time) {
	if t.enabled {
		fmt.Fprintf(os.Stderr, "trace: %-7s %v\n", name, time.Since(start))
	}
}
