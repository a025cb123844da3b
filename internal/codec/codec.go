// Package codec turns lines of text into codewords and back using the
// mappings derived from a code tree.
//
// Neither direction can fail: characters without a codeword are dropped when
// encoding, and tokens that match no codeword decode to Unknown.
package codec

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/you-not-fish/codetree/internal/codebook"
)

// Unknown is emitted for a codeword token that matches nothing.
const Unknown = "?"

// Separators in encoded text.
const (
	CharSep = " "
	WordSep = "  "
)

// EncodeLine encodes one line of text with enc.
func EncodeLine(text string, enc codebook.Encoding) string {
	return NewEncoder(enc).EncodeLine(text)
}

// DecodeLine decodes one line of codewords with dec.
func DecodeLine(text string, dec codebook.Decoding) string {
	return NewDecoder(dec).DecodeLine(text)
}

// ----------------------------------------------------------------------------
// Encoder

// Encoder encodes text. It is safe for concurrent use.
type Encoder struct {
	enc codebook.Encoding
}

// NewEncoder returns an Encoder for enc. The map must not be modified
// afterwards.
func NewEncoder(enc codebook.Encoding) *Encoder {
	return &Encoder{enc: enc}
}

// EncodeLine upper-cases text, encodes each whitespace-separated word as its
// characters' codewords joined by CharSep, and joins the words with WordSep.
// Words with no encodable character are left out entirely.
//
// Upper-casing uses full Unicode case mapping, so "ß" becomes "SS".
func (e *Encoder) EncodeLine(text string) string {
	// A Caser is stateful and cannot be shared between goroutines.
	upper := cases.Upper(language.Und).String(text)

	var words []string
	for _, word := range strings.Fields(upper) {
		var codes []string
		for _, c := range word {
			if code, ok := e.enc[c]; ok {
				codes = append(codes, code)
			}
		}
		if len(codes) > 0 {
			words = append(words, strings.Join(codes, CharSep))
		}
	}
	return strings.Join(words, WordSep)
}

// ----------------------------------------------------------------------------
// Decoder

// Config holds configuration for a Decoder.
type Config struct {
	CacheSize int // decoded words kept in an LRU cache (0 = no cache)
}

// Option is a functional option for configuring a Decoder.
type Option func(*Config)

// WithCache keeps up to n decoded words in an LRU cache. Values below one
// disable the cache.
func WithCache(n int) Option {
	return func(c *Config) {
		c.CacheSize = n
	}
}

// Decoder decodes codeword text. It is safe for concurrent use.
type Decoder struct {
	dec     codebook.Decoding
	maxSpan int // most tokens in any codeword

	cache *lru.Cache[string, string]
}

// NewDecoder returns a Decoder for dec. The map must not be modified
// afterwards.
func NewDecoder(dec codebook.Decoding, opts ...Option) *Decoder {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Decoder{dec: dec, maxSpan: 1}
	for code := range dec {
		if n := len(strings.Fields(code)); n > d.maxSpan {
			d.maxSpan = n
		}
	}
	if cfg.CacheSize > 0 {
		// lru.New only fails for a non-positive size.
		d.cache, _ = lru.New[string, string](cfg.CacheSize)
	}
	return d
}

// DecodeLine splits text into words at runs of two or more whitespace
// characters and each word into tokens at single whitespace, decodes every
// word, and joins the non-empty results with a single space. A line with no
// tokens is decoded as a single empty token, which yields Unknown.
func (d *Decoder) DecodeLine(text string) string {
	words := splitWords(text)
	if len(words) == 0 {
		words = [][]string{{""}}
	}
	var out []string
	for _, word := range words {
		if s := d.decodeWord(word); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, " ")
}

// DecodeTokens decodes the tokens of one word by greedy longest match.
//
// At each position the longest run of remaining tokens, joined with single
// spaces, is looked up first, then successively shorter runs down to one
// token. The first hit consumes its tokens. When even the single token
// misses, Unknown is emitted and one token is consumed.
func (d *Decoder) DecodeTokens(tokens []string) string {
	var b strings.Builder
	for i := 0; i < len(tokens); {
		span := len(tokens) - i
		if span > d.maxSpan {
			span = d.maxSpan
		}
		for ; span > 0; span-- {
			if v, ok := d.dec[strings.Join(tokens[i:i+span], " ")]; ok {
				b.WriteString(v)
				break
			}
		}
		if span == 0 {
			b.WriteString(Unknown)
			span = 1
		}
		i += span
	}
	return b.String()
}

func (d *Decoder) decodeWord(tokens []string) string {
	if d.cache == nil {
		return d.DecodeTokens(tokens)
	}
	key := strings.Join(tokens, " ")
	if s, ok := d.cache.Get(key); ok {
		return s
	}
	s := d.DecodeTokens(tokens)
	d.cache.Add(key, s)
	return s
}

// splitWords splits text into words of tokens. Words are separated by two or
// more consecutive whitespace characters, tokens by one or more. Empty
// words are dropped.
func splitWords(text string) [][]string {
	var (
		words [][]string
		word  []string
	)
	rs := []rune(text)
	for i := 0; i < len(rs); {
		if !unicode.IsSpace(rs[i]) {
			j := i
			for j < len(rs) && !unicode.IsSpace(rs[j]) {
				j++
			}
			word = append(word, string(rs[i:j]))
			i = j
			continue
		}

		j := i
		for j < len(rs) && unicode.IsSpace(rs[j]) {
			j++
		}
		if j-i >= 2 && len(word) > 0 {
			words = append(words, word)
			word = nil
		}
		i = j
	}
	if len(word) > 0 {
		words = append(words, word)
	}
	return words
}
