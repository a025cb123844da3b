package syntax

import "strings"

// Scanner splits a tree description into tokens.
//
// Parentheses are always single-character tokens. Whitespace separates
// tokens and is discarded. Every other maximal run of characters up to the
// next whitespace or parenthesis is a single run: a lone "-" is a dash,
// anything else is a data token. Data tokens are not checked here; the
// parser rejects malformed values.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token
	lit    string
	tokPos Pos

	litBuf strings.Builder
}

// NewScanner returns a Scanner over text. The errh function, if not nil,
// is called for each lexical error.
func NewScanner(filename, text string, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{
		source: *newSource(filename, text, errh),
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
	for isWhitespace(s.ch) {
		s.nextch()
	}

	s.tokPos = s.pos()

	switch s.ch {
	case -1:
		s.tok = _EOF
		s.lit = ""
	case '(':
		s.nextch()
		s.tok = _Lparen
		s.lit = "("
	case ')':
		s.nextch()
		s.tok = _Rparen
		s.lit = ")"
	default:
		s.scanRun()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's text.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// scanRun scans a dash or a data run.
func (s *Scanner) scanRun() {
	s.litBuf.Reset()
	for !isDelimiter(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()

	if s.lit == "-" {
		s.tok = _Dash
	} else {
		s.tok = _Data
	}
}

// Tokenize scans text to the end and returns its tokens in order, excluding EOF.
func Tokenize(text string) []Item {
	s := NewScanner("", text, nil)
	var items []Item
	for {
		s.Next()
		if s.tok.IsEOF() {
			return items
		}
		items = append(items, Item{Tok: s.tok, Lit: s.lit, Pos: s.tokPos})
	}
}

// Item is a scanned token together with its text and position.
type Item struct {
	Tok Token
	Lit string
	Pos Pos
}
