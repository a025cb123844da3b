package syntax

import (
	"unicode"
	"unicode/utf8"
)

// source walks a tree description rune by rune, tracking the line and
// column of the current rune. Columns count runes, not bytes.
type source struct {
	text     string
	filename string

	ch   rune   // current rune, -1 at end of text
	offs int    // byte offset of the rune after ch
	line uint32 // line of ch
	col  uint32 // column of ch

	errh func(line, col uint32, msg string)
}

func newSource(filename, text string, errh func(line, col uint32, msg string)) *source {
	s := &source{text: text, filename: filename, line: 1, errh: errh}
	s.nextch()
	return s
}

// nextch moves to the next rune. An invalid UTF-8 byte is reported and
// delivered as utf8.RuneError.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.text) {
		s.ch = -1
		return
	}
	r, width := utf8.DecodeRuneInString(s.text[s.offs:])
	s.ch = r
	s.offs += width
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// error reports a lexical error at the current position.
func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col, msg)
	}
}

// isWhitespace reports whether r separates tokens.
func isWhitespace(r rune) bool {
	return r >= 0 && unicode.IsSpace(r)
}

// isDelimiter reports whether r ends a data run.
func isDelimiter(r rune) bool {
	return r < 0 || r == '(' || r == ')' || isWhitespace(r)
}
