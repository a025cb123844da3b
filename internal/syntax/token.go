// Package syntax implements lexical and syntactic analysis of code-tree
// descriptions.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	_EOF Token = iota // end of input

	// Structural tokens
	_Lparen // (
	_Rparen // )
	_Dash   // - (absent child)

	// Data run: node value such as E, 0, AB or the root marker *
	_Data

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:    "EOF",
	_Lparen: "(",
	_Rparen: ")",
	_Dash:   "-",
	_Data:   "DATA",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsStructural reports whether t is one of the single-character tokens
// that shape the tree.
func (t Token) IsStructural() bool {
	return t >= _Lparen && t <= _Dash
}

// RootMarker is the value required at the root of every tree. Nodes holding
// it contribute no codeword.
const RootMarker = "*"

// isValidValue reports whether v is a legal node value: one or more of
// [A-Z0-9], or exactly the root marker.
func isValidValue(v string) bool {
	if v == RootMarker {
		return true
	}
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if !('A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
