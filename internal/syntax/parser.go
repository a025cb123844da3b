package syntax

import (
	"errors"
	"fmt"
)

// ErrInvalidTree is matched by every error the parser returns.
var ErrInvalidTree = errors.New("invalid tree")

// StructuralError reports input that does not follow the tree grammar:
// tokens that run out, an unexpected token, or a malformed value.
type StructuralError struct {
	Pos Pos
	Msg string
}

func (e *StructuralError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Is reports whether target is ErrInvalidTree.
func (e *StructuralError) Is(target error) bool { return target == ErrInvalidTree }

// SemanticError reports a well-formed tree that breaks a validity rule:
// a character used by more than one value, or a root that is not "*".
type SemanticError struct {
	Pos Pos
	Msg string
}

func (e *SemanticError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Is reports whether target is ErrInvalidTree.
func (e *SemanticError) Is(target error) bool { return target == ErrInvalidTree }

// Parser builds a Tree from a token stream by recursive descent with a
// single token of lookahead. Parsing stops at the first error.
//
// A Parser holds the state of one parse (token cursor, characters already
// used, first marker) and must not be reused.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok Token
	lit string
	pos Pos

	errh    func(pos Pos, msg string)
	scanErr error // first lexical error

	used   map[rune]Pos // characters claimed by earlier values
	marker Pos          // first "*" value
}

// NewParser creates a new Parser for text. The errh function, if not nil,
// is called with the error that aborts the parse.
func NewParser(filename, text string, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{
		errh: errh,
		used: make(map[rune]Pos),
	}
	scanErrh := func(line, col uint32, msg string) {
		if p.scanErr == nil {
			p.scanErr = &StructuralError{Pos: NewPos(filename, line, col), Msg: msg}
		}
	}
	p.scanner = NewScanner(filename, text, scanErrh)
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

// found describes the current token for error messages.
func (p *Parser) found() string {
	switch p.tok {
	case _EOF:
		return "end of tree"
	case _Data:
		return fmt.Sprintf("%q", p.lit)
	}
	return p.tok.String()
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) structural(format string, args ...interface{}) error {
	return &StructuralError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) semantic(pos Pos, format string, args ...interface{}) error {
	return &SemanticError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// report forwards err to the error handler and returns it.
func (p *Parser) report(err error) error {
	if p.errh != nil {
		var se *StructuralError
		var me *SemanticError
		switch {
		case errors.As(err, &se):
			p.errh(se.Pos, se.Msg)
		case errors.As(err, &me):
			p.errh(me.Pos, me.Msg)
		}
	}
	return err
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the complete token stream. The whole stream must form one
// node and the root value must be the RootMarker. No partial tree is
// returned on error.
func (p *Parser) Parse() (*Tree, error) {
	root, err := p.node()
	if err == nil && p.scanErr == nil && p.tok != _EOF {
		err = p.structural("unexpected %s after tree", p.found())
	}
	if p.scanErr != nil {
		err = p.scanErr
	}
	if err == nil {
		switch {
		case root == nil:
			err = p.semantic(p.pos, "tree has no root")
		case root.Value != RootMarker:
			err = p.semantic(root.pos, "root value is %q, want %q", root.Value, RootMarker)
		}
	}
	if err != nil {
		return nil, p.report(err)
	}
	return &Tree{Root: root, FirstMarker: p.marker}, nil
}

// ----------------------------------------------------------------------------
// Nodes

// node parses
//
//	node := '-' | '(' node value node ')' | value
//
// and returns nil for '-'.
func (p *Parser) node() (*Node, error) {
	switch p.tok {
	case _EOF:
		return nil, p.structural("unexpected end of tree, expected node")

	case _Dash:
		p.next()
		return nil, nil

	case _Lparen:
		open := p.pos
		p.next()

		left, err := p.node()
		if err != nil {
			return nil, err
		}
		n, err := p.value()
		if err != nil {
			return nil, err
		}
		right, err := p.node()
		if err != nil {
			return nil, err
		}

		if p.tok != _Rparen {
			return nil, p.structural("expected ) to close node at %s, found %s", open, p.found())
		}
		p.next()

		n.pos = open
		n.Left = left
		n.Right = right
		return n, nil
	}

	return p.value()
}

// value consumes a value token, checks its pattern and claims its
// characters, and returns it as a leaf.
func (p *Parser) value() (*Node, error) {
	if p.tok == _EOF {
		return nil, p.structural("unexpected end of tree, expected value")
	}
	if p.tok != _Data || !isValidValue(p.lit) {
		return nil, p.structural("invalid value %s: want [A-Z0-9]+ or %s", p.found(), RootMarker)
	}

	n := &Node{pos: p.pos, Value: p.lit}
	if err := p.claim(n); err != nil {
		return nil, err
	}
	p.next()
	return n, nil
}

// claim records the characters of n's value, failing on any character
// already claimed by this or an earlier value. The first marker is noted.
func (p *Parser) claim(n *Node) error {
	if n.Value == RootMarker {
		if !p.marker.IsValid() {
			p.marker = n.pos
		}
		return nil
	}
	for _, c := range n.Value {
		if prev, ok := p.used[c]; ok {
			return p.semantic(n.pos, "character %q in value %q already used at %s", c, n.Value, prev)
		}
		p.used[c] = n.pos
	}
	return nil
}
