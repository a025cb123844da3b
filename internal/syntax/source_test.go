package syntax

import (
	"strings"
	"testing"
)

func TestSourceBasic(t *testing.T) {
	src := newSource("test", "(A", nil)

	if src.ch != '(' {
		t.Errorf("initial ch = %q, want '('", src.ch)
	}
	if src.line != 1 || src.col != 1 {
		t.Errorf("initial pos = %d:%d, want 1:1", src.line, src.col)
	}

	src.nextch()
	if src.ch != 'A' || src.col != 2 {
		t.Errorf("got ch=%q col=%d, want 'A' col=2", src.ch, src.col)
	}

	src.nextch()
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
}

func TestSourceNewline(t *testing.T) {
	src := newSource("test", "(\n*", nil)

	src.nextch() // '\n' at 1:2
	if src.ch != '\n' || src.line != 1 || src.col != 2 {
		t.Errorf("got ch=%q pos=%d:%d, want '\\n' 1:2", src.ch, src.line, src.col)
	}

	src.nextch() // '*' at 2:1
	if src.ch != '*' || src.line != 2 || src.col != 1 {
		t.Errorf("got ch=%q pos=%d:%d, want '*' 2:1", src.ch, src.line, src.col)
	}
}

func TestSourceEmpty(t *testing.T) {
	src := newSource("test", "", nil)
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1", src.ch)
	}
}

func TestSourceRuneColumns(t *testing.T) {
	src := newSource("test", "é(A", nil)
	src.nextch()
	if src.ch != '(' || src.col != 2 || src.offs != 3 {
		t.Errorf("got ch=%q col=%d offs=%d, want '(' col=2 offs=3", src.ch, src.col, src.offs)
	}
}

func TestSourceInvalidUTF8(t *testing.T) {
	var msgs []string
	errh := func(line, col uint32, msg string) {
		msgs = append(msgs, msg)
	}
	src := newSource("test", "\xff", errh)
	if src.ch == -1 {
		t.Fatal("invalid byte should still be delivered as a character")
	}
	if len(msgs) != 1 || !strings.Contains(msgs[0], "UTF-8") {
		t.Errorf("errors = %v, want one UTF-8 error", msgs)
	}
}

func TestIsDelimiter(t *testing.T) {
	for _, r := range []rune{-1, '(', ')', ' ', '\t', '\n', '\r', ' '} {
		if !isDelimiter(r) {
			t.Errorf("isDelimiter(%q) = false", r)
		}
	}
	for _, r := range []rune{'A', '*', '-', '#', 'a'} {
		if isDelimiter(r) {
			t.Errorf("isDelimiter(%q) = true", r)
		}
	}
}
