package syntax

import "strings"

// DefaultTree is the international Morse code for letters and digits.
// Nodes with no symbol of their own carry the "*" placeholder.
const DefaultTree = "(((((5 H 4) S (- V 3)) I (F U (- * 2))) E ((L R -) A (P W (- J 1)))) * " +
	"((((6 B -) D X) N (C K Y)) T (((7 Z -) G Q) M ((8 * -) O (9 * 0)))))"

// LettersTree is the Morse tree restricted to the 26 letters.
const LettersTree = "((((H S V) I (F U -)) E ((L R -) A (P W J))) * " +
	"(((B D X) N (C K Y)) T ((Z G Q) M O)))"

// ParseTree parses and validates a tree description.
func ParseTree(text string) (*Tree, error) {
	return Parse("", text, nil)
}

// ValidateTree reports whether text is a valid tree description.
func ValidateTree(text string) bool {
	_, err := ParseTree(text)
	return err == nil
}

// Parse parses and validates a tree description read from filename.
// Ignoring surrounding whitespace, text must start with '(' and end with ')';
// otherwise it is rejected before any token is scanned. The errh function,
// if not nil, receives the error that rejected the tree.
func Parse(filename, text string, errh func(pos Pos, msg string)) (*Tree, error) {
	trimmed := strings.TrimSpace(text)
	start := strings.Index(text, trimmed)

	var err error
	switch {
	case trimmed == "":
		err = &StructuralError{Pos: posAt(filename, text, len(text)), Msg: "empty tree"}
	case trimmed[0] != '(':
		err = &StructuralError{Pos: posAt(filename, text, start), Msg: "tree must start with ("}
	case trimmed[len(trimmed)-1] != ')':
		err = &StructuralError{Pos: posAt(filename, text, start+len(trimmed)-1), Msg: "tree must end with )"}
	}
	if err != nil {
		if errh != nil {
			se := err.(*StructuralError)
			errh(se.Pos, se.Msg)
		}
		return nil, err
	}

	return NewParser(filename, text, errh).Parse()
}

// posAt returns the position of byte offset offs in text.
func posAt(filename, text string, offs int) Pos {
	line, col := uint32(1), uint32(1)
	for i, r := range text {
		if i >= offs {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return NewPos(filename, line, col)
}
