package syntax

// Node is a vertex of a code tree. A nil *Node is an absent child.
//
// Value is a data run such as "E" or "AB", or the RootMarker. Each node
// exclusively owns its children.
type Node struct {
	pos   Pos
	Value string
	Left  *Node // reached by appending '.' to the codeword
	Right *Node // reached by appending '-' to the codeword
}

// Pos returns the position of the first character belonging to the node:
// the opening parenthesis for internal nodes, the value for leaves.
func (n *Node) Pos() Pos { return n.pos }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// IsMarker reports whether n holds the root marker.
func (n *Node) IsMarker() bool {
	return n.Value == RootMarker
}

// Tree is a validated code tree.
type Tree struct {
	Root *Node

	// FirstMarker is the position of the first "*" value seen while parsing.
	// It is recorded only; further markers are legal placeholders.
	FirstMarker Pos
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	n := 0
	Walk(t.Root, func(*Node, string) bool {
		n++
		return true
	})
	return n
}

// Depth returns the length of the longest codeword path in the tree.
func (t *Tree) Depth() int {
	depth := 0
	Walk(t.Root, func(_ *Node, path string) bool {
		if len(path) > depth {
			depth = len(path)
		}
		return true
	})
	return depth
}
