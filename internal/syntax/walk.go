package syntax

// Path steps appended when descending into a child.
const (
	StepLeft  = '.'
	StepRight = '-'
)

// Visitor is called for each node during Walk with the codeword path that
// leads to it from the root. If it returns false, the children of the node
// are not visited.
type Visitor func(node *Node, path string) bool

// Walk traverses a tree in pre-order: the node itself, then its left
// subtree, then its right subtree. The root is visited with an empty path.
func Walk(root *Node, v Visitor) {
	walk(root, "", v)
}

func walk(n *Node, path string, v Visitor) {
	if n == nil || !v(n, path) {
		return
	}
	walk(n.Left, path+string(StepLeft), v)
	walk(n.Right, path+string(StepRight), v)
}
