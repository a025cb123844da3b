// Package codebook derives the symbol/codeword mappings of a code tree.
package codebook

import (
	"github.com/you-not-fish/codetree/internal/syntax"
)

// Encoding maps a character to the codeword that encodes it.
type Encoding map[rune]string

// Decoding maps a codeword to the value of the node it reaches.
type Decoding map[string]string

// Build walks the tree rooted at root once in pre-order and returns its
// mappings. Nodes holding the root marker contribute nothing.
//
// Every non-marker node records decoding[path] = value. Each character of
// the value is mapped to path unless an earlier node already gave it a path
// that is no longer; the shortest codeword wins and, among equals, the first
// node visited.
func Build(root *syntax.Node) (Encoding, Decoding) {
	enc := make(Encoding)
	dec := make(Decoding)

	syntax.Walk(root, func(n *syntax.Node, path string) bool {
		if n.Value == "" || n.IsMarker() {
			return true
		}
		dec[path] = n.Value
		for _, c := range n.Value {
			if prev, ok := enc[c]; !ok || len(path) < len(prev) {
				enc[c] = path
			}
		}
		return true
	})

	return enc, dec
}

// BuildTree is Build applied to a parsed tree.
func BuildTree(t *syntax.Tree) (Encoding, Decoding) {
	return Build(t.Root)
}
