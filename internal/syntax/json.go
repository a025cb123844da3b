package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the tree rooted at n to w.
func FprintJSON(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(n, ""))
}

func toJSON(n *Node, path string) interface{} {
	if n == nil {
		return nil
	}

	m := map[string]interface{}{
		"value": n.Value,
		"pos":   n.pos.String(),
		"code":  path,
	}
	if !n.IsLeaf() {
		m["left"] = toJSON(n.Left, path+string(StepLeft))
		m["right"] = toJSON(n.Right, path+string(StepRight))
	}
	return m
}
