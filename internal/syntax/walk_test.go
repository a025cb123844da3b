package syntax

import (
	"reflect"
	"testing"
)

func TestWalkPaths(t *testing.T) {
	tree := parseTree(t, "((I E A) * (N T -))")

	var values, paths []string
	Walk(tree.Root, func(n *Node, path string) bool {
		values = append(values, n.Value)
		paths = append(paths, path)
		return true
	})

	wantValues := []string{"*", "E", "I", "A", "T", "N"}
	wantPaths := []string{"", ".", "..", ".-", "-", "-."}
	if !reflect.DeepEqual(values, wantValues) {
		t.Errorf("values = %v, want %v", values, wantValues)
	}
	if !reflect.DeepEqual(paths, wantPaths) {
		t.Errorf("paths = %v, want %v", paths, wantPaths)
	}
}

func TestWalkPrune(t *testing.T) {
	tree := parseTree(t, "((I E A) * (N T -))")

	var values []string
	Walk(tree.Root, func(n *Node, path string) bool {
		values = append(values, n.Value)
		return n.Value != "E"
	})

	want := []string{"*", "E", "T", "N"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
}

func TestWalkNil(t *testing.T) {
	called := false
	Walk(nil, func(*Node, string) bool {
		called = true
		return true
	})
	if called {
		t.Error("visitor called for nil root")
	}
}
