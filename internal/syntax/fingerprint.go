package syntax

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit hash of the canonical form of the tree rooted
// at n. Descriptions that differ only in layout have the same fingerprint.
func Fingerprint(n *Node) uint64 {
	return xxhash.Sum64String(Format(n))
}

// FingerprintString returns Fingerprint formatted as 16 hex digits.
func FingerprintString(n *Node) string {
	return fmt.Sprintf("%016x", Fingerprint(n))
}
