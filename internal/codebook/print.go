package codebook

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/you-not-fish/codetree/internal/syntax"
)

// Fprint writes the decoding table to w, one codeword per line, in
// Codewords order.
func Fprint(w io.Writer, dec Decoding) {
	codes := Codewords(dec)
	width := len("CODE")
	for _, code := range codes {
		if len(code) > width {
			width = len(code)
		}
	}

	fmt.Fprintf(w, "%-*s  %s\n", width, "CODE", "VALUE")
	fmt.Fprintf(w, "%s  %s\n", strings.Repeat("-", width), strings.Repeat("-", len("VALUE")))
	for _, code := range codes {
		fmt.Fprintf(w, "%-*s  %s\n", width, code, dec[code])
	}
}

// Codewords returns the keys of dec, shortest first. Codewords of equal
// length are compared step by step with "." before "-", the order in which
// a pre-order walk reaches them.
func Codewords(dec Decoding) []string {
	codes := make([]string, 0, len(dec))
	for code := range dec {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		a, b := codes[i], codes[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := 0; k < len(a); k++ {
			if a[k] != b[k] {
				return stepRank(a[k]) < stepRank(b[k])
			}
		}
		return false
	})
	return codes
}

// stepRank orders the bytes of a codeword.
func stepRank(c byte) int {
	switch c {
	case syntax.StepLeft:
		return 0
	case syntax.StepRight:
		return 1
	}
	return 2 + int(c)
}

// Symbols returns the characters of enc in ascending order.
func Symbols(enc Encoding) []rune {
	syms := make([]rune, 0, len(enc))
	for c := range enc {
		syms = append(syms, c)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
