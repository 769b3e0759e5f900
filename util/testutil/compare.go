package testutil

import (
	"fmt"
	"strings"
)

// Non-empty lines with the surrounding spaces removed.
func Lines(str string) []string {
	u := []string{}
	for _, s := range strings.Split(str, "\n") {
		if s = strings.TrimSpace(s); s != "" {
			u = append(u, s)
		}
	}
	return u
}

// Compares the non-empty lines of two outputs. The error names the first differing line.
func CompareLines(res, expect string) error {
	a, b := Lines(res), Lines(expect)
	for i := 0; i < len(a) || i < len(b); i++ {
		switch {
		case i >= len(a):
			return fmt.Errorf("line %d: missing result\nexpect: %v", i+1, b[i])
		case i >= len(b):
			return fmt.Errorf("line %d: unexpected result\nresult: %v", i+1, a[i])
		case a[i] != b[i]:
			return fmt.Errorf("line %d:\nresult: %v\nexpect: %v", i+1, a[i], b[i])
		}
	}
	return nil
}
