package abifsm

import (
	"regexp"
	"strings"
)

var (
	// ABIFoo -> ABI_Foo
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	// fooBar -> foo_Bar
	camelBoundary = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Slugify converts a camelCase or PascalCase identifier to lower_snake_case.
func Slugify(name string) string {
	s := acronymBoundary.ReplaceAllString(name, "${1}_${2}")
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.TrimLeft(strings.ToLower(s), "_")
}

// truncate returns at most n leading bytes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n]
}
