package domain

import "strings"

// Chain is an entry of the chain registry
type Chain struct {
	ID   uint64
	Name string
	Slug string
}

// MakeSymbol derives a chain slug from its short name
func MakeSymbol(name string) string {
	return strings.NewReplacer(".", "", "-", "", "_", "", " ", "").Replace(strings.ToLower(name))
}
