package abifsm

import "strings"

const tupleType = "tuple"

// canonicalType renders one parameter as it appears in a canonical signature.
// Tuples expand to their component types, keeping any array suffix
// (tuple[] -> (t1,t2)[], tuple[2][] -> (t1,t2)[2][]).
func canonicalType(p Param) string {
	if !strings.HasPrefix(p.Type, tupleType) {
		return p.Type
	}
	suffix := p.Type[len(tupleType):]
	return "(" + canonicalTypes(p.Components) + ")" + suffix
}

func canonicalTypes(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = canonicalType(p)
	}
	return strings.Join(parts, ",")
}

// Signature returns the canonical name(t1,t2,...) form. An unnamed entry
// (fallback, receive, constructor) renders as "(...)".
func Signature(name string, params []Param) string {
	return name + "(" + canonicalTypes(params) + ")"
}
