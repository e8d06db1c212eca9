package abifsm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Signatures identifying an upgradeable proxy
const (
	implementationSig = "implementation()"
	upgradeToSig      = "upgradeTo(address)"
)

// ABI is the ordered fragment set of one contract version
type ABI struct {
	label     string
	fragments []*Fragment
}

// NewABI builds an ABI from raw entries. Fragments are ordered by name then
// topic, and every event whose name is shared by another event is marked to
// carry a topic suffix in its table name.
func NewABI(label string, literals []Literal) (*ABI, error) {
	fragments := make([]*Fragment, 0, len(literals))
	for i, lit := range literals {
		f, err := NewFragment(label, lit)
		if err != nil {
			return nil, MalformedDescriptorError{Label: label, Position: i, Reason: "missing type"}
		}
		fragments = append(fragments, f)
	}

	sort.SliceStable(fragments, func(i, j int) bool {
		ki, kj := fragments[i].sortKey(), fragments[j].sortKey()
		if ki != kj {
			return ki < kj
		}
		return fragments[i].topic < fragments[j].topic
	})

	counts := lo.CountValuesBy(
		lo.Filter(fragments, func(f *Fragment, _ int) bool { return f.IsEvent() }),
		func(f *Fragment) string { return f.sortKey() },
	)
	for _, f := range fragments {
		f.includeTopic = counts[f.sortKey()] > 1
	}

	return &ABI{label: label, fragments: fragments}, nil
}

// ParseABI decodes either a bare JSON array of entries or a compiler artifact
// object carrying the entries under "abi".
func ParseABI(label string, data []byte) (*ABI, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("abi %s: empty document", label)
	}

	var literals []Literal
	if data[0] == '{' {
		var artifact struct {
			ABI []Literal `json:"abi"`
		}
		if err := json.Unmarshal(data, &artifact); err != nil {
			return nil, fmt.Errorf("abi %s: failed to decode artifact: %w", label, err)
		}
		if artifact.ABI == nil {
			return nil, fmt.Errorf("abi %s: artifact has no abi field", label)
		}
		literals = artifact.ABI
	} else if err := json.Unmarshal(data, &literals); err != nil {
		return nil, fmt.Errorf("abi %s: failed to decode: %w", label, err)
	}

	return NewABI(label, literals)
}

// Label identifies this ABI within an ABISet
func (a *ABI) Label() string { return a.label }

// Len returns the number of fragments
func (a *ABI) Len() int { return len(a.fragments) }

// Fragments returns the ordered fragments. The slice is a copy.
func (a *ABI) Fragments() []*Fragment {
	return append([]*Fragment(nil), a.fragments...)
}

// Literals returns the raw entries in fragment order
func (a *ABI) Literals() []Literal {
	return lo.Map(a.fragments, func(f *Fragment, _ int) Literal { return f.literal })
}

// Signatures returns the canonical signature of every fragment in order
func (a *ABI) Signatures() []string {
	return lo.Map(a.fragments, func(f *Fragment, _ int) string { return f.signature })
}

// IsProxy reports whether the ABI exposes implementation() and upgradeTo(address)
func (a *ABI) IsProxy() bool {
	functions := lo.FilterMap(a.fragments, func(f *Fragment, _ int) (string, bool) {
		return f.signature, f.IsFunction()
	})
	return lo.Contains(functions, implementationSig) && lo.Contains(functions, upgradeToSig)
}
