package abifsm

import (
	"iter"
	"strings"

	"github.com/samber/lo"
)

// ABISet groups the ABIs of one logical deployment under a common name.
// Table names are unique across the whole set.
type ABISet struct {
	name string
	abis []*ABI
}

// NewABISet creates a set; insertion order drives event iteration order
func NewABISet(name string, abis ...*ABI) *ABISet {
	return &ABISet{
		name: name,
		abis: append([]*ABI(nil), abis...),
	}
}

// Name is the prefix shared by every table of the set
func (s *ABISet) Name() string { return s.name }

// ABIs returns the member ABIs in insertion order
func (s *ABISet) ABIs() []*ABI {
	return append([]*ABI(nil), s.abis...)
}

// Fragments returns every fragment of every ABI, ABI by ABI
func (s *ABISet) Fragments() []*Fragment {
	return lo.FlatMap(s.abis, func(a *ABI, _ int) []*Fragment { return a.fragments })
}

// Events returns every event fragment in ABI then fragment order
func (s *ABISet) Events() []*Fragment {
	return lo.Filter(s.Fragments(), func(f *Fragment, _ int) bool { return f.IsEvent() })
}

// UniqueEvents returns Events with repeated signatures dropped, keeping the first
func (s *ABISet) UniqueEvents() []*Fragment {
	return lo.UniqBy(s.Events(), func(f *Fragment) string { return f.signature })
}

// EventsSeq yields the same events as Events without building a slice
func (s *ABISet) EventsSeq() iter.Seq[*Fragment] {
	return func(yield func(*Fragment) bool) {
		for _, a := range s.abis {
			for _, f := range a.fragments {
				if f.IsEvent() && !yield(f) {
					return
				}
			}
		}
	}
}

// GetByTopic returns the first event whose topic equals or starts with key.
// A 0x prefix on key is ignored.
func (s *ABISet) GetByTopic(key string) (*Fragment, bool) {
	key = strings.ToLower(strings.TrimPrefix(key, "0x"))
	for f := range s.EventsSeq() {
		if strings.HasPrefix(f.topic, key) {
			return f, true
		}
	}
	return nil, false
}

// GetByName returns the pos-th event whose slug or name equals key
func (s *ABISet) GetByName(key string, pos int) (*Fragment, bool) {
	return s.nth(pos, func(f *Fragment) bool {
		return f.HasName() && (f.slug == key || f.literal.Name == key)
	})
}

// GetBySignature returns the pos-th event with exactly the given signature
func (s *ABISet) GetBySignature(key string, pos int) (*Fragment, bool) {
	return s.nth(pos, func(f *Fragment) bool { return f.signature == key })
}

func (s *ABISet) nth(pos int, match func(*Fragment) bool) (*Fragment, bool) {
	if pos < 0 {
		return nil, false
	}
	for f := range s.EventsSeq() {
		if !match(f) {
			continue
		}
		if pos == 0 {
			return f, true
		}
		pos--
	}
	return nil, false
}
