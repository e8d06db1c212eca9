package abifsm

import (
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// Fragment kinds as they appear in the ABI "type" field
const (
	KindFunction    = "function"
	KindEvent       = "event"
	KindConstructor = "constructor"
	KindFallback    = "fallback"
	KindReceive     = "receive"
	KindError       = "error"
)

// topicSuffixLen is the number of topic hex characters appended to slugs of overloaded events
const topicSuffixLen = 8

// Param is one entry of an ABI inputs or outputs list
type Param struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	InternalType string  `json:"internalType,omitempty"`
	Indexed      bool    `json:"indexed,omitempty"`
	Components   []Param `json:"components,omitempty"`
}

// Literal is a raw ABI entry. Raw keeps the entry exactly as it was decoded.
type Literal struct {
	Type            string  `json:"type"`
	Name            string  `json:"name,omitempty"`
	Inputs          []Param `json:"inputs,omitempty"`
	Outputs         []Param `json:"outputs,omitempty"`
	Anonymous       bool    `json:"anonymous,omitempty"`
	StateMutability string  `json:"stateMutability,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known fields and retains the original bytes
func (l *Literal) UnmarshalJSON(data []byte) error {
	type plain Literal
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Literal(p)
	l.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Fragment is one function, event, constructor or fallback entry of an ABI,
// with its derived signature, topic and slug.
type Fragment struct {
	label     string
	literal   Literal
	signature string
	topic     string
	slug      string

	includeTopic bool
}

// NewFragment derives identifiers for a single ABI entry owned by the ABI labelled label.
func NewFragment(label string, lit Literal) (*Fragment, error) {
	if lit.Type == "" {
		return nil, MalformedDescriptorError{Label: label, Position: -1, Reason: "missing type"}
	}

	sig := Signature(lit.Name, lit.Inputs)
	f := &Fragment{
		label:     label,
		literal:   lit,
		signature: sig,
		topic:     strings.TrimPrefix(crypto.Keccak256Hash([]byte(sig)).Hex(), "0x"),
	}
	if lit.Name != "" {
		f.slug = Slugify(lit.Name)
	}
	return f, nil
}

func (f *Fragment) Label() string      { return f.label }
func (f *Fragment) Literal() Literal   { return f.literal }
func (f *Fragment) Kind() string       { return f.literal.Type }
func (f *Fragment) Name() string       { return f.literal.Name }
func (f *Fragment) Inputs() []Param    { return f.literal.Inputs }
func (f *Fragment) Signature() string  { return f.signature }
func (f *Fragment) Topic() string      { return f.topic }
func (f *Fragment) IsEvent() bool      { return f.literal.Type == KindEvent }
func (f *Fragment) IsFunction() bool   { return f.literal.Type == KindFunction }
func (f *Fragment) Anonymous() bool    { return f.literal.Anonymous }
func (f *Fragment) IncludeTopic() bool { return f.includeTopic }

// HasName reports whether the entry declares a name
func (f *Fragment) HasName() bool {
	return f.literal.Name != ""
}

// Slug returns the lower_snake_case name and false for unnamed entries
func (f *Fragment) Slug() (string, bool) {
	return f.slug, f.HasName()
}

// Selector returns the first four bytes of the topic in hex
func (f *Fragment) Selector() string {
	return f.topic[:8]
}

// CroppedSlug returns the slug bounded to maxLen characters. Overloaded
// events get "_" and the first eight topic characters appended before the
// final truncation, so a small maxLen can cut into that suffix.
func (f *Fragment) CroppedSlug(maxLen int) string {
	if !f.includeTopic {
		return truncate(f.slug, maxLen)
	}
	full := truncate(f.slug, maxLen+topicSuffixLen) + "_" + f.topic[:topicSuffixLen]
	return truncate(full, maxLen)
}

// sortKey mirrors how unnamed entries order among named ones
func (f *Fragment) sortKey() string {
	if !f.HasName() {
		return "None"
	}
	return f.literal.Name
}
