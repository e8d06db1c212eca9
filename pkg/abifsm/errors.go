package abifsm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for fragment set operations
var (
	// ErrNotFound is returned when a lookup composed with table naming matches no event
	ErrNotFound = errors.New("not found")

	// ErrMalformedDescriptor is returned when a raw ABI entry has no type
	ErrMalformedDescriptor = errors.New("malformed descriptor")

	// ErrNameCollision is returned when two distinct events map to the same table name
	ErrNameCollision = errors.New("table name collision")

	// ErrKeyNotFound is returned when qualified name resolution matches no event
	ErrKeyNotFound = errors.New("key not found")
)

// MalformedDescriptorError reports an ABI entry that cannot be turned into a Fragment
type MalformedDescriptorError struct {
	Label    string
	Position int
	Reason   string
}

func (e MalformedDescriptorError) Error() string {
	return fmt.Sprintf("malformed descriptor at position %d in ABI %q: %s", e.Position, e.Label, e.Reason)
}

func (e MalformedDescriptorError) Is(target error) bool {
	return target == ErrMalformedDescriptor
}

// NameCollisionError reports a table name shared by two events with different topics
type NameCollisionError struct {
	Table      string
	Topic      string
	OtherTopic string
}

func (e NameCollisionError) Error() string {
	return fmt.Sprintf("postgres table %s is not unique enough (topics %s and %s)", e.Table, e.Topic, e.OtherTopic)
}

func (e NameCollisionError) Is(target error) bool {
	return target == ErrNameCollision
}

// KeyNotFoundError reports a qualified name lookup with no matching event
type KeyNotFoundError struct {
	Key         string
	Suggestions []string
}

func (e KeyNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no event matches key %q", e.Key)
	}
	return fmt.Sprintf("no event matches key %q, did you mean:\n  - %s", e.Key, strings.Join(e.Suggestions, "\n  - "))
}

func (e KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
