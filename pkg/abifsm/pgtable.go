package abifsm

import (
	"fmt"
	"sort"
)

// MaxIdentifierLength is the PostgreSQL limit on identifier length
const MaxIdentifierLength = 63

// tableName computes the bounded candidate name without checking for collisions
func (s *ABISet) tableName(event *Fragment) string {
	prefix := s.name + "_" + event.label + "_"
	return truncate(prefix+event.CroppedSlug(MaxIdentifierLength-len(prefix)), MaxIdentifierLength)
}

// PGTable returns the table name for event. With check set, the name is
// compared against the names of every other event in the set; events
// sharing a topic are the same logical event and never collide.
func (s *ABISet) PGTable(event *Fragment, check bool) (string, error) {
	out := s.tableName(event)
	if !check {
		return out, nil
	}

	for other := range s.EventsSeq() {
		if other.topic == event.topic {
			continue
		}
		if s.tableName(other) == out {
			return "", NameCollisionError{Table: out, Topic: event.topic, OtherTopic: other.topic}
		}
	}
	return out, nil
}

// Validate checks that no two distinct events of the set share a table name
func (s *ABISet) Validate() error {
	owners := make(map[string]string)
	for f := range s.EventsSeq() {
		name := s.tableName(f)
		topic, seen := owners[name]
		if !seen {
			owners[name] = f.topic
			continue
		}
		if topic != f.topic {
			return NameCollisionError{Table: name, Topic: topic, OtherTopic: f.topic}
		}
	}
	return nil
}

// PGTables returns the table name of every event, in iteration order or sorted
func (s *ABISet) PGTables(sorted bool) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var tables []string
	for f := range s.EventsSeq() {
		tables = append(tables, s.tableName(f))
	}
	if sorted {
		sort.Strings(tables)
	}
	return tables, nil
}

// GetPGTableByName resolves the pos-th event named key to its table name
func (s *ABISet) GetPGTableByName(key string, pos int) (string, error) {
	event, ok := s.GetByName(key, pos)
	if !ok {
		return "", fmt.Errorf("event %q at position %d: %w", key, pos, ErrNotFound)
	}
	return s.PGTable(event, true)
}

// GetPGTableBySignature resolves the pos-th event with signature key to its table name
func (s *ABISet) GetPGTableBySignature(key string, pos int) (string, error) {
	event, ok := s.GetBySignature(key, pos)
	if !ok {
		return "", fmt.Errorf("event signature %q at position %d: %w", key, pos, ErrNotFound)
	}
	return s.PGTable(event, true)
}
