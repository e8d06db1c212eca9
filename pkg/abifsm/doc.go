// Package abifsm manages sets of contract ABI fragments: it derives canonical
// signatures, Keccak-256 topics and snake_case slugs for every fragment, and
// maps each event of a set to a unique PostgreSQL table name of at most 63
// characters.
package abifsm
