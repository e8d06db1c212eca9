package abifsm

import (
	"github.com/samber/lo"

	"github.com/voteagora/abifsm-go/pkg/ndiff"
)

// CompareTables diffs the unsorted table names of two sets
func CompareTables(a, b *ABISet) ([]string, error) {
	left, err := a.PGTables(false)
	if err != nil {
		return nil, err
	}
	right, err := b.PGTables(false)
	if err != nil {
		return nil, err
	}
	return ndiff.Compare(left, right), nil
}

// CompareSignatures diffs the signatures of every fragment of two sets
func CompareSignatures(a, b *ABISet) []string {
	return ndiff.Compare(signatures(a.Fragments()), signatures(b.Fragments()))
}

// CompareEvents diffs the event signatures of two sets
func CompareEvents(a, b *ABISet) []string {
	return ndiff.Compare(signatures(a.Events()), signatures(b.Events()))
}

func signatures(fragments []*Fragment) []string {
	return lo.Map(fragments, func(f *Fragment, _ int) string { return f.signature })
}
