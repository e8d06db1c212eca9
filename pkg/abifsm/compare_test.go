package abifsm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voteagora/abifsm-go/pkg/ndiff"
)

func TestCompareSelf(t *testing.T) {
	set := daoSet(t)

	sigs := CompareSignatures(set, set)
	assert.Len(t, sigs, len(set.Fragments()))
	assert.False(t, ndiff.Changed(sigs))

	events := CompareEvents(set, set)
	assert.Len(t, events, 13)
	assert.False(t, ndiff.Changed(events))

	tables, err := CompareTables(set, set)
	require.NoError(t, err)
	assert.Len(t, tables, 13)
	assert.False(t, ndiff.Changed(tables))
}

func TestCompareVersions(t *testing.T) {
	token := loadFixture(t, "1", "token")

	upgraded, err := NewABI("2", append(token.Literals(), Literal{
		Type:   KindEvent,
		Name:   "Paused",
		Inputs: []Param{{Name: "account", Type: "address"}},
	}))
	require.NoError(t, err)

	before := NewABISet("1", token)
	after := NewABISet("2", upgraded)

	events := CompareEvents(before, after)
	assert.Contains(t, events, "+ Paused(address)")
	assert.Contains(t, events, "  Transfer(address,address,uint256)")
	assert.NotContains(t, strings.Join(events, "\n"), "- ")

	sigs := CompareSignatures(after, before)
	assert.Contains(t, sigs, "- Paused(address)")

	tables, err := CompareTables(before, after)
	require.NoError(t, err)
	assert.Contains(t, tables, "- 1_1_transfer")
	assert.Contains(t, tables, "+ 2_2_transfer")
}

func TestCompareTablesCollision(t *testing.T) {
	abi, err := NewABI("x", []Literal{
		{Type: KindEvent, Name: "FooBar"},
		{Type: KindEvent, Name: "foo_bar"},
	})
	require.NoError(t, err)
	bad := NewABISet("dao", abi)

	_, err = CompareTables(daoSet(t), bad)
	assert.True(t, errors.Is(err, ErrNameCollision))
	_, err = CompareTables(bad, daoSet(t))
	assert.True(t, errors.Is(err, ErrNameCollision))
}
