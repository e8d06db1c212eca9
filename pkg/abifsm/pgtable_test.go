package abifsm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGTable(t *testing.T) {
	set := daoSet(t)

	ev, ok := set.GetByTopic("ccb45da8")
	require.True(t, ok)
	table, err := set.PGTable(ev, true)
	require.NoError(t, err)
	assert.Equal(t, "mydao_gov_proposal_threshold_set", table)

	t.Run("every table of the dao set", func(t *testing.T) {
		tables, err := set.PGTables(false)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"mydao_token_approval",
			"mydao_token_delegate_changed",
			"mydao_token_delegate_votes_changed",
			"mydao_token_transfer",
			"mydao_gov_proposal_created_324e08f7",
			"mydao_gov_proposal_created_7d84a626",
			"mydao_gov_proposal_created_c8df7ff2",
			"mydao_gov_proposal_executed",
			"mydao_gov_proposal_threshold_set",
			"mydao_gov_upgraded",
			"mydao_gov_vote_cast",
			"mydao_ptc_proposal_type_set",
			"mydao_ptc_scope_created",
		}, tables)
	})

	t.Run("sorted", func(t *testing.T) {
		tables, err := set.PGTables(true)
		require.NoError(t, err)
		require.Len(t, tables, 13)
		assert.Equal(t, "mydao_gov_proposal_created_324e08f7", tables[0])
		assert.Equal(t, "mydao_token_transfer", tables[12])
		assert.IsNonDecreasing(t, tables)
	})

	t.Run("unique and bounded", func(t *testing.T) {
		seen := make(map[string]string)
		for _, ev := range set.Events() {
			table, err := set.PGTable(ev, true)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(table), MaxIdentifierLength)
			if topic, ok := seen[table]; ok {
				assert.Equal(t, topic, ev.Topic(), table)
			}
			seen[table] = ev.Topic()
		}
		assert.NoError(t, set.Validate())
	})

	t.Run("by name and signature", func(t *testing.T) {
		table, err := set.GetPGTableByName("proposal_created", 2)
		require.NoError(t, err)
		assert.Equal(t, "mydao_gov_proposal_created_c8df7ff2", table)

		table, err = set.GetPGTableBySignature("Transfer(address,address,uint256)", 0)
		require.NoError(t, err)
		assert.Equal(t, "mydao_token_transfer", table)

		_, err = set.GetPGTableByName("Nope", 0)
		assert.True(t, errors.Is(err, ErrNotFound))
		_, err = set.GetPGTableBySignature("Transfer()", 0)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestPGTableSameEventInTwoABIs(t *testing.T) {
	// the same event under the same label is one logical event
	set := NewABISet("dao", loadFixture(t, "token", "token"), loadFixture(t, "token", "token"))

	tables, err := set.PGTables(false)
	require.NoError(t, err)
	assert.Len(t, tables, 8)
	assert.Equal(t, tables[:4], tables[4:])
}

func TestPGTableCollision(t *testing.T) {
	abi, err := NewABI("x", []Literal{
		{Type: KindEvent, Name: "FooBar"},
		{Type: KindEvent, Name: "foo_bar"},
	})
	require.NoError(t, err)
	set := NewABISet("dao", abi)

	events := set.Events()
	require.Len(t, events, 2)

	unchecked, err := set.PGTable(events[0], false)
	require.NoError(t, err)
	assert.Equal(t, "dao_x_foo_bar", unchecked)

	_, err = set.PGTable(events[0], true)
	require.Error(t, err)
	var collision NameCollisionError
	require.True(t, errors.As(err, &collision))
	assert.Equal(t, "dao_x_foo_bar", collision.Table)
	assert.True(t, errors.Is(err, ErrNameCollision))

	assert.True(t, errors.Is(set.Validate(), ErrNameCollision))

	_, err = set.PGTables(false)
	assert.True(t, errors.Is(err, ErrNameCollision))
}

func TestPGTableLength(t *testing.T) {
	long := strings.Repeat("VeryLongEventName", 6)

	t.Run("plain slug is cropped", func(t *testing.T) {
		abi, err := NewABI("gov", []Literal{{Type: KindEvent, Name: long}})
		require.NoError(t, err)
		set := NewABISet("mydao", abi)

		table, err := set.PGTable(set.Events()[0], true)
		require.NoError(t, err)
		assert.Len(t, table, MaxIdentifierLength)
		assert.True(t, strings.HasPrefix(table, "mydao_gov_very_long_event_name_"))
	})

	t.Run("overloaded long names lose their suffix and collide", func(t *testing.T) {
		abi, err := NewABI("gov", []Literal{
			{Type: KindEvent, Name: long, Inputs: []Param{{Type: "uint256"}}},
			{Type: KindEvent, Name: long, Inputs: []Param{{Type: "address"}}},
		})
		require.NoError(t, err)
		set := NewABISet("mydao", abi)

		for _, ev := range set.Events() {
			table, _ := set.PGTable(ev, false)
			assert.Len(t, table, MaxIdentifierLength)
		}
		assert.True(t, errors.Is(set.Validate(), ErrNameCollision))
	})

	t.Run("overloaded names that fit keep their suffix", func(t *testing.T) {
		abi, err := NewABI("gov", []Literal{
			{Type: KindEvent, Name: "Deposit", Inputs: []Param{{Type: "address"}, {Type: "uint256"}}},
			{Type: KindEvent, Name: "Deposit", Inputs: []Param{{Type: "address"}, {Type: "uint256"}, {Type: "uint256"}}},
		})
		require.NoError(t, err)
		set := NewABISet("mydao", abi)

		tables, err := set.PGTables(true)
		require.NoError(t, err)
		assert.Equal(t, []string{"mydao_gov_deposit_90890809", "mydao_gov_deposit_e1fffcc4"}, tables)
	})

	t.Run("oversized prefix is still bounded", func(t *testing.T) {
		abi, err := NewABI(strings.Repeat("l", 70), []Literal{{Type: KindEvent, Name: "Ping"}})
		require.NoError(t, err)
		set := NewABISet("dao", abi)

		table, err := set.PGTable(set.Events()[0], true)
		require.NoError(t, err)
		assert.Len(t, table, MaxIdentifierLength)
	})
}
