package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voteagora/abifsm-go/internal/domain"
)

func TestRegistry(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	t.Run("lookup by id", func(t *testing.T) {
		chain, ok := r.Lookup(10)
		require.True(t, ok)
		assert.Equal(t, domain.Chain{ID: 10, Name: "OP Mainnet", Slug: "oeth"}, chain)

		_, ok = r.Lookup(999999)
		assert.False(t, ok)
	})

	t.Run("lookup by slug", func(t *testing.T) {
		chain, ok := r.BySlug("OP-Sep")
		require.True(t, ok)
		assert.Equal(t, uint64(11155420), chain.ID)

		_, ok = r.BySlug("nope")
		assert.False(t, ok)
	})

	t.Run("chains are ordered by id", func(t *testing.T) {
		chains := r.Chains()
		require.NotEmpty(t, chains)
		assert.Equal(t, uint64(1), chains[0].ID)
		for i := 1; i < len(chains); i++ {
			assert.Less(t, chains[i-1].ID, chains[i].ID)
		}
	})
}

func TestParse(t *testing.T) {
	r, err := Parse([]byte(`
- id: 5
  name: Goerli
  short_name: gor
- id: 3
  name: Test Net
  short_name: Test_Net-1
`))
	require.NoError(t, err)
	assert.Equal(t, []domain.Chain{
		{ID: 3, Name: "Test Net", Slug: "testnet1"},
		{ID: 5, Name: "Goerli", Slug: "gor"},
	}, r.Chains())

	_, err = Parse([]byte("- id: 1\n  short_name: a\n- id: 1\n  short_name: b\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidChainID)

	_, err = Parse([]byte("{not a list"))
	assert.Error(t, err)
}
