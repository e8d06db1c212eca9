package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voteagora/abifsm-go/internal/config"
	"github.com/voteagora/abifsm-go/internal/domain"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

func TestListChains(t *testing.T) {
	ctx := context.Background()
	chains := []domain.Chain{
		{ID: 1, Name: "Ethereum Mainnet", Slug: "eth"},
		{ID: 10, Name: "OP Mainnet", Slug: "oeth"},
		{ID: 8453, Name: "Base", Slug: "base"},
	}
	cfg := &config.RuntimeConfig{RPCEndpoints: map[string]string{
		"1":    "https://eth.example",
		"base": "https://base.example",
	}}

	t.Run("all chains", func(t *testing.T) {
		registry := new(MockChainRegistry)
		registry.On("Chains").Return(chains)

		result, err := usecase.NewListChains(cfg, registry).Run(ctx, usecase.ListChainsParams{})

		require.NoError(t, err)
		require.Len(t, result.Chains, 3)
		assert.True(t, result.Chains[0].RPCConfigured)
		assert.False(t, result.Chains[1].RPCConfigured)
		assert.True(t, result.Chains[2].RPCConfigured)
		registry.AssertExpectations(t)
	})

	t.Run("filter", func(t *testing.T) {
		registry := new(MockChainRegistry)
		registry.On("Chains").Return(chains)

		result, err := usecase.NewListChains(cfg, registry).Run(ctx, usecase.ListChainsParams{Filter: "MAINNET"})

		require.NoError(t, err)
		require.Len(t, result.Chains, 2)
		assert.Equal(t, uint64(1), result.Chains[0].ID)
		assert.Equal(t, "oeth", result.Chains[1].Slug)
	})
}
