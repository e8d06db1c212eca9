package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/voteagora/abifsm-go/internal/config"
	"github.com/voteagora/abifsm-go/internal/domain"
)

// ListChainsParams contains parameters for listing chains
type ListChainsParams struct {
	Filter string // substring of name or slug
}

// ChainStatus is a known chain and whether an RPC endpoint is configured for it
type ChainStatus struct {
	domain.Chain
	RPCConfigured bool
}

// ListChainsResult contains the result of listing chains
type ListChainsResult struct {
	Chains []ChainStatus
}

// ListChains is a use case for listing known chains
type ListChains struct {
	cfg      *config.RuntimeConfig
	registry ChainRegistry
}

// NewListChains creates a new ListChains use case
func NewListChains(cfg *config.RuntimeConfig, registry ChainRegistry) *ListChains {
	return &ListChains{
		cfg:      cfg,
		registry: registry,
	}
}

// Run executes the use case
func (uc *ListChains) Run(ctx context.Context, params ListChainsParams) (*ListChainsResult, error) {
	filter := strings.ToLower(params.Filter)
	chains := lo.Filter(uc.registry.Chains(), func(c domain.Chain, _ int) bool {
		return filter == "" ||
			strings.Contains(strings.ToLower(c.Name), filter) ||
			strings.Contains(c.Slug, filter)
	})

	return &ListChainsResult{
		Chains: lo.Map(chains, func(c domain.Chain, _ int) ChainStatus {
			_, byID := uc.cfg.RPCEndpoints[fmt.Sprint(c.ID)]
			_, bySlug := uc.cfg.RPCEndpoints[c.Slug]
			return ChainStatus{Chain: c, RPCConfigured: byID || bySlug}
		}),
	}, nil
}
