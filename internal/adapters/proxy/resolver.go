package proxy

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/voteagora/abifsm-go/internal/config"
	"github.com/voteagora/abifsm-go/internal/domain"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// Resolver reads proxy implementation slots over JSON-RPC
type Resolver struct {
	endpoints map[string]string
	registry  usecase.ChainRegistry
	log       *slog.Logger
}

// NewResolver creates a new proxy resolver
func NewResolver(cfg *config.RuntimeConfig, registry usecase.ChainRegistry, log *slog.Logger) *Resolver {
	return &Resolver{
		endpoints: cfg.RPCEndpoints,
		registry:  registry,
		log:       log.With("component", "ProxyResolver"),
	}
}

// Endpoint returns the RPC URL configured for chainID, keyed either by the
// decimal id or by the chain slug
func (r *Resolver) Endpoint(chainID uint64) (string, error) {
	if url, ok := r.endpoints[strconv.FormatUint(chainID, 10)]; ok && url != "" {
		return url, nil
	}
	chain, ok := r.registry.Lookup(chainID)
	if !ok {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidChainID, chainID)
	}
	if url, ok := r.endpoints[chain.Slug]; ok && url != "" {
		return url, nil
	}
	return "", fmt.Errorf("%w for %s (%d)", domain.ErrNoRPCEndpoint, chain.Slug, chainID)
}

// ResolveImplementation reads the address stored in slot of proxy
func (r *Resolver) ResolveImplementation(ctx context.Context, chainID uint64, proxy common.Address, slot common.Hash) (common.Address, error) {
	url, err := r.Endpoint(chainID)
	if err != nil {
		return common.Address{}, err
	}

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	r.log.Debug("reading implementation slot", "chain", chainID, "proxy", proxy.Hex(), "slot", slot.Hex())
	value, err := client.StorageAt(ctx, proxy, slot, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read storage: %w", err)
	}

	impl := common.BytesToAddress(value)
	if impl == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %s", domain.ErrNoImplementation, proxy.Hex())
	}
	return impl, nil
}

var _ usecase.ProxyResolver = (*Resolver)(nil)
