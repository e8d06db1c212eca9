package chains

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/voteagora/abifsm-go/internal/domain"
	"github.com/voteagora/abifsm-go/internal/usecase"
	"gopkg.in/yaml.v3"
)

//go:embed chains.yaml
var chainsYAML []byte

type entry struct {
	ID        uint64 `yaml:"id"`
	Name      string `yaml:"name"`
	ShortName string `yaml:"short_name"`
}

// Registry is the set of known chains
type Registry struct {
	chains []domain.Chain
	byID   map[uint64]domain.Chain
	bySlug map[string]domain.Chain
}

// NewRegistry loads the embedded chain list
func NewRegistry() (*Registry, error) {
	return Parse(chainsYAML)
}

// Parse builds a registry from a YAML chain list
func Parse(data []byte) (*Registry, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse chain list: %w", err)
	}

	r := &Registry{
		chains: make([]domain.Chain, 0, len(entries)),
		byID:   make(map[uint64]domain.Chain, len(entries)),
		bySlug: make(map[string]domain.Chain, len(entries)),
	}
	for _, e := range entries {
		chain := domain.Chain{ID: e.ID, Name: e.Name, Slug: domain.MakeSymbol(e.ShortName)}
		if _, dup := r.byID[chain.ID]; dup {
			return nil, fmt.Errorf("%w: %d listed twice", domain.ErrInvalidChainID, chain.ID)
		}
		r.chains = append(r.chains, chain)
		r.byID[chain.ID] = chain
		r.bySlug[chain.Slug] = chain
	}
	sort.Slice(r.chains, func(i, j int) bool { return r.chains[i].ID < r.chains[j].ID })

	return r, nil
}

// Chains returns every known chain ordered by id
func (r *Registry) Chains() []domain.Chain {
	out := make([]domain.Chain, len(r.chains))
	copy(out, r.chains)
	return out
}

// Lookup finds a chain by id
func (r *Registry) Lookup(chainID uint64) (domain.Chain, bool) {
	chain, ok := r.byID[chainID]
	return chain, ok
}

// BySlug finds a chain by slug, case-insensitively
func (r *Registry) BySlug(slug string) (domain.Chain, bool) {
	chain, ok := r.bySlug[domain.MakeSymbol(strings.TrimSpace(slug))]
	return chain, ok
}

var _ usecase.ChainRegistry = (*Registry)(nil)
