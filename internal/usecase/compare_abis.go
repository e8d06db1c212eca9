package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/voteagora/abifsm-go/internal/config"
	"github.com/voteagora/abifsm-go/internal/domain"
	"github.com/voteagora/abifsm-go/pkg/abifsm"
)

// Labels of the two compared interfaces
const (
	LeftLabel  = "1"
	RightLabel = "2"
)

// CompareABIsParams contains parameters for comparing two interfaces
type CompareABIsParams struct {
	Left   string
	Right  string
	Tables bool
}

// ComparedABI describes one side of a comparison
type ComparedABI struct {
	Ref            string
	Proxy          bool
	Implementation string // set when the proxy was followed
	Fragments      int
}

// CompareABIsResult contains the ndiff deltas of both sides
type CompareABIsResult struct {
	Left       ComparedABI
	Right      ComparedABI
	Signatures []string
	Events     []string
	Tables     []string
}

// CompareABIs diffs the signatures, events and optionally tables of two interfaces
type CompareABIs struct {
	cfg      *config.RuntimeConfig
	source   ABISource
	proxy    ProxyResolver
	progress ProgressSink
	log      *slog.Logger
}

// NewCompareABIs creates a new CompareABIs use case
func NewCompareABIs(
	cfg *config.RuntimeConfig,
	source ABISource,
	proxy ProxyResolver,
	progress ProgressSink,
	log *slog.Logger,
) *CompareABIs {
	return &CompareABIs{
		cfg:      cfg,
		source:   source,
		proxy:    proxy,
		progress: progress,
		log:      log.With("component", "CompareABIs"),
	}
}

// Run executes the use case
func (uc *CompareABIs) Run(ctx context.Context, params CompareABIsParams) (*CompareABIsResult, error) {
	left, leftInfo, err := uc.load(ctx, LeftLabel, params.Left)
	if err != nil {
		return nil, err
	}
	right, rightInfo, err := uc.load(ctx, RightLabel, params.Right)
	if err != nil {
		return nil, err
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "compare", Message: "Comparing"})

	leftSet := abifsm.NewABISet(LeftLabel, left)
	rightSet := abifsm.NewABISet(RightLabel, right)

	result := &CompareABIsResult{
		Left:       *leftInfo,
		Right:      *rightInfo,
		Signatures: abifsm.CompareSignatures(leftSet, rightSet),
		Events:     abifsm.CompareEvents(leftSet, rightSet),
	}

	if params.Tables {
		result.Tables, err = abifsm.CompareTables(leftSet, rightSet)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// load fetches one side, following the proxy to its implementation when enabled
func (uc *CompareABIs) load(ctx context.Context, label, ref string) (*abifsm.ABI, *ComparedABI, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "fetch",
		Message: fmt.Sprintf("Fetching %s", ref),
		Spinner: true,
	})

	abi, err := uc.source.Fetch(ctx, label, ref)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch %s: %w", ref, err)
	}
	info := &ComparedABI{Ref: ref, Proxy: abi.IsProxy(), Fragments: abi.Len()}
	uc.log.Debug("fetched abi", "label", label, "ref", ref, "fragments", abi.Len(), "proxy", info.Proxy)

	if !info.Proxy {
		return abi, info, nil
	}
	if !uc.cfg.FollowProxy {
		uc.log.Warn("abi looks like a proxy, comparing the proxy itself", "ref", ref)
		return abi, info, nil
	}
	if !common.IsHexAddress(ref) {
		return nil, nil, fmt.Errorf("cannot follow proxy %s: %w", ref, domain.ErrInvalidAddress)
	}

	impl, err := uc.proxy.ResolveImplementation(ctx, uc.cfg.ChainID, common.HexToAddress(ref), common.HexToHash(uc.cfg.ProxySlot))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve implementation of %s: %w", ref, err)
	}
	uc.log.Debug("following proxy", "proxy", ref, "implementation", impl.Hex())

	abi, err = uc.source.Fetch(ctx, label, impl.Hex())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch implementation %s: %w", impl.Hex(), err)
	}
	info.Implementation = impl.Hex()
	info.Fragments = abi.Len()

	return abi, info, nil
}
