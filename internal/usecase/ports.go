package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/voteagora/abifsm-go/internal/domain"
	"github.com/voteagora/abifsm-go/pkg/abifsm"
)

// ABISource retrieves an interface description. ref is a file path or a
// contract address, label names the resulting ABI.
type ABISource interface {
	Fetch(ctx context.Context, label, ref string) (*abifsm.ABI, error)
}

// ProxyResolver reads the implementation address a proxy points at
type ProxyResolver interface {
	ResolveImplementation(ctx context.Context, chainID uint64, proxy common.Address, slot common.Hash) (common.Address, error)
}

// ChainRegistry provides the known chains
type ChainRegistry interface {
	Chains() []domain.Chain
	Lookup(chainID uint64) (domain.Chain, bool)
	BySlug(slug string) (domain.Chain, bool)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// LabeledRef is one interface of a collection: the label it is stored under
// and where its description comes from
type LabeledRef struct {
	Label string
	Ref   string
}
