package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/voteagora/abifsm-go/internal/domain"
	"github.com/voteagora/abifsm-go/internal/usecase"
	"github.com/voteagora/abifsm-go/pkg/abifsm"
)

// MockABISource is a mock implementation of ABISource
type MockABISource struct {
	mock.Mock
}

func (m *MockABISource) Fetch(ctx context.Context, label, ref string) (*abifsm.ABI, error) {
	args := m.Called(ctx, label, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*abifsm.ABI), args.Error(1)
}

// MockProxyResolver is a mock implementation of ProxyResolver
type MockProxyResolver struct {
	mock.Mock
}

func (m *MockProxyResolver) ResolveImplementation(ctx context.Context, chainID uint64, proxy common.Address, slot common.Hash) (common.Address, error) {
	args := m.Called(ctx, chainID, proxy, slot)
	return args.Get(0).(common.Address), args.Error(1)
}

// MockChainRegistry is a mock implementation of ChainRegistry
type MockChainRegistry struct {
	mock.Mock
}

func (m *MockChainRegistry) Chains() []domain.Chain {
	args := m.Called()
	return args.Get(0).([]domain.Chain)
}

func (m *MockChainRegistry) Lookup(chainID uint64) (domain.Chain, bool) {
	args := m.Called(chainID)
	return args.Get(0).(domain.Chain), args.Bool(1)
}

func (m *MockChainRegistry) BySlug(slug string) (domain.Chain, bool) {
	args := m.Called(slug)
	return args.Get(0).(domain.Chain), args.Bool(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	usecase.NopProgress
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseABI(t *testing.T, label, data string) *abifsm.ABI {
	t.Helper()
	abi, err := abifsm.ParseABI(label, []byte(data))
	require.NoError(t, err)
	return abi
}

const tokenV1 = `[
  {"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256"}]},
  {"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}]}
]`

const tokenV2 = `[
  {"type":"event","name":"Approval","inputs":[{"name":"owner","type":"address","indexed":true},{"name":"spender","type":"address","indexed":true},{"name":"value","type":"uint256"}]},
  {"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256"}]},
  {"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}]}
]`

const proxyABI = `[
  {"type":"event","name":"Upgraded","inputs":[{"name":"implementation","type":"address","indexed":true}]},
  {"type":"function","name":"implementation","inputs":[]},
  {"type":"function","name":"upgradeTo","inputs":[{"name":"newImplementation","type":"address"}]}
]`
