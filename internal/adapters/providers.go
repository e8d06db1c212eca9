package adapters

import (
	"github.com/google/wire"
	"github.com/voteagora/abifsm-go/internal/adapters/chains"
	"github.com/voteagora/abifsm-go/internal/adapters/progress"
	"github.com/voteagora/abifsm-go/internal/adapters/proxy"
	"github.com/voteagora/abifsm-go/internal/adapters/source"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// SourceSet provides the file and HTTP ABI sources behind the router
var SourceSet = wire.NewSet(
	source.NewFileSource,
	source.NewHTTPSource,
	source.NewRouter,
	wire.Bind(new(usecase.ABISource), new(*source.Router)),
)

// ChainSet provides the embedded chain registry and the proxy resolver
var ChainSet = wire.NewSet(
	chains.NewRegistry,
	wire.Bind(new(usecase.ChainRegistry), new(*chains.Registry)),

	proxy.NewResolver,
	wire.Bind(new(usecase.ProxyResolver), new(*proxy.Resolver)),
)

// ProgressSet provides the progress sink
var ProgressSet = wire.NewSet(
	progress.NewSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	SourceSet,
	ChainSet,
	ProgressSet,
)
