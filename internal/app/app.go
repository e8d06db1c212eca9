package app

import (
	"log/slog"

	"github.com/voteagora/abifsm-go/internal/config"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	CompareABIs  *usecase.CompareABIs
	BuildTables  *usecase.BuildTables
	ResolveTable *usecase.ResolveTable
	ListChains   *usecase.ListChains
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	compareABIs *usecase.CompareABIs,
	buildTables *usecase.BuildTables,
	resolveTable *usecase.ResolveTable,
	listChains *usecase.ListChains,
) (*App, error) {
	return &App{
		Config:       cfg,
		Log:          log,
		CompareABIs:  compareABIs,
		BuildTables:  buildTables,
		ResolveTable: resolveTable,
		ListChains:   listChains,
	}, nil
}
