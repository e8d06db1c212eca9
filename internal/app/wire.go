//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/voteagora/abifsm-go/internal/adapters"
	"github.com/voteagora/abifsm-go/internal/config"
	"github.com/voteagora/abifsm-go/internal/logging"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewCompareABIs,
		usecase.NewBuildTables,
		usecase.NewResolveTable,
		usecase.NewListChains,

		// App
		NewApp,
	)
	return nil, nil
}
