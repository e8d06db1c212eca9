package usecase

import (
	"context"
	"log/slog"

	"github.com/voteagora/abifsm-go/pkg/abifsm"
)

// ResolveTableParams contains parameters for resolving a key to a table
type ResolveTableParams struct {
	Key     string
	Name    string
	Schema  string
	Sources []LabeledRef
}

// ResolveTableResult contains the resolved table
type ResolveTableResult struct {
	Key   string
	Table string
}

// ResolveTable maps an event name, slug or topic prefix to its qualified table
type ResolveTable struct {
	loader setLoader
	log    *slog.Logger
}

// NewResolveTable creates a new ResolveTable use case
func NewResolveTable(source ABISource, progress ProgressSink, log *slog.Logger) *ResolveTable {
	log = log.With("component", "ResolveTable")
	return &ResolveTable{
		loader: setLoader{source: source, progress: progress, log: log},
		log:    log,
	}
}

// Run executes the use case
func (uc *ResolveTable) Run(ctx context.Context, params ResolveTableParams) (*ResolveTableResult, error) {
	set, err := uc.loader.load(ctx, params.Name, params.Sources)
	if err != nil {
		return nil, err
	}

	table, err := abifsm.NewFQNamer(set, params.Schema).Resolve(params.Key)
	if err != nil {
		return nil, err
	}
	uc.log.Debug("resolved table", "key", params.Key, "table", table)

	return &ResolveTableResult{
		Key:   params.Key,
		Table: table,
	}, nil
}
