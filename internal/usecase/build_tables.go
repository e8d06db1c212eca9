package usecase

import (
	"context"
	"log/slog"
	"sort"
)

// BuildTablesParams contains parameters for deriving table names
type BuildTablesParams struct {
	Name    string
	Sources []LabeledRef
	Sorted  bool
}

// TableRow is one event of the collection and the table it is stored in
type TableRow struct {
	Table     string
	Label     string
	Signature string
	Topic     string
}

// BuildTablesResult contains the derived tables
type BuildTablesResult struct {
	Name   string
	Tables []TableRow
}

// BuildTables derives the storage table of every event in a collection
type BuildTables struct {
	loader setLoader
}

// NewBuildTables creates a new BuildTables use case
func NewBuildTables(source ABISource, progress ProgressSink, log *slog.Logger) *BuildTables {
	return &BuildTables{
		loader: setLoader{source: source, progress: progress, log: log.With("component", "BuildTables")},
	}
}

// Run executes the use case
func (uc *BuildTables) Run(ctx context.Context, params BuildTablesParams) (*BuildTablesResult, error) {
	set, err := uc.loader.load(ctx, params.Name, params.Sources)
	if err != nil {
		return nil, err
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	events := set.Events()
	rows := make([]TableRow, 0, len(events))
	for _, event := range events {
		// Validate already proved uniqueness
		table, err := set.PGTable(event, false)
		if err != nil {
			return nil, err
		}
		rows = append(rows, TableRow{
			Table:     table,
			Label:     event.Label(),
			Signature: event.Signature(),
			Topic:     event.Topic(),
		})
	}

	if params.Sorted {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Table < rows[j].Table })
	}

	return &BuildTablesResult{
		Name:   set.Name(),
		Tables: rows,
	}, nil
}
