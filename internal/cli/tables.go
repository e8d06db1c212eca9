package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/voteagora/abifsm-go/internal/cli/render"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// NewTablesCmd creates the tables command
func NewTablesCmd() *cobra.Command {
	var (
		name    string
		sorted  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "tables <label=abi>...",
		Short: "List the table of every event in a collection of ABIs",
		Long: `Build a collection named --name from the given ABIs and print the unique,
length-bounded PostgreSQL table name of each event.

Each ABI is given as label=path or label=address. The label becomes part of
the table name: <name>_<label>_<event slug>.`,
		Example: `  abifsm tables token=abis/Token.json gov=abis/Governor.json --name mydao --sort`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			sources, err := parseLabeledRefs(args)
			if err != nil {
				return err
			}

			result, err := app.BuildTables.Run(cmd.Context(), usecase.BuildTablesParams{
				Name:    name,
				Sources: sources,
				Sorted:  sorted,
			})
			if err != nil {
				return fmt.Errorf("failed to build tables: %w", err)
			}

			return render.NewTablesRenderer(cmd.OutOrStdout(), useColor(app), verbose).Render(result)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Collection name used as table prefix (required)")
	cmd.Flags().BoolVar(&sorted, "sort", false, "Sort tables by name")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show signature and topic of each table")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
