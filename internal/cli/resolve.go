package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "resolve <key> <label=abi>...",
		Short: "Resolve an event name, slug or topic prefix to its table",
		Long: `Resolve key against a collection of ABIs. The key is matched against event
names and slugs first, then as a prefix of event topics. The table name is
qualified with --schema when given.`,
		Example: `  abifsm resolve ProposalCreated gov=abis/Governor.json --name mydao --schema center
  abifsm resolve 0xc8df7ff2 gov=abis/Governor.json --name mydao`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			sources, err := parseLabeledRefs(args[1:])
			if err != nil {
				return err
			}

			result, err := app.ResolveTable.Run(cmd.Context(), usecase.ResolveTableParams{
				Key:     args[0],
				Name:    name,
				Schema:  app.Config.Schema,
				Sources: sources,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Table)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Collection name used as table prefix (required)")
	cmd.Flags().String("schema", "", "Schema qualifying the table name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
