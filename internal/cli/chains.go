package cli

import (
	"github.com/spf13/cobra"
	"github.com/voteagora/abifsm-go/internal/cli/render"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// NewChainsCmd creates the chains command
func NewChainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chains [filter]",
		Short: "List known chains and their slugs",
		Long: `List the chains abifsm knows about. RPC endpoints for proxy resolution are
configured in abifsm.toml under [rpc_endpoints], keyed by chain id or slug.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListChainsParams{}
			if len(args) == 1 {
				params.Filter = args[0]
			}

			result, err := app.ListChains.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewChainsRenderer(cmd.OutOrStdout(), useColor(app)).Render(result)
		},
	}

	return cmd
}
