package cli

import (
	"github.com/spf13/cobra"
	"github.com/voteagora/abifsm-go/internal/cli/render"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// NewCompareCmd creates the compare command
func NewCompareCmd() *cobra.Command {
	var tables bool

	cmd := &cobra.Command{
		Use:   "compare <abi1> <abi2>",
		Short: "Compare the signatures and events of two ABIs",
		Long: `Compare two ABIs given as contract addresses or JSON files.

Addresses are fetched from <abi-url><address>.json. When an ABI looks like a
proxy and --follow-proxy is set, the implementation address is read from the
proxy storage slot over the RPC endpoint configured for --chain-id.`,
		Example: `  abifsm compare 0x1111111111111111111111111111111111111111 0x2222222222222222222222222222222222222222
  abifsm compare old/Governor.json new/Governor.json --tables`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CompareABIs.Run(cmd.Context(), usecase.CompareABIsParams{
				Left:   args[0],
				Right:  args[1],
				Tables: tables,
			})
			if err != nil {
				return err
			}

			return render.NewDiffRenderer(cmd.OutOrStdout(), useColor(app)).Render(result)
		},
	}

	cmd.Flags().BoolVar(&tables, "tables", false, "Also compare derived table names")
	cmd.Flags().Bool("follow-proxy", false, "Compare the implementation behind proxies")
	cmd.Flags().Uint64("chain-id", 0, "Chain the compared contracts live on (default 1)")
	cmd.Flags().String("proxy-slot", "", "Storage slot holding the implementation address (default EIP-1967)")

	return cmd
}
