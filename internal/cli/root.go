package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/voteagora/abifsm-go/internal/app"
	"github.com/voteagora/abifsm-go/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "abifsm",
		Short: "Derive stable identifiers and storage tables from contract ABIs",
		Long: `abifsm ingests contract ABIs, derives canonical signatures, topics and slugs
for every fragment, and maps each event to a unique PostgreSQL table name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}

			// Set up viper, flags that have been set win over env and abifsm.toml
			v, err := config.SetupViper(workDir, cmd)
			if err != nil {
				return err
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall command timeout (default 2m)")
	rootCmd.PersistentFlags().String("abi-url", "", "Base URL ABIs are fetched from as <url><address>.json")
	rootCmd.PersistentFlags().Bool("no-checksum", false, "Use addresses exactly as given in ABI URLs")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	compareCmd := NewCompareCmd()
	compareCmd.GroupID = "main"
	rootCmd.AddCommand(compareCmd)

	tablesCmd := NewTablesCmd()
	tablesCmd.GroupID = "main"
	rootCmd.AddCommand(tablesCmd)

	resolveCmd := NewResolveCmd()
	resolveCmd.GroupID = "main"
	rootCmd.AddCommand(resolveCmd)

	chainsCmd := NewChainsCmd()
	chainsCmd.GroupID = "management"
	rootCmd.AddCommand(chainsCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// useColor reports whether output should be colored
func useColor(a *app.App) bool {
	return !a.Config.NoColor && !color.NoColor
}
