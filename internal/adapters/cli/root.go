package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	turnCount  int
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sectormarket",
		Short: "Sector economy CLI - Simulate and inspect the dynamic market engine",
		Long: `Sector economy CLI builds the default galaxy, advances the simulation and
answers market questions against the resulting state.

All commands accept --turns to advance the simulation before answering, so
the same seed and turn count always produce the same answer.

Examples:
  sectormarket prices --sector 1 --turns 10
  sectormarket routes --origin 1 --max-hops 3 --cargo 40
  sectormarket trade --sector 1 --commodity FOOD --side BUY --quantity 10 --credits 5000
  sectormarket events trigger --kind WAR --sector 2 --sector 3
  sectormarket simulate --sim-turns 50 --traders 8`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/sectormarket)")
	rootCmd.PersistentFlags().IntVar(&turnCount, "turns", 0,
		"Turns to advance before executing the command")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewPricesCommand())
	rootCmd.AddCommand(NewRoutesCommand())
	rootCmd.AddCommand(NewTradeCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewEventsCommand())
	rootCmd.AddCommand(NewAnalyzeCommand())
	rootCmd.AddCommand(NewSummaryCommand())
	rootCmd.AddCommand(NewSimulateCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
