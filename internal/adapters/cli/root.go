package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	seed       int64
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tellsim",
		Short: "tellsim - run a Mesopotamian excavation campaign",
		Long: `tellsim manages an archaeological expedition: hire a crew, survey tells,
run excavation tasks against selected tiles and turn the finds into museum
pieces or money.

The player and recovered artifacts persist between runs; dig grids are laid
out fresh per run.

Examples:
  tellsim status
  tellsim hire --role worker --count 5
  tellsim site list
  tellsim site survey --name Ur
  tellsim excavate --site "Tell Abu Salabikh" --type excavation --tiles 3
  tellsim identify --artifact artefact-1a2b3c4d
  tellsim sell --artifact artefact-1a2b3c4d
  tellsim scenario`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./configs/config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"Random seed for reproducible runs (0 = time-seeded)")

	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewHireCommand())
	rootCmd.AddCommand(NewSiteCommand())
	rootCmd.AddCommand(NewExcavateCommand())
	rootCmd.AddCommand(NewIdentifyCommand())
	rootCmd.AddCommand(NewSellCommand())
	rootCmd.AddCommand(NewMuseumCommand())
	rootCmd.AddCommand(NewCampCommand())
	rootCmd.AddCommand(NewJournalCommand())
	rootCmd.AddCommand(NewScenarioCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
