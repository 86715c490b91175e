package cmd

import (
	"github.com/spf13/cobra"

	"github.com/craftfile/cli/internal/config"
	"github.com/craftfile/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	cfg *config.Config
)

// NewRootCmd creates the root command for the craftfile CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "craftfile",
		Short:         "Declarative Containerfile builder",
		Long: `craftfile compiles declarative build specs into Containerfiles.

A build spec is a YAML file listing typed instructions (FROM, RUN,
COPY, ...), optionally grouped into named multi-stage build stages.
Every instruction is validated and every problem in the spec is
reported in one pass before anything is rendered.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: CRAFTFILE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewRenderCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals() error {
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		return err
	}
	cfg = loaded

	output.SetupLogging(verboseFlag || cfg.Verbose)
	return nil
}

// specPath resolves the build-spec path from the positional argument
// or the configured default.
func specPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg != nil {
		return cfg.Spec
	}
	return config.DefaultConfig().Spec
}
