package cmd

import (
	"github.com/spf13/cobra"

	"github.com/craftfile/cli/internal/output"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet [spec]",
		Short: "Validate a build spec without rendering",
		Long: `Validate a build spec and report every problem found.

Validation never stops at the first error: all invalid fields across
all instructions and stages are reported together.

Arguments:
  spec    Path to the build-spec file (default: craftfile.yaml)

Examples:
  # Validate the default spec
  craftfile vet

  # Validate a specific spec
  craftfile vet deploy/build.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVet(args)
		},
	}
	return cmd
}

// runVet executes the vet command.
func runVet(args []string) error {
	path := specPath(args)

	file, err := compileSpec(path)
	if err != nil {
		return err
	}

	if file.MultiStage() {
		total := 0
		for _, s := range file.Stages() {
			total += len(s.Instructions())
		}
		output.Info("build spec is valid", "path", path, "stages", len(file.Stages()), "instructions", total)
	} else {
		output.Info("build spec is valid", "path", path, "instructions", len(file.Instructions()))
	}
	return nil
}
