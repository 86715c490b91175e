package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftfile/cli/internal/buildspec"
	"github.com/craftfile/cli/internal/output"
	"github.com/craftfile/cli/pkg/containerfile"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "render [spec]",
		Short: "Render a build spec to a Containerfile",
		Long: `Render a build spec to Containerfile text.

The spec is validated first; if anything is invalid, every problem is
reported and nothing is rendered.

Arguments:
  spec    Path to the build-spec file (default: craftfile.yaml)

Examples:
  # Render to stdout
  craftfile render build.yaml

  # Render to a file
  craftfile render build.yaml -o Containerfile`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args, outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "",
		"Write the Containerfile to this path instead of stdout")
	return cmd
}

// runRender executes the render command.
func runRender(args []string, outputPath string) error {
	path := specPath(args)

	file, err := compileSpec(path)
	if err != nil {
		return err
	}

	// The canonical rendered form carries no trailing newline; add one
	// for the emitted file/stream.
	text := containerfile.Render(file) + "\n"

	if outputPath == "" && cfg != nil {
		outputPath = cfg.Output
	}
	if outputPath == "" {
		output.Print(text)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return &ExitError{Code: ExitGeneralError, Err: fmt.Errorf("writing %s: %w", outputPath, err)}
	}
	output.Info("wrote Containerfile", "path", outputPath)
	return nil
}

// compileSpec parses, validates and compiles the build spec at path,
// mapping every failure mode onto the CLI's exit-code contract.
// Validation failures are reported here, exhaustively, before the
// error is returned.
func compileSpec(path string) (*containerfile.File, error) {
	doc, err := buildspec.ParseFile(path)
	if err != nil {
		var verrs containerfile.Errors
		if errors.As(err, &verrs) {
			output.WriteErrorReport(os.Stderr, verrs)
			return nil, &ExitError{Code: ExitValidationError, Err: ErrValidation, Printed: true}
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ExitError{Code: ExitNotFound, Err: fmt.Errorf("build spec %s: %w", path, ErrNotFound)}
		}
		return nil, &ExitError{Code: ExitGeneralError, Err: err}
	}

	result := buildspec.Compile(doc)
	if result.Failed() {
		output.WriteErrorReport(os.Stderr, result.Errs())
		return nil, &ExitError{Code: ExitValidationError, Err: ErrValidation, Printed: true}
	}

	output.Debug("compiled build spec", "path", path, "multiStage", result.Value().MultiStage())
	return result.Value(), nil
}
