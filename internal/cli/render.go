package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/beamline"
	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/params"
	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/svg"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output  string
	Overlay string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the beamline schematic",
		Long: `Render the MERGS beamline design as an SVG schematic.

The embedded optimized parameter set is used unless a YAML overlay is
given, in which case its values replace the matching defaults.

Example:
  mergsdraw render
  mergsdraw render -o schematic.svg --params tweaks.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "picture.svg", "output SVG path")
	cmd.Flags().StringVar(&opts.Overlay, "params", "", "YAML parameter overlay file")

	return cmd
}

func runRender(opts *RenderOptions, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := loadConfig(opts.Overlay, formatter)
	if err != nil {
		return err
	}

	slog.Debug("writing schematic", "path", opts.Output)
	if err := svg.WriteFile(opts.Output, beamline.Layout(cfg)); err != nil {
		ferr := formatter.Error(ErrCodeGeneric, err.Error(), nil)
		if ferr != nil {
			return ferr
		}
		return WrapExitError(ExitCommandError, "failed to write schematic", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]string{"output": opts.Output})
	}
	return formatter.Success(fmt.Sprintf("Saved image to %s.", opts.Output))
}

// configureLogging sets up slog on stderr at the level the verbose flag
// selects.
func configureLogging(opts *RootOptions) {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig builds the validated configuration, reporting failures through
// the formatter and mapping them to exit codes.
func loadConfig(overlayPath string, formatter *OutputFormatter) (*params.Config, error) {
	parameters, err := loadParameters(overlayPath)
	if err != nil {
		ferr := formatter.Error(errorCode(err), err.Error(), nil)
		if ferr != nil {
			return nil, ferr
		}
		return nil, WrapExitError(ExitCommandError, "failed to load parameters", err)
	}
	formatter.VerboseLog("Loaded %d parameter(s)", len(parameters))

	cfg, err := params.FromMap(parameters)
	if err != nil {
		ferr := formatter.Error(errorCode(err), err.Error(), nil)
		if ferr != nil {
			return nil, ferr
		}
		return nil, WrapExitError(ExitFailure, "invalid configuration", err)
	}
	return cfg, nil
}

func errorCode(err error) string {
	var loadErr *params.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	return ErrCodeGeneric
}
