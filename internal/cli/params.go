package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewParamsCommand creates the params command.
func NewParamsCommand(rootOpts *RootOptions) *cobra.Command {
	var overlay string

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the merged parameter set",
		Long: `Print the parameter set the renderer would use, after applying any
YAML overlay to the embedded defaults. Keys are sorted for stable output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParams(rootOpts, overlay, cmd)
		},
	}

	cmd.Flags().StringVar(&overlay, "params", "", "YAML parameter overlay file")

	return cmd
}

func runParams(opts *RootOptions, overlay string, cmd *cobra.Command) error {
	configureLogging(opts)
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	parameters, err := loadParameters(overlay)
	if err != nil {
		if ferr := formatter.Error(errorCode(err), err.Error(), nil); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitCommandError, "failed to load parameters", err)
	}

	if opts.Format == "json" {
		return formatter.Success(parameters)
	}
	for _, key := range sortedKeys(parameters) {
		fmt.Fprintf(cmd.OutOrStdout(), "%-28s %g\n", key, parameters[key])
	}
	return nil
}
