package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/optics"
	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/params"
)

// ValidationResult holds validation results plus the geometry derived from
// the dipole parameters.
type ValidationResult struct {
	Valid        bool    `json:"valid"`
	Parameters   int     `json:"parameters"`
	BendRadius   float64 `json:"bend_radius_m"`
	BendAngleDeg float64 `json:"bend_angle_deg"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var overlay string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the parameter set without rendering",
		Long: `Validate the beamline parameters without writing a schematic.

Checks that every required parameter is present and in range, and reports
the dipole geometry (bend radius and angle) the field strength implies.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, overlay, cmd)
		},
	}

	cmd.Flags().StringVar(&overlay, "params", "", "YAML parameter overlay file")

	return cmd
}

func runValidate(opts *RootOptions, overlay string, cmd *cobra.Command) error {
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

	cfg, err := params.FromMap(parameters)
	if err != nil {
		if ferr := formatter.Error(errorCode(err), err.Error(), nil); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitFailure, "invalid configuration", err)
	}

	result := ValidationResult{
		Valid:        true,
		Parameters:   len(parameters),
		BendRadius:   optics.BendRadius(cfg.DipoleField),
		BendAngleDeg: optics.BendAngle(cfg.DipoleLength, cfg.DipoleField) * 180 / math.Pi,
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf(
		"Configuration valid: %d parameter(s), bend radius %.4f m, bend angle %.3f deg",
		result.Parameters, result.BendRadius, result.BendAngleDeg,
	))
}
