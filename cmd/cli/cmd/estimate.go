// Package cmd - report commands
package cmd

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"saas-economics/core/input"
	"saas-economics/core/output"
	"saas-economics/internal/config"
	"saas-economics/internal/logging"
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [file]",
	Short: "Compute the full unit-economics report",
	Long: `Compute provider costs, unit economics, the projection, scenarios and
advice for one set of inputs.

The optional file may be .hcl, .yaml/.yml or .json. Without a file the
seed example is used. Flags override values from the file.

Examples:
  saas-economics estimate
  saas-economics estimate studio.yaml
  saas-economics estimate --customers 400 --price 39 --hosting
  saas-economics estimate --format json studio.hcl`,
	Args: cobra.MaximumNArgs(1),
	RunE: reportRunner(output.SectionAll),
}

var projectCmd = &cobra.Command{
	Use:   "project [file]",
	Short: "Show the month-by-month customer projection",
	Args:  cobra.MaximumNArgs(1),
	RunE:  reportRunner(output.SectionProjection),
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [file]",
	Short: "Compare growth and pricing scenarios",
	Args:  cobra.MaximumNArgs(1),
	RunE:  reportRunner(output.SectionScenarios),
}

var adviseCmd = &cobra.Command{
	Use:   "advise [file]",
	Short: "Show health cards, recommendations and risks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  reportRunner(output.SectionAdvice),
}

func init() {
	for _, c := range []*cobra.Command{estimateCmd, projectCmd, scenariosCmd, adviseCmd} {
		addInputFlags(c)
	}
	estimateCmd.Flags().Bool("months", true, "print the month-by-month projection table")
	projectCmd.Flags().Bool("months", true, "print the month-by-month projection table")
}

func reportRunner(sections output.Section) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		cfg := config.Get()

		in, err := loadInputs(cmd, args)
		if err != nil {
			return err
		}

		format := cfg.Output.DefaultFormat
		if outputFormat != "" {
			format = outputFormat
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}

		months := cfg.Output.ShowMonths
		if cmd.Flags().Changed("months") {
			months, _ = cmd.Flags().GetBool("months")
		} else if sections == output.SectionProjection {
			months = true
		}

		formatter, err := output.New(f, output.Options{
			NoColor:    noColor || !cfg.Output.Color,
			ShowMonths: months,
			Verbose:    verbose,
			Sections:   sections,
		})
		if err != nil {
			return err
		}

		report := newEngine().Run(in)
		result := output.NewResult(report, output.Metadata{
			RequestID:     uuid.NewString(),
			InputHash:     input.Hash(in),
			EngineVersion: Version,
			Timestamp:     start.UTC().Format(time.RFC3339),
			DurationMS:    float64(time.Since(start).Microseconds()) / 1000,
		})

		logging.Debug("rendering report",
			zap.String("command", cmd.Name()),
			zap.String("format", string(f)),
			zap.String("request_id", result.Metadata.RequestID),
		)
		return formatter.Render(cmd.OutOrStdout(), result)
	}
}
