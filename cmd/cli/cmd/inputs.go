package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"saas-economics/core/input"
	"saas-economics/core/types"
	"saas-economics/internal/logging"
)

// inputFlag binds one --flag to a RawInputs field
type inputFlag struct {
	name  string
	usage string
	field func(*input.RawInputs) **float64
}

var inputFlags = []inputFlag{
	{"customers", "paying customers", func(r *input.RawInputs) **float64 { return &r.Customers }},
	{"locations", "locations per customer", func(r *input.RawInputs) **float64 { return &r.LocationsPerCustomer }},
	{"images", "images per location", func(r *input.RawInputs) **float64 { return &r.ImagesPerLocation }},
	{"image-size", "average image size in MB", func(r *input.RawInputs) **float64 { return &r.AvgImageSizeMB }},
	{"views", "monthly views per image", func(r *input.RawInputs) **float64 { return &r.MonthlyViewsPerImage }},
	{"price", "monthly price per customer", func(r *input.RawInputs) **float64 { return &r.PricePerCustomer }},
	{"setup-fee", "one-off setup fee", func(r *input.RawInputs) **float64 { return &r.SetupFee }},
	{"churn", "monthly churn percent", func(r *input.RawInputs) **float64 { return &r.MonthlyChurnPercent }},
	{"growth", "monthly growth percent", func(r *input.RawInputs) **float64 { return &r.MonthlyGrowthPercent }},
	{"seats", "hosting provider seats", func(r *input.RawInputs) **float64 { return &r.HostingSeats }},
	{"bandwidth-multiplier", "hosting bandwidth as a multiple of image bandwidth", func(r *input.RawInputs) **float64 { return &r.HostingBandwidthMultiplier }},
	{"salaries", "monthly salaries", func(r *input.RawInputs) **float64 { return &r.EmployeeSalaries }},
	{"marketing", "monthly marketing spend", func(r *input.RawInputs) **float64 { return &r.MarketingSpend }},
	{"other-costs", "other monthly costs", func(r *input.RawInputs) **float64 { return &r.OtherMonthlyCosts }},
}

const hostingFlag = "hosting"

// addInputFlags registers the per-parameter overrides on a command
func addInputFlags(cmd *cobra.Command) {
	for _, f := range inputFlags {
		cmd.Flags().Float64(f.name, 0, f.usage)
	}
	cmd.Flags().Bool(hostingFlag, false, "enable the secondary hosting provider")
}

// loadInputs reads the optional input file (or the seed example when no
// file is given) and applies any flags the user set
func loadInputs(cmd *cobra.Command, args []string) (types.InputParameters, error) {
	base := input.Defaults()
	if len(args) > 0 {
		raw, err := input.Decode(args[0])
		if err != nil {
			return types.InputParameters{}, err
		}
		base = raw
		logging.Debug("decoded input file", zap.String("path", args[0]))
	}

	overlay, err := flagOverlay(cmd)
	if err != nil {
		return types.InputParameters{}, err
	}
	return input.Normalize(input.Merge(base, overlay)), nil
}

func flagOverlay(cmd *cobra.Command) (input.RawInputs, error) {
	var overlay input.RawInputs
	flags := cmd.Flags()

	for _, f := range inputFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetFloat64(f.name)
		if err != nil {
			return input.RawInputs{}, err
		}
		*f.field(&overlay) = input.Float(v)
	}

	if flags.Changed(hostingFlag) {
		v, err := flags.GetBool(hostingFlag)
		if err != nil {
			return input.RawInputs{}, err
		}
		overlay.UseSecondaryHosting = input.Bool(v)
	}

	return overlay, nil
}
