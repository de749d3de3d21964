// Package cmd - tiers command
package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"saas-economics/core/output"
	"saas-economics/core/types"
	"saas-economics/core/ui"
	"saas-economics/internal/config"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Print the provider pricing table",
	RunE: func(cmd *cobra.Command, args []string) error {
		tiers := config.Get().Tiers

		if outputFormat == string(output.FormatJSON) {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tiers)
		}

		w := ui.NewWriter(cmd.OutOrStdout(), noColor || !config.Get().Output.Color)
		w.Header("Provider Tiers")

		table := w.NewTable("Provider", "Line", "Base fee", "Included", "Overage rate")
		table.AddRow("Storage", "Base plan", output.Money(tiers.Storage.BaseFee), "", "")
		tierRow(table, "Storage", "Storage", tiers.Storage.Storage)
		tierRow(table, "Storage", "Egress", tiers.Storage.Egress)
		table.AddRow("Hosting", "Base plan", output.Money(tiers.Hosting.BaseFee), "", "")
		table.AddRow("Hosting", "Per seat", output.Money(tiers.Hosting.PerSeatFee), "", "")
		tierRow(table, "Hosting", "Bandwidth", tiers.Hosting.Bandwidth)
		table.Render()

		return w.Err()
	},
}

func tierRow(t *ui.Table, provider, line string, tier types.CostTierConfig) {
	t.AddRow(provider, line, output.Money(tier.BaseFee),
		output.Number(tier.IncludedQuota, 0)+" "+tier.Unit,
		"$"+output.Number(tier.OverageRatePerUnit, 3)+"/"+tier.Unit)
}
