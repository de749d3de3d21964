// Package cmd provides the CLI commands for saas-economics.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"saas-economics/core/engine"
	"saas-economics/internal/config"
	"saas-economics/internal/logging"
)

// Version is the engine version, overridden at build time with -ldflags
var Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	noColor      bool
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "saas-economics",
	Short: "Model unit economics for a photo-hosting SaaS",
	Long: `saas-economics turns business inputs (customers, images, pricing, churn,
growth, team and marketing spend) into provider bills, unit economics,
a 12-month projection, what-if scenarios and advice.

Examples:
  saas-economics estimate
  saas-economics estimate studio.yaml --customers 250
  saas-economics scenarios --format markdown studio.hcl
  saas-economics serve --port 8080`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.saas-economics/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.LoadEnv(); err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	logging.Debug("configuration loaded", zap.String("path", path))
	return nil
}

// newEngine builds the engine from the active configuration
func newEngine() *engine.Engine {
	cfg := config.Get()
	return engine.NewEngine(engine.EngineConfig{
		Tiers:            cfg.Tiers,
		ProjectionMonths: cfg.Projection.Months,
		Scenarios:        cfg.Scenarios,
	}, engine.WithLogger(logging.ForComponent("engine")))
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "saas-economics version %s\n", Version)
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(config.Get())
	},
}
