package main

import (
	"fmt"
	"os"

	"github.com/aretw0/edmcheck/internal/config"
	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edmcheck",
	Short: "Validate example documents against a JSON Schema",
	Long: `edmcheck loads one JSON Schema, compiles it once and validates every file
matched by a glob pattern against it. Without a subcommand it behaves like
'edmcheck validate'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Command line errors exit with the crash status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "edmcheck: %v\n", err)
		os.Exit(domain.ExitCrash)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", config.DefaultFile, "Path to the YAML config file")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.String("schema", domain.DefaultSchemaPath, "Path to the JSON Schema")
	flags.String("pattern", domain.DefaultPattern, "Glob pattern selecting the example files")
	flags.String("format", "text", "Report format: text, json or markdown")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("metrics-file", "", "Write Prometheus metrics to this file after the run")
	flags.Bool("count-malformed", false, "Count unparsable example files as invalid instead of aborting")
}

// loadConfig resolves the configuration: flags > environment > file > defaults.
// Only flags the user actually set override the lower layers.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path, flags.Changed("config"))
	if err != nil {
		return nil, err
	}

	if flags.Changed("schema") {
		cfg.Schema, _ = flags.GetString("schema")
	}
	if flags.Changed("pattern") {
		cfg.Pattern, _ = flags.GetString("pattern")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Color = "never"
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if flags.Changed("count-malformed") {
		cfg.CountMalformed, _ = flags.GetBool("count-malformed")
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Serve.Port, _ = flags.GetString("port")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
