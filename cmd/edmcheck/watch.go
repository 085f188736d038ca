package main

import (
	"os"
	"strings"

	"github.com/aretw0/edmcheck"
	"github.com/aretw0/edmcheck/internal/cli"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate the examples whenever they or the schema change",
	Long: `Runs the full validation, then watches the schema file and the pattern's base
directory and re-runs the whole batch after every change. Stops on Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		return cli.Watch(sigCtx, cli.RunOptions{
			Config: cfg,
			Debug:  debug,
			Out:    os.Stdout,
			Err:    os.Stderr,
		}, strings.TrimSpace(edmcheck.Version))
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
