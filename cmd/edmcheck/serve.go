package main

import (
	"os"

	"github.com/aretw0/edmcheck/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only HTTP server",
	Long: `Exposes the configured validation over HTTP: GET /report runs the batch and
returns the JSON report, GET /metrics serves Prometheus metrics, GET /healthz
answers liveness probes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		return cli.Serve(sigCtx, cli.RunOptions{
			Config: cfg,
			Debug:  debug,
			Out:    os.Stdout,
			Err:    os.Stderr,
		}, ":"+cfg.Serve.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
