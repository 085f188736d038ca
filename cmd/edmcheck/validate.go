package main

import (
	"os"

	"github.com/aretw0/edmcheck/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every example file once",
	Long: `Validates each file matched by --pattern against --schema and prints one line
per file. Exit status: 0 when every file is valid or nothing matched, 1 when at
least one file is invalid, 2 when the run could not complete.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	debug, _ := cmd.Flags().GetBool("debug")

	sigCtx := cli.NewSignalContext(cmd.Context())
	code := cli.Check(sigCtx, cli.RunOptions{
		Config: cfg,
		Debug:  debug,
		Out:    os.Stdout,
		Err:    os.Stderr,
	})
	sigCtx.Cancel()
	os.Exit(code)
	return nil
}
