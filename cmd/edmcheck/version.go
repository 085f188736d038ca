package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/edmcheck"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of edmcheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("edmcheck version %s\n", strings.TrimSpace(edmcheck.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
