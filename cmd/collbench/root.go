package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "collbench",
	Short: "Collbench benchmarks and monitors the collections containers.",
	Long: `Collbench exercises the containers of the collections library. ` +
		`It can benchmark each container with synthetic workloads and it ` +
		`can serve a live monitoring dashboard over a demo session.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
