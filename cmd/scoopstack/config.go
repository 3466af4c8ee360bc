package main

import (
	"os"

	"github.com/spf13/cobra"

	"scoopstack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the default configuration to stdout as a starting point
for user edits.

Example:
  mkdir -p ~/.scoopstack/configs
  scoopstack config > ~/.scoopstack/configs/scoopstack.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
