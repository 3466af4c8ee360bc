// scoopstack is a terminal math game: solve linear equations before the
// ice-cream stack outgrows its cone.
//
// Usage:
//
//	scoopstack play              - Play in the current terminal
//	scoopstack scores            - Show the best runs
//	scoopstack gen               - Print generated equations (worksheets)
//	scoopstack serve             - Start SSH server for remote play
//	scoopstack config            - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.scoopstack/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scoopstack",
	Short: "Scoop Stack - solve equations, stack ice cream",
	Long: `Scoop Stack is a terminal math game. Equations drop onto an
ice-cream cone; pick the right answer to melt a scoop away before the
stack outgrows the cone. One wrong answer ends the run.

Available commands:
  play     - Play in the current terminal
  scores   - View the best runs
  gen      - Print generated equations for offline practice
  serve    - Start SSH server for remote play
  config   - Print the default configuration YAML

Examples:
  scoopstack play
  scoopstack play --difficulty exam
  scoopstack scores
  scoopstack gen --count 10 --score 70
  scoopstack serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scoopstack/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
