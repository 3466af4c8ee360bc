package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"scoopstack/internal/equation"
)

var (
	flagGenCount   int
	flagGenScore   int
	flagGenGiant   bool
	flagGenAnswers bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print generated equations for offline practice",
	Long: `Generate equations to stdout, the same way the game builds them.

The --score flag controls difficulty the way an in-game score would:
higher scores unlock multiplication and division transforms and longer
derivations.

Examples:
  scoopstack gen
  scoopstack gen --count 20 --score 70
  scoopstack gen --giant --answers
  scoopstack gen --seed 7        # Reproducible worksheet`,
	Args: cobra.NoArgs,
	Run:  runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenCount, "count", 10, "Number of equations to generate")
	genCmd.Flags().IntVar(&flagGenScore, "score", 0, "Difficulty score the equations are generated at")
	genCmd.Flags().BoolVar(&flagGenGiant, "giant", false, "Generate giant equations (12 answer choices)")
	genCmd.Flags().BoolVar(&flagGenAnswers, "answers", false, "Print the answer choices and the solution")
}

func runGen(cmd *cobra.Command, args []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < flagGenCount; i++ {
		eq := equation.Generate(rng, flagGenScore, flagGenGiant)
		fmt.Printf("%2d)  %s\n", i+1, eq.Text)

		if flagGenAnswers {
			fmt.Print("     choices:")
			for _, v := range eq.Answers {
				fmt.Printf(" %s", equation.FormatValue(v))
			}
			fmt.Printf("\n     solution: x = %s\n", equation.FormatValue(eq.Solution))
		}
	}
}
