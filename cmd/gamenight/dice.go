package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gamenight-tools/gamenight/internal/streak"
)

var diceTrials int

var diceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Estimate how many throws it takes for 2, 3, and 4 d20s to all roll 20",
	Long: `Runs a Monte Carlo simulation settling the table argument about
simultaneous natural 20s: for each width (two, three, and four dice thrown
together), it repeats the experiment and reports the average number of
throws before every die shows a 20. Four dice take a while.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		counts := streak.DefaultDiceCounts

		bar := progressbar.Default(int64(diceTrials*len(counts)), "Rolling dice")
		sim := streak.New(&streak.Config{
			Trials:  diceTrials,
			OnTrial: func() { _ = bar.Add(1) },
		})

		results, err := sim.Run(cmd.Context(), counts)
		if err != nil {
			return err
		}
		_ = bar.Finish()

		fmt.Fprintln(cmd.OutOrStdout(), "Getting averages...")
		// Report widest first; the big number is the headline.
		for i := len(results) - 1; i >= 0; i-- {
			r := results[i]
			fmt.Fprintf(cmd.OutOrStdout(), "Average number of throws for %d simultaneous 20s: %.2f (%d trials)\n",
				r.DiceCount, r.AverageThrows, r.Trials)
		}
		return nil
	},
}

func init() {
	diceCmd.Flags().IntVar(&diceTrials, "trials", streak.DefaultTrials, "trials per dice count")
}
