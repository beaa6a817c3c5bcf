package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gamenight-tools/gamenight/internal/config"
	"github.com/gamenight-tools/gamenight/internal/geo"
)

var (
	breakfastQuery  string
	breakfastArrive string
)

var breakfastCmd = &cobra.Command{
	Use:   "breakfast",
	Short: "Find the breakfast spot with the fairest total drive for the group",
	Long: `Geocodes every home in the homes file, searches for the breakfast
query near each one, keeps the spots that are near more than one home, and
ranks them by the group's combined drive time. Candidates are offered one at
a time; reject one and the next-best comes up.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		if err := cfg.RequireMaps(); err != nil {
			return err
		}

		homes, err := geo.LoadHomes(cfg.HomesFile)
		if err != nil {
			return err
		}

		var arrival time.Time
		if breakfastArrive != "" {
			arrival, err = time.Parse(time.RFC3339, breakfastArrive)
			if err != nil {
				return fmt.Errorf("parsing --arrive (want RFC3339, e.g. 2022-05-02T07:05:00-04:00): %w", err)
			}
		}

		client, err := geo.NewClient(cfg.Maps.APIKey)
		if err != nil {
			return err
		}
		planner, err := geo.NewPlanner(&geo.PlannerConfig{Client: client, Query: breakfastQuery})
		if err != nil {
			return err
		}

		candidates, err := planner.RankBreakfast(cmd.Context(), homes, arrival)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(cmd.InOrStdin())
		for _, candidate := range candidates {
			fmt.Fprintf(cmd.OutOrStdout(), "Closest address to everyone: [%s] (combined drive %s)\n",
				candidate.Address, candidate.TotalDuration.Round(time.Minute))
			fmt.Fprint(cmd.OutOrStdout(), "Do you like this address? (Y/n): ")

			answer, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			if strings.EqualFold(strings.TrimSpace(answer), "n") {
				fmt.Fprintf(cmd.OutOrStdout(), "Removing [%s] from list\n", candidate.Address)
				continue
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Have a great breakfast!")
			return nil
		}

		return fmt.Errorf("every candidate was rejected; try a different --query")
	},
}

func init() {
	breakfastCmd.Flags().StringVar(&breakfastQuery, "query", geo.DefaultBreakfastQuery, "place search query")
	breakfastCmd.Flags().StringVar(&breakfastArrive, "arrive", "", "target arrival time (RFC3339)")
}
