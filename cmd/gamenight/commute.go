package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamenight-tools/gamenight/internal/config"
	"github.com/gamenight-tools/gamenight/internal/geo"
)

var commuteCmd = &cobra.Command{
	Use:   "commute <first-address> <second-address>",
	Short: "Compare each person's drive time between two destinations",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := cfg.RequireMaps(); err != nil {
			return err
		}

		homes, err := geo.LoadHomes(cfg.HomesFile)
		if err != nil {
			return err
		}

		client, err := geo.NewClient(cfg.Maps.APIKey)
		if err != nil {
			return err
		}
		planner, err := geo.NewPlanner(&geo.PlannerConfig{Client: client})
		if err != nil {
			return err
		}

		commutes, err := planner.CompareCommutes(cmd.Context(), homes, args[0], args[1])
		if err != nil {
			return err
		}

		for _, commute := range commutes {
			minutes := int(commute.Delta.Minutes())
			switch {
			case minutes < 0:
				fmt.Fprintf(cmd.OutOrStdout(), "%s would take %d fewer minutes to get to %s.\n",
					commute.Name, -minutes, args[0])
			case minutes > 0:
				fmt.Fprintf(cmd.OutOrStdout(), "%s would take %d more minutes to get to %s.\n",
					commute.Name, minutes, args[0])
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s has the same drive to both.\n", commute.Name)
			}
		}
		return nil
	},
}
