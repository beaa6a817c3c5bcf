// Package main is the entry point for the gamenight toolbox
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gamenight",
	Short: "Utilities for the game night group",
	Long: `gamenight bundles the small tools the group keeps reaching for:
filling the 5e character sheet PDF from a JSON file, settling dice-odds
arguments, mailing out a codenames key grid, and picking a breakfast spot
that is fair to everyone.`,
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(diceCmd)
	rootCmd.AddCommand(codenamesCmd)
	rootCmd.AddCommand(breakfastCmd)
	rootCmd.AddCommand(commuteCmd)
}
