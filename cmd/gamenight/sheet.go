package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamenight-tools/gamenight/internal/character"
	"github.com/gamenight-tools/gamenight/internal/sheet"
	"github.com/gamenight-tools/gamenight/internal/sheet/pdfform"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "D&D 5e character sheet tools",
}

var sheetFillCmd = &cobra.Command{
	Use:   "fill <character.json> <template.pdf> <output.pdf>",
	Short: "Fill the official character sheet PDF from a character JSON file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		char, err := character.DecodeFile(args[0])
		if err != nil {
			return err
		}

		fields, err := sheet.Map(char)
		if err != nil {
			return err
		}

		if err := pdfform.New().Fill(args[1], args[2], fields); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Character sheet saved to: %s\n", args[2])
		return nil
	},
}

var sheetExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print an example character JSON to start from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := json.MarshalIndent(character.Example(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var sheetFieldsCmd = &cobra.Command{
	Use:   "fields <template.pdf>",
	Short: "List the form field names in a PDF template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := pdfform.New().ListFields(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Form fields in PDF:")
		for _, field := range fields {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", field)
		}
		return nil
	},
}

func init() {
	sheetCmd.AddCommand(sheetFillCmd)
	sheetCmd.AddCommand(sheetExampleCmd)
	sheetCmd.AddCommand(sheetFieldsCmd)
}
