package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamenight-tools/gamenight/internal/codenames"
	"github.com/gamenight-tools/gamenight/internal/config"
	"github.com/gamenight-tools/gamenight/internal/mail"
)

var codenamesCmd = &cobra.Command{
	Use:   "codenames",
	Short: "Generate a three-team codenames key grid and mail it to the spymasters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		if err := cfg.RequireSMTP(); err != nil {
			return err
		}

		grid := codenames.NewGenerator(nil).Generate()

		sender, err := mail.NewSMTPSender(cfg.SMTP)
		if err != nil {
			return err
		}

		msg := &mail.Message{
			Subject: fmt.Sprintf("Codenames key grid %s", grid.ID),
			Body: fmt.Sprintf("Key %s\n\n%s\n\nB blue, R red, G green, N neutral, A assassin\n",
				grid.ID, grid.String()),
		}
		if err := sender.Send(cmd.Context(), msg); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Codenames grid sent!")
		return nil
	},
}
