package cli

import (
	"github.com/spf13/cobra"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Player profile commands",
	}

	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileResetCmd())

	return cmd
}

func newProfileShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <player-id>",
		Short: "Show a player's saved profile (or the default if none is saved)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Sessions.LoadProfile(cmd.Context(), model.PlayerID(args[0]))
			if err != nil {
				return displayErr(err)
			}

			out := NewOutput(cfg.Output)
			out.Print(profileResult{Profile: *profile})
			return nil
		},
	}

	return cmd
}

func newProfileResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <player-id>",
		Short: "Overwrite a player's saved profile with the starting stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.PlayerID(args[0])
			if err := app.Sessions.SaveProfile(cmd.Context(), id, model.DefaultProfile(id)); err != nil {
				return displayErr(err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Profile reset to starting stats.")
			return nil
		},
	}

	return cmd
}
