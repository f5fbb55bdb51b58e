package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
)

// displayErr converts an internal error into the short message shown to
// the player; raw error text never reaches the terminal.
func displayErr(err error) error {
	return errors.New(model.DisplayMessage(err))
}

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management commands",
	}

	cmd.AddCommand(newAccountRegisterCmd())
	cmd.AddCommand(newAccountLoginCmd())
	cmd.AddCommand(newAccountExistsCmd())

	return cmd
}

func newAccountRegisterCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Register(cmd.Context(), user, pass); err != nil {
				return displayErr(err)
			}

			account, err := app.Credentials.Authenticate(user, pass)
			if err != nil {
				return displayErr(err)
			}

			out := NewOutput(cfg.Output)
			out.Print(accountResult{
				Username:  account.Username,
				PlayerID:  string(account.PlayerID),
				CreatedAt: account.CreatedAt,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "username", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&pass, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAccountLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify a login and show the player's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			// Same message flow the game UI drives: the login
			// notification carries the authenticated account.
			unsubscribe := app.Sessions.OnLogin(func(e model.SessionEvent) {
				out.PrintMessage(fmt.Sprintf("Welcome back, %s!", e.Account.Username))
			})
			defer unsubscribe()

			if err := app.Sessions.Login(cmd.Context(), user, pass); err != nil {
				return displayErr(err)
			}
			defer app.Sessions.Logout()

			current := app.Sessions.CurrentUser()
			profile, err := app.Sessions.LoadProfile(cmd.Context(), current.PlayerID)
			if err != nil {
				return displayErr(err)
			}

			out.Print(profileResult{Profile: *profile})
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "username", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&pass, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAccountExistsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists <username>",
		Short: "Check whether a username is registered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if app.Credentials.Exists(args[0]) {
				out.PrintMessage(fmt.Sprintf("Username %q is taken.", args[0]))
			} else {
				out.PrintMessage(fmt.Sprintf("Username %q is available.", args[0]))
			}
			return nil
		},
	}

	return cmd
}
