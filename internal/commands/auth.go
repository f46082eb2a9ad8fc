package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"alloggi/internal/domains/auth/model"
)

func loginCmd() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			err := app.Auth.Login(cmd.Context(), model.Credentials{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Println("Accesso effettuato.")

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and discard the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()

			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Println("Sessione terminata.")

			return nil
		},
	}
}
