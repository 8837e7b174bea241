package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newSignUpCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := GetPassword(a.out)
				if err != nil {
					return err
				}
				password = pw
			}

			resp, err := a.client.SignUp(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "SignUp status: %s\n", resp.GetStatusCode())
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
