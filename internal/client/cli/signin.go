package cli

import (
	"fmt"

	pb "github.com/epavlovs/auth-service/internal/proto"
	"github.com/spf13/cobra"
)

func (a *App) newSignInCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and obtain a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := GetPassword(a.out)
				if err != nil {
					return err
				}
				password = pw
			}

			resp, err := a.client.SignIn(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "SignIn status: %s\n", resp.GetStatusCode())
			if resp.GetStatusCode() == pb.StatusCode_SUCCESS {
				fmt.Fprintf(a.out, "Session token: %s\n", resp.GetSessionToken())
				fmt.Fprintf(a.out, "User id: %s\n", resp.GetUserId())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
