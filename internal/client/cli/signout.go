package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newSignOutCmd() *cobra.Command {
	var sessionToken string

	cmd := &cobra.Command{
		Use:   "signout",
		Short: "Revoke a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.SignOut(cmd.Context(), sessionToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "SignOut status: %s\n", resp.GetStatusCode())
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionToken, "session-token", "s", "", "session token to revoke")
	_ = cmd.MarkFlagRequired("session-token")

	return cmd
}
