package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) NewRootCmd() *cobra.Command {
	var addr string

	root := &cobra.Command{
		Use:           "authcli",
		Short:         "Command-line client for the authentication service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.connect(addr)
		},
	}

	root.PersistentFlags().StringVarP(&addr, "addr", "a", a.config.ServerEndpointAddr, "auth service address")

	root.AddCommand(a.newSignUpCmd(), a.newSignInCmd(), a.newSignOutCmd())

	return root
}
