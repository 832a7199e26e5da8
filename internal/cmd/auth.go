package cmd

import (
	"github.com/KlienGumapac/freedomewall/pkg/service"
	"github.com/spf13/cobra"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save a bearer token",
	Long: `Save a bearer token for write commands. Tokens are issued out of band,
for example with "seed token <username>". Without --token the token is read from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService().Login(loginToken)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService().Logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService().WhoAmI()
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "JWT bearer token")
}
