package command

import (
	"fmt"
	"net/http"

	"fightcard/cmd/cli/authentication"
	"fightcard/cmd/cli/command/client"
	"fightcard/cmd/cli/dto"

	"github.com/spf13/cobra"
)

// authCmd represents the auth command for authentication related subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the fight card API. Supports register, login, logout and whoami.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		user, err := httpClient.Register(&dto.RegisterRequest{Username: username, Password: password})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		if err := login(httpClient, username, password); err != nil {
			return err
		}
		success("Registered and logged in as %s (%s)", user.Username, user.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if err := login(client.NewHTTPClient(apiURL), username, password); err != nil {
			return err
		}
		success("Logged in as %s", username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		// the local session goes away even if the server is unreachable
		if err := httpClient.Logout(); err != nil {
			fmt.Println("warning: server logout failed:", err)
		}
		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("failed to clear stored session: %w", err)
		}
		success("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		user, err := httpClient.Me()
		if client.IsStatus(err, http.StatusUnauthorized) {
			_ = authentication.DeleteTokens()
			return fmt.Errorf("session expired, please log in again")
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", user.Username, user.ID)
		return nil
	},
}

func login(httpClient *client.HTTPClient, username, password string) error {
	auth, err := httpClient.Login(&dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	return authentication.StoreTokens(&authentication.StoredCredentials{
		Token:    auth.Token,
		UserID:   auth.ID,
		Username: auth.Username,
	})
}

func init() {
	authCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)

	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringP("username", "u", "", "Username")
		c.Flags().StringP("password", "p", "", "Password")
		_ = c.MarkFlagRequired("username")
		_ = c.MarkFlagRequired("password")
	}
}
