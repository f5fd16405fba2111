package command

// root.go defines the root command for the fightcard CLI.
// set up the global flags here.

import (
	"fmt"
	"os"

	"fightcard/cmd/cli/authentication"
	"fightcard/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var apiURL string // Global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fightcard",
	Short: "fightcard - rate and discuss MMA fights from the terminal",
	Long: `fightcard talks to the fight card API. Use it to:
- Browse events and fights with their community ratings
- Rate fights from 1 to 5
- Read and post comments

Use "fightcard [command] --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "✗", err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("FIGHTCARD_API", "http://localhost:8080"), "API server URL")

	rootCmd.AddCommand(authCmd, fightCmd, eventCmd, rateCmd, commentCmd)
}

// newClient returns a client carrying the stored session when there is one.
// Reads work anonymously, so a missing session is not an error here.
func newClient() *client.HTTPClient {
	httpClient := client.NewHTTPClient(apiURL)
	if creds, err := authentication.GetTokens(); err == nil {
		httpClient.SetToken(creds.Token)
	}
	return httpClient
}

// GetAuthenticatedClient fails early when nobody is logged in.
func GetAuthenticatedClient() (*client.HTTPClient, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, fmt.Errorf("not logged in, please run 'fightcard auth login'")
	}
	httpClient := client.NewHTTPClient(apiURL)
	httpClient.SetToken(creds.Token)
	return httpClient, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func success(format string, args ...any) {
	color.Green("✓ "+format, args...)
}
