// gcal-auth authorizes Google Calendar sync for an OAuth desktop client and
// writes the token the planner reads at startup.
//
// Usage:
//
//	go run ./scripts/gcal-auth --credentials google-credentials.json
//
// Service account credentials need no token; point
// google_calendar.credentials_path at them directly.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:          "gcal-auth",
		Short:        "Authorize Google Calendar access and save an OAuth token",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return authorize(cmd, credsPath, tokenPath)
		},
	}
	cmd.Flags().StringVarP(&credsPath, "credentials", "c", "google-credentials.json", "OAuth desktop client credentials file")
	cmd.Flags().StringVarP(&tokenPath, "token", "o", "token.json", "Where to write the token; the planner reads ./token.json")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func authorize(cmd *cobra.Command, credsPath, tokenPath string) error {
	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credsPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("parse credentials (expected an OAuth desktop client): %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "1. Open this URL and sign in with the account whose calendar should receive tasks:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, cfg.AuthCodeURL("wellness-planner", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code here: ")

	var code string
	if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := cfg.Exchange(context.Background(), code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", tokenPath, err)
	}

	fmt.Fprintf(out, "\nToken saved to %s. Restart the planner to enable calendar sync.\n", tokenPath)
	return nil
}
