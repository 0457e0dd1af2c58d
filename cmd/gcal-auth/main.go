package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shareit/config"
	"shareit/pkg/gcalendar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run once outside containers to authorize OAuth installed-app credentials
// and write the token the API reads on startup.
func newRootCmd() *cobra.Command {
	var credentialsPath, tokenPath string

	cmd := &cobra.Command{
		Use:          "gcal-auth",
		Short:        "Authorize Google Calendar access and save the OAuth token",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if credentialsPath == "" || tokenPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if credentialsPath == "" {
					credentialsPath = cfg.GoogleCalendar.CredentialsPath
				}
				if tokenPath == "" {
					tokenPath = cfg.GoogleCalendar.TokenPath
				}
			}
			if credentialsPath == "" {
				return fmt.Errorf("no credentials: pass --credentials or set google_calendar.credentials_path")
			}

			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", credentialsPath, err)
			}
			flow, err := gcalendar.NewInstalledAppFlow(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Open this URL, sign in and approve calendar access:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, flow.AuthURL("shareit"))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Paste the authorization code: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := flow.Exchange(cmd.Context(), code)
			if err != nil {
				return err
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}
			fmt.Fprintf(out, "token saved to %s, restart the API to enable calendar sync\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth Desktop App credentials file (defaults to config)")
	cmd.Flags().StringVar(&tokenPath, "token", "", "Where to write the token (defaults to config)")

	return cmd
}
