package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clainai/pkg/gcalendar"
)

func newCalendarAuthCmd() *cobra.Command {
	var credentialsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save token.json",
		Long: `Run once on a machine with a browser. Open the printed URL, sign in with
the Google account that owns the reminder calendar, then paste the code back.
Service account credentials do not need this step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credentialsPath, err)
			}

			auth, err := gcalendar.NewAuthorizer(data)
			if err != nil {
				return fmt.Errorf("%q is not an OAuth desktop credentials file: %w", credentialsPath, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Step 1: open this URL and sign in:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, auth.AuthCodeURL("clainai-calendar"))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Step 2: paste the authorization code and press Enter: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}

			if err := auth.ExchangeAndSave(cmd.Context(), code, tokenPath); err != nil {
				return err
			}

			fmt.Fprintf(out, "\ntoken saved to %s, restart the service to enable reminders\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", "google-credentials.json", "OAuth desktop credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "where to write the OAuth token")
	return cmd
}
