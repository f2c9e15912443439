package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the project report for a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, sessionID)
			if err != nil {
				return err
			}
			if _, err := app.Workflow.Open(ctx, id); err != nil {
				return err
			}

			report, err := app.Workflow.BuildReport()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID (defaults to the most recent)")

	return cmd
}

// resolveSessionID returns the given id, or the most recently updated
// session when empty.
func resolveSessionID(ctx context.Context, app *App, sessionID string) (string, error) {
	if sessionID != "" {
		return sessionID, nil
	}
	sessions, err := app.Sessions.List(ctx)
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return "", fmt.Errorf("no sessions found; run crewplan plan first")
	}
	return sessions[0].ID, nil
}
