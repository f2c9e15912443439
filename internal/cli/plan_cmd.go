package cli

import (
	"context"
	"fmt"

	"github.com/NamiSwwaan/crewplan/internal/cli/formatter"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run the guided planning wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the planning wizard needs an interactive terminal")
			}

			ctx := context.Background()
			if sessionID == "" {
				sessionID = uuid.New().String()
			}

			restored, err := app.Workflow.Open(ctx, sessionID)
			if err != nil {
				return err
			}
			if restored {
				fmt.Println(formatter.Dim("Resumed session " + sessionID))
			} else {
				fmt.Println(formatter.Dim("Started session " + sessionID))
			}

			return newWizard(app).run(ctx)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID to resume")

	return cmd
}
