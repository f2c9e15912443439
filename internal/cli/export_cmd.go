package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/NamiSwwaan/crewplan/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var sessionID, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the project plan as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, sessionID)
			if err != nil {
				return err
			}
			if _, err := app.Workflow.Open(ctx, id); err != nil {
				return err
			}

			if out == "-" {
				data, err := app.Workflow.ExportPlan()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if err := exportPlanToFile(app.Workflow, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID (defaults to the most recent)")
	cmd.Flags().StringVar(&out, "out", "project_plan.json", "Output path, or - for stdout")

	return cmd
}

func exportPlanToFile(svc *service.WorkflowService, path string) error {
	data, err := svc.ExportPlan()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}
