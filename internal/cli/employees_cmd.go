package cli

import (
	"fmt"

	"github.com/NamiSwwaan/crewplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEmployeesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "Show the employee roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Workflow.Roster()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoster(employees))
			return nil
		},
	}
}
