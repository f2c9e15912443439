package cli

import (
	"github.com/NamiSwwaan/crewplan/internal/config"
	"github.com/NamiSwwaan/crewplan/internal/repository"
	"github.com/NamiSwwaan/crewplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to everything CLI commands need.
type App struct {
	Config   config.Config
	Workflow *service.WorkflowService
	Sessions repository.SessionRepo

	// IsInteractive reports whether stdin/stdout are a terminal. The plan
	// wizard refuses to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "crewplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "crewplan",
		Short: "Guided project planning with an AI-assisted crew",
	}

	root.AddCommand(
		newPlanCmd(app),
		newSessionsCmd(app),
		newEmployeesCmd(app),
		newReportCmd(app),
		newExportCmd(app),
	)

	return root
}
