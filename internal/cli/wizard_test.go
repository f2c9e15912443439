package cli

import (
	"context"
	"testing"
	"time"

	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/NamiSwwaan/crewplan/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWizard(t *testing.T) (*wizard, *App) {
	t.Helper()

	app := newTestApp(t)
	_, err := app.Workflow.Open(context.Background(), "wizard-test")
	require.NoError(t, err)

	w := newWizard(app)
	w.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return w, app
}

func TestHandleNavigation_Back(t *testing.T) {
	w, app := newTestWizard(t)
	ctx := context.Background()
	require.NoError(t, app.Workflow.JumpTo(ctx, domain.StepTaskPlanning))

	require.NoError(t, w.handleNavigation(ctx, "back", nil))
	assert.Equal(t, domain.StepTechnicalSpec, app.Workflow.State().Step)
}

func TestHandleNavigation_UndoRedo(t *testing.T) {
	w, app := newTestWizard(t)
	ctx := context.Background()
	require.NoError(t, app.Workflow.Advance(ctx))

	require.NoError(t, w.handleNavigation(ctx, "undo", nil))
	assert.Equal(t, domain.StepCEOInput, app.Workflow.State().Step)

	require.NoError(t, w.handleNavigation(ctx, "redo", nil))
	assert.Equal(t, domain.StepTechnicalSpec, app.Workflow.State().Step)
}

func TestHandleNavigation_Quit(t *testing.T) {
	w, _ := newTestWizard(t)

	err := w.handleNavigation(context.Background(), "quit", nil)
	assert.ErrorIs(t, err, errQuitWizard)
}

func TestHandleNavigation_Continue(t *testing.T) {
	w, app := newTestWizard(t)
	ctx := context.Background()

	require.NoError(t, w.handleNavigation(ctx, actionContinue, app.Workflow.Advance))
	assert.Equal(t, domain.StepTechnicalSpec, app.Workflow.State().Step)
}

func TestBoardTeam_ResolvesRosterEntries(t *testing.T) {
	w, app := newTestWizard(t)

	app.Workflow.State().Commit(func(st *workflow.State) {
		st.TaskBoard = []domain.BoardEntry{
			{Task: "Build the API", Employees: []string{"Carol", "Alice"}},
		}
	})

	team := w.boardTeam("Build the API")
	require.Len(t, team, 2)
	// Roster order, not board order.
	assert.Equal(t, "Alice", team[0].Name)
	assert.Equal(t, "Carol", team[1].Name)
	assert.NotEmpty(t, team[0].Email)
}

func TestBoardTeam_UnknownTask(t *testing.T) {
	w, _ := newTestWizard(t)
	assert.Empty(t, w.boardTeam("nope"))
}
