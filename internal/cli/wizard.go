package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NamiSwwaan/crewplan/internal/cli/formatter"
	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/NamiSwwaan/crewplan/internal/scheduler"
	"github.com/NamiSwwaan/crewplan/internal/service"
	"github.com/charmbracelet/huh"
)

// errQuitWizard signals a user-requested exit; the session stays resumable.
var errQuitWizard = errors.New("wizard quit")

// wizard drives one planning session through the six steps. Each step
// renders the current state, runs its forms, and hands control back to the
// loop, which re-reads the step from session state so undo, redo, and back
// all land naturally.
type wizard struct {
	svc *service.WorkflowService
	now func() time.Time
}

func newWizard(app *App) *wizard {
	return &wizard{svc: app.Workflow, now: time.Now}
}

func (w *wizard) run(ctx context.Context) error {
	for {
		st := w.svc.State()
		fmt.Println()
		fmt.Println(formatter.StepTracker(st.Step))
		fmt.Println()
		fmt.Println(formatter.StepHeader(st.Step))
		fmt.Println()

		var err error
		switch st.Step {
		case domain.StepCEOInput:
			err = w.stepCEOInput(ctx)
		case domain.StepTechnicalSpec:
			err = w.stepTechnicalSpec(ctx)
		case domain.StepTaskPlanning:
			err = w.stepTaskPlanning(ctx)
		case domain.StepTaskAssignment:
			err = w.stepTaskAssignment(ctx)
		case domain.StepSubTasks:
			err = w.stepSubTasks(ctx)
		case domain.StepProjectReport:
			err = w.stepProjectReport(ctx)
		default:
			return fmt.Errorf("unknown wizard step %d", st.Step)
		}

		if errors.Is(err, errQuitWizard) {
			fmt.Println(formatter.Dim("Session saved. Resume with: crewplan plan --session " + w.svc.SessionID()))
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// stepCEOInput collects the requirement and runs the analyst on it.
func (w *wizard) stepCEOInput(ctx context.Context) error {
	requirement := w.svc.State().CEOInput

	form := formInputText("What should the crew build?", "e.g. a customer feedback portal", true, &requirement)
	if err := form.Run(); err != nil {
		return w.formError(err)
	}

	stop := formatter.StartSpinner("Analyzing requirement...")
	doc, err := w.svc.AnalyzeRequirement(ctx, requirement)
	stop()
	if err != nil {
		return err
	}

	fmt.Println(formatter.FormatDocument(doc))
	return nil
}

// stepTechnicalSpec lets the user review and refine the analyst output.
func (w *wizard) stepTechnicalSpec(ctx context.Context) error {
	doc := w.svc.State().Document
	if doc == nil {
		return w.svc.Retreat(ctx)
	}
	fmt.Println(formatter.FormatDocument(doc))
	fmt.Println()

	action, err := w.pickAction("Technical spec",
		huh.NewOption("Continue to task planning", actionContinue),
		huh.NewOption("Edit specification", "spec"),
		huh.NewOption("Edit dependencies", "deps"),
		huh.NewOption("Edit skills", "skills"),
		huh.NewOption("Edit resources", "resources"),
	)
	if err != nil {
		return err
	}

	switch action {
	case "spec":
		text := doc.TechnicalSpec
		if err := formEditText("Technical specification", "", &text).Run(); err != nil {
			return w.formError(err)
		}
		return w.svc.UpdateTechnicalSpec(ctx, text)
	case "deps":
		return w.editList(ctx, "Dependencies", doc.Dependencies, w.svc.UpdateDependencies)
	case "skills":
		return w.editList(ctx, "Skills", doc.Skills, w.svc.UpdateSkills)
	case "resources":
		res := doc.Resources
		tech := strings.Join(res.Tech, ", ")
		legal := strings.Join(res.Legal, ", ")
		finance := strings.Join(res.Finance, ", ")
		marketing := strings.Join(res.Marketing, ", ")
		if err := formEditResources(&tech, &legal, &finance, &marketing).Run(); err != nil {
			return w.formError(err)
		}
		return w.svc.UpdateResources(ctx, domain.Resources{
			Tech:      parseCSV(tech),
			Legal:     parseCSV(legal),
			Finance:   parseCSV(finance),
			Marketing: parseCSV(marketing),
		})
	default:
		return w.handleNavigation(ctx, action, w.svc.Advance)
	}
}

// stepTaskPlanning shows the planned tasks and gates on approval.
func (w *wizard) stepTaskPlanning(ctx context.Context) error {
	doc := w.svc.State().Document
	if doc == nil {
		return service.ErrNoDocument
	}

	fmt.Println(formatter.Bold("Planned tasks"))
	for i, task := range doc.Tasks {
		fmt.Printf("  %d. %s  %s\n", i+1, task.Description, formatter.PriorityPill(task.Priority))
	}
	fmt.Println()

	action, err := w.pickAction("Task planning",
		huh.NewOption("Approve and continue", actionContinue),
		huh.NewOption("Edit tasks", "tasks"),
	)
	if err != nil {
		return err
	}

	switch action {
	case "tasks":
		text := renderTaskLines(doc.Tasks)
		if err := formEditText("Tasks", "One per line: description | priority", &text).Run(); err != nil {
			return w.formError(err)
		}
		return w.svc.UpdateTasks(ctx, parseTaskLines(text))
	case actionContinue:
		approved := true
		if err := formConfirm("Approve the task board as scrum master?", &approved).Run(); err != nil {
			return w.formError(err)
		}
		if err := w.svc.SetApproval(ctx, approved); err != nil {
			return err
		}
		if !approved {
			fmt.Println(formatter.StyleYellow.Render("Approval withheld. Edit the tasks and try again."))
			return nil
		}
		return w.svc.Advance(ctx)
	default:
		return w.handleNavigation(ctx, action, nil)
	}
}

// stepTaskAssignment estimates and staffs every approved task.
func (w *wizard) stepTaskAssignment(ctx context.Context) error {
	st := w.svc.State()
	if st.Document == nil {
		return service.ErrNoDocument
	}

	assigned := make(map[string]bool, len(st.TaskBoard))
	for _, entry := range st.TaskBoard {
		assigned[entry.Task] = true
	}

	for _, task := range st.Document.Tasks {
		if assigned[task.Description] {
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("✔"), task.Description)
			continue
		}
		if err := w.assignOne(ctx, task); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println(formatter.FormatBoard(w.svc.State().TaskBoard))

	action, err := w.pickAction("Task assignment",
		huh.NewOption("Continue to sub-tasks", actionContinue),
	)
	if err != nil {
		return err
	}
	return w.handleNavigation(ctx, action, w.svc.Advance)
}

func (w *wizard) assignOne(ctx context.Context, task domain.PlannedTask) error {
	fmt.Println(formatter.Bold(task.Description))

	stop := formatter.StartSpinner("Estimating duration and sub-tasks...")
	plan := w.svc.PlanTask(ctx, task.Description)
	stop()

	deadline := w.now().AddDate(0, 0, plan.DaysNeeded).Format("2006-01-02")
	fmt.Printf("  Estimated %s (%s), deadline %s\n",
		formatter.FormatHours(plan.DurationHours), formatter.FormatDays(plan.DaysNeeded), deadline)

	mode := "auto"
	form := formSelect("How should this task be staffed?",
		[]huh.Option[string]{
			huh.NewOption("Ask the crew (AI evaluation)", "auto"),
			huh.NewOption("Pick the team myself", "manual"),
			huh.NewOption("Skip this task", "skip"),
		}, &mode)
	if err := form.Run(); err != nil {
		return w.formError(err)
	}

	switch mode {
	case "manual":
		roster, err := w.svc.Roster()
		if err != nil {
			return err
		}
		var names []string
		if err := formSelectEmployees(roster, &names).Run(); err != nil {
			return w.formError(err)
		}
		err = w.svc.ManualAssign(ctx, plan, task.Priority, deadline, names)
		if errors.Is(err, service.ErrNoEmployeesSelected) {
			fmt.Println(formatter.StyleYellow.Render("Nobody selected, task left unassigned."))
			return nil
		}
		return err
	case "skip":
		return nil
	default:
		_, err := runAssignView(task.Description, func() (scheduler.AssignmentResult, error) {
			return w.svc.AssignTask(ctx, plan, task.Priority, deadline)
		})
		return err
	}
}

// stepSubTasks shows the distributed sub-tasks and allows editing.
func (w *wizard) stepSubTasks(ctx context.Context) error {
	st := w.svc.State()
	fmt.Println(formatter.FormatSubTasks(st.TaskBoard, st.SubTasks))
	fmt.Println()

	options := []huh.Option[string]{
		huh.NewOption("Continue to project report", actionContinue),
	}
	for _, entry := range st.TaskBoard {
		options = append(options, huh.NewOption("Edit sub-tasks: "+entry.Task, "edit:"+entry.Task))
	}

	action, err := w.pickAction("Sub-tasks", options...)
	if err != nil {
		return err
	}

	if task, found := strings.CutPrefix(action, "edit:"); found {
		return w.editSubTasks(ctx, task)
	}
	return w.handleNavigation(ctx, action, w.svc.Advance)
}

func (w *wizard) editSubTasks(ctx context.Context, task string) error {
	st := w.svc.State()
	text := renderSubTaskLines(st.SubTasks[task])
	if err := formEditText("Sub-tasks for "+task, "One per line: description | help", &text).Run(); err != nil {
		return w.formError(err)
	}

	subTasks := parseSubTaskLines(text)

	// Edited sub-tasks are re-dealt round-robin over the assigned team.
	if team := w.boardTeam(task); len(team) > 0 {
		subTasks = scheduler.DistributeSubTasks(subTasks, team)
	}
	return w.svc.UpdateSubTasks(ctx, task, subTasks)
}

// boardTeam resolves the board entry's employee names back to roster entries.
func (w *wizard) boardTeam(task string) []domain.Employee {
	roster, err := w.svc.Roster()
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range w.svc.State().TaskBoard {
		if entry.Task == task {
			names = entry.Employees
			break
		}
	}
	var team []domain.Employee
	for _, emp := range roster {
		for _, name := range names {
			if emp.Name == name {
				team = append(team, emp)
			}
		}
	}
	return team
}

// stepProjectReport renders the final report and offers export.
func (w *wizard) stepProjectReport(ctx context.Context) error {
	report, err := w.svc.BuildReport()
	if errors.Is(err, service.ErrEmptyBoard) {
		fmt.Println(formatter.StyleYellow.Render("Nothing to report: no tasks were assigned."))
	} else if err != nil {
		return err
	} else {
		fmt.Println(formatter.RenderBox("Project Report", report))
	}

	action, err := w.pickAction("Project report",
		huh.NewOption("Finish", "finish"),
		huh.NewOption("Export plan as JSON", "export"),
	)
	if err != nil {
		return err
	}

	switch action {
	case "export":
		path := "project_plan.json"
		if err := formInputText("Export path", path, true, &path).Run(); err != nil {
			return w.formError(err)
		}
		if err := exportPlanToFile(w.svc, path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	case "finish":
		fmt.Println(formatter.StyleGreen.Render("Planning complete."))
		return errQuitWizard
	default:
		return w.handleNavigation(ctx, action, nil)
	}
}

const actionContinue = "continue"

// pickAction shows the step's action menu with the shared navigation
// entries appended: back, undo, redo, and quit.
func (w *wizard) pickAction(title string, options ...huh.Option[string]) (string, error) {
	st := w.svc.State()
	if st.Step > domain.StepCEOInput {
		options = append(options, huh.NewOption("Back", "back"))
	}
	if st.CanUndo() {
		options = append(options, huh.NewOption("Undo", "undo"))
	}
	if st.CanRedo() {
		options = append(options, huh.NewOption("Redo", "redo"))
	}
	options = append(options, huh.NewOption("Save and quit", "quit"))

	action := options[0].Value
	if err := formSelect(title, options, &action).Run(); err != nil {
		return "", w.formError(err)
	}
	return action, nil
}

// handleNavigation executes the shared navigation actions. onContinue runs
// for the continue action; nil means the step handled it already.
func (w *wizard) handleNavigation(ctx context.Context, action string, onContinue func(context.Context) error) error {
	switch action {
	case actionContinue:
		if onContinue != nil {
			return onContinue(ctx)
		}
		return nil
	case "back":
		return w.svc.Retreat(ctx)
	case "undo":
		return w.svc.Undo(ctx)
	case "redo":
		return w.svc.Redo(ctx)
	case "quit":
		return errQuitWizard
	default:
		return nil
	}
}

// editList runs the line editor over a string list and saves through the
// given service call.
func (w *wizard) editList(ctx context.Context, title string, current []string, save func(context.Context, []string) error) error {
	text := joinLines(current)
	if err := formEditText(title, "One entry per line", &text).Run(); err != nil {
		return w.formError(err)
	}
	return save(ctx, parseLines(text))
}

// formError maps a huh abort (Esc or Ctrl+C) to a clean quit.
func (w *wizard) formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return errQuitWizard
	}
	return err
}
