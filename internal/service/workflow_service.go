// Package service wires the planning engine together: one WorkflowService
// instance owns one session's state, runs the intelligence and scheduling
// layers, and persists after every mutation.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NamiSwwaan/crewplan/internal/config"
	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/NamiSwwaan/crewplan/internal/estimate"
	"github.com/NamiSwwaan/crewplan/internal/intelligence"
	"github.com/NamiSwwaan/crewplan/internal/repository"
	"github.com/NamiSwwaan/crewplan/internal/scheduler"
	"github.com/NamiSwwaan/crewplan/internal/workflow"
)

var (
	// ErrNoDocument indicates an edit was attempted before analysis produced
	// a project document.
	ErrNoDocument = errors.New("no project document yet; analyze a requirement first")

	// ErrEmptyBoard indicates a report or export was requested before any
	// task was assigned.
	ErrEmptyBoard = errors.New("no tasks assigned yet")

	// ErrNoEmployeesSelected indicates a manual assignment named nobody.
	ErrNoEmployeesSelected = errors.New("no employees selected")
)

// TaskPlan is the estimate produced for one task before assignment: the
// adjusted duration, its workday equivalent, and the generated sub-tasks.
type TaskPlan struct {
	Task          string
	DurationHours float64
	DaysNeeded    int
	SubTasks      []domain.SubTask
}

// WorkflowService drives one planning session end to end. It is not safe
// for concurrent use; when two processes open the same session, the last
// writer wins.
type WorkflowService struct {
	cfg         config.Config
	analyst     intelligence.AnalystService
	estimator   intelligence.EstimatorService
	coordinator *scheduler.Coordinator
	employees   *repository.EmployeeStore
	sessions    repository.SessionRepo

	sessionID string
	state     *workflow.State
}

// New creates a WorkflowService. Call Open before anything else.
func New(
	cfg config.Config,
	analyst intelligence.AnalystService,
	estimator intelligence.EstimatorService,
	evaluator scheduler.Evaluator,
	employees *repository.EmployeeStore,
	sessions repository.SessionRepo,
) *WorkflowService {
	return &WorkflowService{
		cfg:         cfg,
		analyst:     analyst,
		estimator:   estimator,
		coordinator: scheduler.NewCoordinator(evaluator, cfg.BaseDelay),
		employees:   employees,
		sessions:    sessions,
	}
}

// Open loads the session record, or starts a fresh one when the record is
// missing or corrupt. Returns true when an existing session was restored.
func (s *WorkflowService) Open(ctx context.Context, sessionID string) (bool, error) {
	s.sessionID = sessionID

	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.state = workflow.NewState()
			return false, s.persist(ctx)
		}
		return false, fmt.Errorf("opening session: %w", err)
	}
	s.state = state
	return true, nil
}

// State exposes the live session state for rendering. Callers must mutate
// only through service operations.
func (s *WorkflowService) State() *workflow.State {
	return s.state
}

// SessionID returns the id of the open session.
func (s *WorkflowService) SessionID() string {
	return s.sessionID
}

// AnalyzeRequirement runs the analyst on the requirement, installs the
// resulting document, and advances to the technical spec step.
func (s *WorkflowService) AnalyzeRequirement(ctx context.Context, requirement string) (*domain.ProjectDocument, error) {
	doc, err := s.analyst.Analyze(ctx, requirement)
	if err != nil {
		return nil, err
	}

	s.state.Commit(func(st *workflow.State) {
		st.CEOInput = requirement
		st.Document = doc
	})
	s.state.Advance()
	return doc, s.persist(ctx)
}

// UpdateTechnicalSpec replaces the technical specification text.
func (s *WorkflowService) UpdateTechnicalSpec(ctx context.Context, spec string) error {
	return s.updateDocument(ctx, func(doc *domain.ProjectDocument) {
		doc.TechnicalSpec = spec
	})
}

// UpdateTasks replaces the planned task list, dropping blank rows.
func (s *WorkflowService) UpdateTasks(ctx context.Context, tasks []domain.PlannedTask) error {
	return s.updateDocument(ctx, func(doc *domain.ProjectDocument) {
		kept := make([]domain.PlannedTask, 0, len(tasks))
		for _, task := range tasks {
			if strings.TrimSpace(task.Description) == "" {
				continue
			}
			if !domain.ValidPriorities[task.Priority] {
				task.Priority = domain.PriorityMedium
			}
			kept = append(kept, task)
		}
		doc.Tasks = kept
	})
}

// UpdateDependencies replaces the dependency list.
func (s *WorkflowService) UpdateDependencies(ctx context.Context, deps []string) error {
	return s.updateDocument(ctx, func(doc *domain.ProjectDocument) {
		doc.Dependencies = deps
	})
}

// UpdateSkills replaces the skill list.
func (s *WorkflowService) UpdateSkills(ctx context.Context, skills []string) error {
	return s.updateDocument(ctx, func(doc *domain.ProjectDocument) {
		doc.Skills = skills
	})
}

// UpdateResources replaces the resource needs.
func (s *WorkflowService) UpdateResources(ctx context.Context, resources domain.Resources) error {
	return s.updateDocument(ctx, func(doc *domain.ProjectDocument) {
		doc.Resources = resources
	})
}

// SetApproval records the scrum master's sign-off on the task board.
func (s *WorkflowService) SetApproval(ctx context.Context, approved bool) error {
	s.state.Commit(func(st *workflow.State) {
		st.Approval = approved
	})
	return s.persist(ctx)
}

func (s *WorkflowService) updateDocument(ctx context.Context, edit func(*domain.ProjectDocument)) error {
	if s.state.Document == nil {
		return ErrNoDocument
	}
	s.state.Commit(func(st *workflow.State) {
		edit(st.Document)
	})
	return s.persist(ctx)
}

// PlanTask estimates one task: the raw duration is trimmed to 75% with a
// two-hour floor, then converted to workdays.
func (s *WorkflowService) PlanTask(ctx context.Context, task string) TaskPlan {
	est := s.estimator.Estimate(ctx, task)
	adjusted := estimate.AdjustDuration(est.DurationHours)
	return TaskPlan{
		Task:          task,
		DurationHours: adjusted,
		DaysNeeded:    estimate.DaysNeeded(adjusted, s.cfg.HoursPerDay),
		SubTasks:      est.SubTasks,
	}
}

// AssignTask runs the assignment decision loop for one planned task:
// similarity ranking, capped candidate evaluation, then round-robin
// sub-task distribution over the accepting team. The board entry and
// sub-tasks are recorded only when someone accepted; the response lines are
// recorded either way.
func (s *WorkflowService) AssignTask(ctx context.Context, plan TaskPlan, priority domain.Priority, deadline string) (scheduler.AssignmentResult, error) {
	employees, err := s.employees.Load()
	if err != nil {
		return scheduler.AssignmentResult{}, err
	}

	// Ranking is advisory; without it every candidate scores zero and
	// roster order decides who gets asked.
	ranked, err := scheduler.RankEmployees(plan.Task, employees)
	if err != nil {
		ranked = nil
	}

	result := s.coordinator.Assign(ctx, plan.Task, employees, ranked, s.cfg.MaxEmployeesPerTask)

	s.state.Commit(func(st *workflow.State) {
		st.AssignmentResponses[plan.Task] = result.Responses
		if len(result.Assigned) == 0 {
			return
		}
		upsertBoardEntry(st, boardEntry(plan, priority, deadline, result.Assigned, s.cfg.HoursPerDay))
		st.SubTasks[plan.Task] = scheduler.DistributeSubTasks(plan.SubTasks, result.Assigned)
	})
	return result, s.persist(ctx)
}

// ManualAssign puts a hand-picked team on a task, bypassing evaluation.
// The same team size cap applies as for AI assignment. Unknown names are
// ignored.
func (s *WorkflowService) ManualAssign(ctx context.Context, plan TaskPlan, priority domain.Priority, deadline string, names []string) error {
	employees, err := s.employees.Load()
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	var assigned []domain.Employee
	for _, emp := range employees {
		if wanted[emp.Name] && len(assigned) < s.cfg.MaxEmployeesPerTask {
			assigned = append(assigned, emp)
		}
	}
	if len(assigned) == 0 {
		return ErrNoEmployeesSelected
	}

	s.state.Commit(func(st *workflow.State) {
		upsertBoardEntry(st, boardEntry(plan, priority, deadline, assigned, s.cfg.HoursPerDay))
		st.SubTasks[plan.Task] = scheduler.DistributeSubTasks(plan.SubTasks, assigned)
	})
	return s.persist(ctx)
}

// UpdateSubTasks replaces the sub-task list for one board task.
func (s *WorkflowService) UpdateSubTasks(ctx context.Context, task string, subTasks []domain.SubTask) error {
	s.state.Commit(func(st *workflow.State) {
		st.SubTasks[task] = subTasks
	})
	return s.persist(ctx)
}

// Roster loads the employee list for display.
func (s *WorkflowService) Roster() ([]domain.Employee, error) {
	return s.employees.Load()
}

// Advance moves to the next wizard step.
func (s *WorkflowService) Advance(ctx context.Context) error {
	s.state.Advance()
	return s.persist(ctx)
}

// Retreat moves to the previous wizard step.
func (s *WorkflowService) Retreat(ctx context.Context) error {
	s.state.Retreat()
	return s.persist(ctx)
}

// JumpTo moves directly to a wizard step.
func (s *WorkflowService) JumpTo(ctx context.Context, step domain.Step) error {
	s.state.JumpTo(step)
	return s.persist(ctx)
}

// Undo reverts the last recorded change.
func (s *WorkflowService) Undo(ctx context.Context) error {
	s.state.Undo()
	return s.persist(ctx)
}

// Redo reapplies the last undone change.
func (s *WorkflowService) Redo(ctx context.Context) error {
	s.state.Redo()
	return s.persist(ctx)
}

func (s *WorkflowService) persist(ctx context.Context) error {
	if err := s.sessions.Save(ctx, s.sessionID, s.state); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}

func boardEntry(plan TaskPlan, priority domain.Priority, deadline string, team []domain.Employee, hoursPerDay int) domain.BoardEntry {
	names := make([]string, len(team))
	emails := make([]string, len(team))
	for i, emp := range team {
		names[i] = emp.Name
		emails[i] = emp.Email
	}
	return domain.BoardEntry{
		Task:          plan.Task,
		Employees:     names,
		Emails:        emails,
		Deadline:      deadline,
		DurationHours: plan.DurationHours,
		DaysNeeded:    estimate.DaysNeeded(plan.DurationHours, hoursPerDay),
		Priority:      priority,
	}
}

// upsertBoardEntry replaces the entry for the same task, or appends.
func upsertBoardEntry(st *workflow.State, entry domain.BoardEntry) {
	for i, existing := range st.TaskBoard {
		if existing.Task == entry.Task {
			st.TaskBoard[i] = entry
			return
		}
	}
	st.TaskBoard = append(st.TaskBoard, entry)
}
