package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/NamiSwwaan/crewplan/internal/domain"
)

// BuildReport renders the final plain-text project report: requirement,
// specification, resources, and every assignment with its sub-tasks.
func (s *WorkflowService) BuildReport() (string, error) {
	st := s.state
	if len(st.TaskBoard) == 0 {
		return "", ErrEmptyBoard
	}

	project := st.CEOInput
	if project == "" {
		project = "Unnamed Project"
	}

	var lines []string
	lines = append(lines,
		fmt.Sprintf("Project: %s", project),
		fmt.Sprintf("Technical Specification: %s", documentSpec(st.Document)),
		"",
		"Resources:",
	)
	lines = append(lines, resourceLines(st.Document)...)
	lines = append(lines, "", "Tasks and Assignments:")

	for _, entry := range st.TaskBoard {
		lines = append(lines,
			fmt.Sprintf("- Task: %s", entry.Task),
			fmt.Sprintf("  Employees: %s", strings.Join(entry.Employees, ", ")),
			fmt.Sprintf("  Deadline: %s", entry.Deadline),
			fmt.Sprintf("  Duration: %.1f hours", entry.DurationHours),
			fmt.Sprintf("  Priority: %s", entry.Priority),
		)
		if subTasks, ok := st.SubTasks[entry.Task]; ok && len(subTasks) > 0 {
			lines = append(lines, "  Sub-tasks:")
			for _, sub := range subTasks {
				lines = append(lines, fmt.Sprintf("    - %s (Assigned: %s)", sub.Description, sub.Assigned))
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}

// ProjectPlan is the exported plan document.
type ProjectPlan struct {
	Project       string                      `json:"project"`
	TechnicalSpec string                      `json:"technical_spec"`
	Tasks         []domain.BoardEntry         `json:"tasks"`
	SubTasks      map[string][]domain.SubTask `json:"sub_tasks"`
	Resources     domain.Resources            `json:"resources"`
}

// ExportPlan serializes the plan for download or handoff.
func (s *WorkflowService) ExportPlan() ([]byte, error) {
	st := s.state
	if len(st.TaskBoard) == 0 {
		return nil, ErrEmptyBoard
	}

	plan := ProjectPlan{
		Project:       st.CEOInput,
		TechnicalSpec: documentSpec(st.Document),
		Tasks:         st.TaskBoard,
		SubTasks:      st.SubTasks,
	}
	if st.Document != nil {
		plan.Resources = st.Document.Resources
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding project plan: %w", err)
	}
	return data, nil
}

func documentSpec(doc *domain.ProjectDocument) string {
	if doc == nil {
		return ""
	}
	return doc.TechnicalSpec
}

func resourceLines(doc *domain.ProjectDocument) []string {
	var res domain.Resources
	if doc != nil {
		res = doc.Resources
	}
	categories := []struct {
		label string
		items []string
	}{
		{"Tech", res.Tech},
		{"Legal", res.Legal},
		{"Finance", res.Finance},
		{"Marketing", res.Marketing},
	}
	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		value := strings.Join(c.items, ", ")
		if value == "" {
			value = "None"
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", c.label, value))
	}
	return lines
}
