package formatter

import (
	"fmt"
	"strings"

	"github.com/NamiSwwaan/crewplan/internal/domain"
)

// FormatDocument renders the project document: technical spec, planned
// tasks, dependencies, skills, and resource needs.
func FormatDocument(doc *domain.ProjectDocument) string {
	if doc == nil {
		return Dim("No project document yet.")
	}

	var b strings.Builder
	b.WriteString(Bold("Technical Specification") + "\n")
	b.WriteString(doc.TechnicalSpec + "\n\n")

	b.WriteString(Bold("Tasks") + "\n")
	if len(doc.Tasks) == 0 {
		b.WriteString(Dim("  none") + "\n")
	}
	for i, task := range doc.Tasks {
		b.WriteString(fmt.Sprintf("  %d. %s  %s\n", i+1, task.Description, PriorityPill(task.Priority)))
	}

	b.WriteString("\n" + Bold("Dependencies") + "\n" + bulletList(doc.Dependencies))
	b.WriteString("\n" + Bold("Skills") + "\n" + bulletList(doc.Skills))
	b.WriteString("\n" + Bold("Resources") + "\n" + FormatResources(doc.Resources))
	return b.String()
}

// FormatResources renders the four fixed resource categories.
func FormatResources(res domain.Resources) string {
	categories := []struct {
		label string
		items []string
	}{
		{"Tech", res.Tech},
		{"Legal", res.Legal},
		{"Finance", res.Finance},
		{"Marketing", res.Marketing},
	}
	var b strings.Builder
	for _, c := range categories {
		value := strings.Join(c.items, ", ")
		if value == "" {
			value = "None"
		}
		b.WriteString(fmt.Sprintf("  %s: %s\n", StyleBlue.Render(c.label), value))
	}
	return b.String()
}

// FormatBoard renders the task board as a table.
func FormatBoard(board []domain.BoardEntry) string {
	if len(board) == 0 {
		return Dim("No tasks assigned yet.")
	}

	headers := []string{"TASK", "EMPLOYEES", "DEADLINE", "DURATION", "DAYS", "PRIORITY"}
	rows := make([][]string, 0, len(board))
	for _, entry := range board {
		rows = append(rows, []string{
			Truncate(entry.Task, 40),
			strings.Join(entry.Employees, ", "),
			entry.Deadline,
			FormatHours(entry.DurationHours),
			FormatDays(entry.DaysNeeded),
			PriorityPill(entry.Priority),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSubTasks renders the per-task sub-task breakdown in board order.
func FormatSubTasks(board []domain.BoardEntry, subTasks map[string][]domain.SubTask) string {
	var b strings.Builder
	for _, entry := range board {
		subs := subTasks[entry.Task]
		if len(subs) == 0 {
			continue
		}
		b.WriteString(Bold(entry.Task) + "\n")
		for _, sub := range subs {
			b.WriteString(fmt.Sprintf("  - %s %s\n", sub.Description, Dim("("+sub.Assigned+")")))
			if sub.Help != "" {
				b.WriteString(Dim("    "+sub.Help) + "\n")
			}
		}
	}
	if b.Len() == 0 {
		return Dim("No sub-tasks yet.")
	}
	return b.String()
}

// FormatRoster renders the employee roster as a table.
func FormatRoster(employees []domain.Employee) string {
	if len(employees) == 0 {
		return Dim("No employees on the roster.")
	}

	headers := []string{"NAME", "ROLE", "EMAIL", "EXPERTISE"}
	rows := make([][]string, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, []string{
			emp.Name,
			emp.Role,
			Dim(emp.Email),
			Truncate(emp.ExpertiseText(), 48),
		})
	}
	return RenderTable(headers, rows)
}

// FormatResponses renders the per-candidate evaluation lines for one task.
func FormatResponses(responses []string) string {
	if len(responses) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range responses {
		switch {
		case strings.HasPrefix(line, "✅"):
			b.WriteString("  " + StyleGreen.Render(line) + "\n")
		case strings.HasPrefix(line, "⚠️"):
			b.WriteString("  " + StyleYellow.Render(line) + "\n")
		case strings.HasPrefix(line, "❌"):
			b.WriteString("  " + StyleRed.Render(line) + "\n")
		default:
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return Dim("  none") + "\n"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  - " + item + "\n")
	}
	return b.String()
}
