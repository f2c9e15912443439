package cli

import (
	"fmt"
	"strings"

	"github.com/NamiSwwaan/crewplan/internal/cli/formatter"
	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// crewplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func crewplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formInputText creates a huh form for a single text input.
func formInputText(title, placeholder string, required bool, result *string) *huh.Form {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(result)

	if required {
		input = input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", title)
			}
			return nil
		})
	}

	return huh.NewForm(
		huh.NewGroup(input),
	).WithTheme(crewplanHuhTheme()).WithShowHelp(false)
}

// formEditText creates a huh form with a multi-line text area seeded with
// the current value.
func formEditText(title, description string, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Description(description).
				Value(result),
		),
	).WithTheme(crewplanHuhTheme()).WithShowHelp(false)
}

// formConfirm creates a huh form for a yes/no confirmation.
func formConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(crewplanHuhTheme()).WithShowHelp(false)
}

// formSelect creates a huh form to pick one of the given options.
func formSelect(title string, options []huh.Option[string], result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(result),
		),
	).WithTheme(crewplanHuhTheme()).WithShowHelp(false)
}

// formSelectEmployees creates a huh form to pick team members by name.
func formSelectEmployees(employees []domain.Employee, result *[]string) *huh.Form {
	options := make([]huh.Option[string], 0, len(employees))
	for _, emp := range employees {
		label := fmt.Sprintf("%s — %s", emp.Name, emp.Role)
		options = append(options, huh.NewOption(label, emp.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Pick the team").
				Options(options...).
				Value(result),
		),
	).WithTheme(crewplanHuhTheme()).WithShowHelp(false)
}

// parseLines splits a textarea value into trimmed, non-empty lines.
func parseLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// parseTaskLines converts "description | priority" lines into planned
// tasks. A missing or unknown priority falls back to Medium.
func parseTaskLines(text string) []domain.PlannedTask {
	var out []domain.PlannedTask
	for _, line := range parseLines(text) {
		task := domain.PlannedTask{Priority: domain.PriorityMedium}
		if desc, prio, found := strings.Cut(line, "|"); found {
			task.Description = strings.TrimSpace(desc)
			p := domain.Priority(capitalize(strings.TrimSpace(prio)))
			if domain.ValidPriorities[p] {
				task.Priority = p
			}
		} else {
			task.Description = line
		}
		if task.Description == "" {
			continue
		}
		out = append(out, task)
	}
	return out
}

// renderTaskLines is the inverse of parseTaskLines, used to seed the editor.
func renderTaskLines(tasks []domain.PlannedTask) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, fmt.Sprintf("%s | %s", task.Description, task.Priority))
	}
	return strings.Join(lines, "\n")
}

// formEditResources creates a huh form with one comma-separated input per
// resource category.
func formEditResources(tech, legal, finance, marketing *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Tech").Placeholder("comma-separated").Value(tech),
			huh.NewInput().Title("Legal").Placeholder("comma-separated").Value(legal),
			huh.NewInput().Title("Finance").Placeholder("comma-separated").Value(finance),
			huh.NewInput().Title("Marketing").Placeholder("comma-separated").Value(marketing),
		),
	).WithTheme(crewplanHuhTheme()).WithShowHelp(false)
}

// parseCSV splits a comma-separated input into trimmed, non-empty items.
func parseCSV(text string) []string {
	var out []string
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// parseSubTaskLines converts "description | help" lines into sub-tasks.
// Assigned is left empty; distribution happens after editing.
func parseSubTaskLines(text string) []domain.SubTask {
	var out []domain.SubTask
	for _, line := range parseLines(text) {
		sub := domain.SubTask{}
		if desc, help, found := strings.Cut(line, "|"); found {
			sub.Description = strings.TrimSpace(desc)
			sub.Help = strings.TrimSpace(help)
		} else {
			sub.Description = line
		}
		if sub.Description == "" {
			continue
		}
		out = append(out, sub)
	}
	return out
}

// renderSubTaskLines is the inverse of parseSubTaskLines.
func renderSubTaskLines(subTasks []domain.SubTask) string {
	lines := make([]string, 0, len(subTasks))
	for _, sub := range subTasks {
		if sub.Help != "" {
			lines = append(lines, fmt.Sprintf("%s | %s", sub.Description, sub.Help))
			continue
		}
		lines = append(lines, sub.Description)
	}
	return strings.Join(lines, "\n")
}

func joinLines(items []string) string {
	return strings.Join(items, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
