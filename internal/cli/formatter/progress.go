package formatter

import (
	"fmt"
	"strings"

	"github.com/NamiSwwaan/crewplan/internal/domain"
)

// StepTracker renders the wizard progress line, e.g.
// "✔ CEO Input ─ ● Technical Spec ─ ○ Task Planning ─ ...".
// Completed steps are green, the current step is highlighted, upcoming
// steps are dimmed.
func StepTracker(current domain.Step) string {
	parts := make([]string, 0, int(domain.LastStep))
	for s := domain.StepCEOInput; s <= domain.LastStep; s++ {
		switch {
		case s < current:
			parts = append(parts, StyleGreen.Render("✔ "+s.Name()))
		case s == current:
			parts = append(parts, StyleHeader.Render("● "+s.Name()))
		default:
			parts = append(parts, StyleDim.Render("○ "+s.Name()))
		}
	}
	return strings.Join(parts, StyleDim.Render(" ─ "))
}

// StepHeader renders the numbered banner for one wizard step.
func StepHeader(current domain.Step) string {
	title := fmt.Sprintf("Step %d of %d: %s", int(current), int(domain.LastStep), current.Name())
	return Header(title)
}
