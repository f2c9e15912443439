package domain

// PlannedTask is one task row in the project document.
type PlannedTask struct {
	Description string   `json:"task"`
	Priority    Priority `json:"priority"`
}

// Resources groups resource needs into the four fixed categories.
type Resources struct {
	Tech      []string `json:"tech"`
	Legal     []string `json:"legal"`
	Finance   []string `json:"finance"`
	Marketing []string `json:"marketing"`
}

// Clone returns a deep copy.
func (r Resources) Clone() Resources {
	return Resources{
		Tech:      cloneStrings(r.Tech),
		Legal:     cloneStrings(r.Legal),
		Finance:   cloneStrings(r.Finance),
		Marketing: cloneStrings(r.Marketing),
	}
}

// ProjectDocument is the central mutable aggregate the wizard edits: the
// technical specification plus the planned tasks and their surroundings.
type ProjectDocument struct {
	TechnicalSpec string        `json:"technical_spec"`
	Tasks         []PlannedTask `json:"tasks"`
	Dependencies  []string      `json:"dependencies"`
	Skills        []string      `json:"skills"`
	Resources     Resources     `json:"resources"`
}

// Clone returns a deep copy, safe to mutate independently.
func (d *ProjectDocument) Clone() *ProjectDocument {
	if d == nil {
		return nil
	}
	out := &ProjectDocument{
		TechnicalSpec: d.TechnicalSpec,
		Dependencies:  cloneStrings(d.Dependencies),
		Skills:        cloneStrings(d.Skills),
		Resources:     d.Resources.Clone(),
	}
	if d.Tasks != nil {
		out.Tasks = make([]PlannedTask, len(d.Tasks))
		copy(out.Tasks, d.Tasks)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
