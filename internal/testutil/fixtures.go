package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/NamiSwwaan/crewplan/internal/domain"
)

// Roster returns a small mixed-skill roster for assignment tests.
func Roster() []domain.Employee {
	return []domain.Employee{
		{
			Name:   "Alice",
			Role:   "Backend Engineer",
			Email:  "alice@example.com",
			Skills: []string{"go", "api", "database"},
		},
		{
			Name:   "Bob",
			Role:   "Frontend Engineer",
			Email:  "bob@example.com",
			Skills: []string{"react", "ui", "design"},
		},
		{
			Name:   "Carol",
			Role:   "Generalist",
			Email:  "carol@example.com",
			MyWork: "a bit of everything, mostly documentation and QA",
		},
	}
}

// WriteEmployeesFile writes a roster JSON file into a temp dir and returns
// its path.
func WriteEmployeesFile(t *testing.T, employees []domain.Employee) string {
	t.Helper()
	data, err := json.Marshal(employees)
	if err != nil {
		t.Fatalf("failed to encode roster: %v", err)
	}
	path := filepath.Join(t.TempDir(), "employees.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write roster file: %v", err)
	}
	return path
}
