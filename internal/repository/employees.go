package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NamiSwwaan/crewplan/internal/domain"
)

// EmployeeStore loads the employee roster from a JSON file. The roster is
// read-only input: there is no write path.
type EmployeeStore struct {
	path string
}

// NewEmployeeStore creates an EmployeeStore reading from path.
func NewEmployeeStore(path string) *EmployeeStore {
	return &EmployeeStore{path: path}
}

// Load reads and decodes the roster. A missing or malformed file is an
// error; assignment cannot run without a roster.
func (s *EmployeeStore) Load() ([]domain.Employee, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading employees file %s: %w", s.path, err)
	}

	var employees []domain.Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("decoding employees file %s: %w", s.path, err)
	}
	return employees, nil
}
