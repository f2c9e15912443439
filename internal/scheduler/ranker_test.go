package scheduler

import (
	"testing"

	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankEmployees_IdenticalTextScoresMaximal(t *testing.T) {
	employees := []domain.Employee{
		{Name: "Alice", Skills: []string{"build", "vendor", "dashboard"}},
	}

	ranked, err := RankEmployees("build vendor dashboard", employees)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
}

func TestRankEmployees_DisjointVocabularyScoresZero(t *testing.T) {
	employees := []domain.Employee{
		{Name: "Bob", Skills: []string{"accounting", "payroll"}},
	}

	ranked, err := RankEmployees("kubernetes cluster networking", employees)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].Score)
}

func TestRankEmployees_SortsDescending(t *testing.T) {
	employees := []domain.Employee{
		{Name: "Bob", Skills: []string{"legal", "contracts"}},
		{Name: "Alice", Skills: []string{"backend", "api", "database"}},
		{Name: "Carol", Skills: []string{"api"}},
	}

	ranked, err := RankEmployees("backend api development", employees)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Alice", ranked[0].Employee.Name)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
	assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
	assert.Equal(t, "Bob", ranked[2].Employee.Name)
}

func TestRankEmployees_SkillsPreferredOverWorkText(t *testing.T) {
	employees := []domain.Employee{
		{Name: "Alice", Skills: []string{"frontend", "react"}, MyWork: "backend api development"},
		{Name: "Bob", MyWork: "backend api development"},
	}

	ranked, err := RankEmployees("backend api development", employees)
	require.NoError(t, err)

	// Bob's work text matches; Alice's skills (which take precedence) do not.
	assert.Equal(t, "Bob", ranked[0].Employee.Name)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankEmployees_InputValidation(t *testing.T) {
	_, err := RankEmployees("  ", []domain.Employee{{Name: "A"}})
	assert.ErrorIs(t, err, ErrEmptyTask)

	_, err = RankEmployees("build something", nil)
	assert.ErrorIs(t, err, ErrNoEmployees)
}

func TestRankEmployees_NoUsableTextDegradesToZeros(t *testing.T) {
	employees := []domain.Employee{
		{Name: "Alice"},
		{Name: "Bob"},
	}

	ranked, err := RankEmployees("build vendor dashboard", employees)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	for _, r := range ranked {
		assert.Equal(t, 0.0, r.Score)
	}
}

func TestRankEmployees_StopWordsOnlyTextDegradesToZeros(t *testing.T) {
	employees := []domain.Employee{
		{Name: "Alice", MyWork: "the and of with"},
	}

	// The task also reduces to nothing after stop-word removal, so no
	// vocabulary exists at all; scoring must degrade, not fail.
	ranked, err := RankEmployees("this is the", employees)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].Score)
}

func TestRankEmployees_ScoresWithinUnitRange(t *testing.T) {
	employees := []domain.Employee{
		{Name: "Alice", Skills: []string{"api", "database", "golang"}},
		{Name: "Bob", Skills: []string{"api"}},
	}

	ranked, err := RankEmployees("api database work", employees)
	require.NoError(t, err)
	for _, r := range ranked {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0+1e-9)
	}
}
