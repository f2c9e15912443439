package scheduler

import "github.com/NamiSwwaan/crewplan/internal/domain"

// DistributeSubTasks assigns sub-tasks across the team round-robin:
// sub-task i goes to employees[i mod len(employees)]. An empty sub-task
// list or empty team returns the input unchanged. The input slice is not
// mutated.
func DistributeSubTasks(subTasks []domain.SubTask, employees []domain.Employee) []domain.SubTask {
	if len(subTasks) == 0 || len(employees) == 0 {
		return subTasks
	}

	out := make([]domain.SubTask, len(subTasks))
	for i, st := range subTasks {
		st.Assigned = employees[i%len(employees)].Name
		out[i] = st
	}
	return out
}
