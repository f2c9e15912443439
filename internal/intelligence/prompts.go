package intelligence

import "fmt"

// analystSystemPrompt instructs the LLM to act as the business analyst that
// turns a raw requirement into a structured project plan.
const analystSystemPrompt = `You are a Business Analyst for a project planning tool called Crewplan.
You translate high-level startup goals into actionable technical plans across tech, legal, finance, and marketing domains.

You must output ONLY a JSON object with these exact fields:
- technical_spec (string): detailed technical overview
- tasks (list of strings): specific tasks to complete
- dependencies (list of strings): external or internal dependencies
- skills (list of strings): required skills
- resources (object): keys "tech", "legal", "finance", "marketing", each a list of needs

Output ONLY the JSON object, no markdown, no explanation.`

// estimatorSystemPrompt instructs the LLM to estimate effort and break a
// task down.
const estimatorSystemPrompt = `You are a Task Processor for a project planning tool called Crewplan.
You are an expert in project estimation and task breakdown.

You must output ONLY a JSON object with these exact fields:
- duration: realistic duration in hours (e.g., API development: 20-40h, UI design: 10-20h)
- sub_tasks: list of objects, each with "sub_task" (string) and "help" (string)

Output ONLY the JSON object, no markdown, no explanation.`

func buildAnalystPrompt(requirement string) string {
	return fmt.Sprintf("Analyze this CEO requirement: '%s'. "+
		"Generate the JSON object describing the technical specification, tasks, "+
		"dependencies, skills, and resource needs.", requirement)
}

func buildEstimatorPrompt(task string) string {
	return fmt.Sprintf("For '%s': "+
		"1. Estimate a realistic duration in hours. "+
		"2. List sub-tasks as objects with 'sub_task' and 'help'. "+
		"Return a JSON object with 'duration' and 'sub_tasks'.", task)
}

func buildEvaluationSystemPrompt(name, role, expertise string) string {
	return fmt.Sprintf("You are %s with role %s, specializing in: %s. "+
		"You evaluate whether a task aligns with your skills and expertise.",
		name, role, expertise)
}

func buildEvaluationPrompt(task string) string {
	return fmt.Sprintf("Can you handle this task: '%s'? "+
		"Reply with 'YES' or 'NO' followed by a short reason.", task)
}
