package tutor

import (
	"fmt"
	"sort"
)

// GeneratePlan returns up to maxTasks study tasks, weakest concepts first.
// Each selected concept contributes a review task followed by a practice
// task, so the final concept may lose its practice task to the cap.
func GeneratePlan(concepts []string, mastery map[string]float64, maxTasks int) []StudyTask {
	if maxTasks <= 0 {
		return []StudyTask{}
	}

	type scored struct {
		concept string
		score   float64
	}

	seen := make(map[string]bool, len(concepts))
	ranked := make([]scored, 0, len(concepts))
	for _, c := range concepts {
		if seen[c] {
			continue
		}
		seen[c] = true
		score, ok := mastery[c]
		if !ok {
			score = DefaultMastery
		}
		ranked = append(ranked, scored{concept: c, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})
	if len(ranked) > maxTasks {
		ranked = ranked[:maxTasks]
	}

	tasks := make([]StudyTask, 0, 2*len(ranked))
	for _, r := range ranked {
		tasks = append(tasks,
			StudyTask{
				Title:         "Review: " + r.concept,
				EstimatedTime: "10–15 min",
				Description: fmt.Sprintf("Revisit notes, examples, and explanations for **%s** (current mastery ~%d%%).",
					r.concept, int(r.score*100)),
			},
			StudyTask{
				Title:         "Practice problems: " + r.concept,
				EstimatedTime: "10–20 min",
				Description:   fmt.Sprintf("Find or create 3–5 practice questions involving **%s**.", r.concept),
			},
		)
	}

	if len(tasks) > maxTasks {
		tasks = tasks[:maxTasks]
	}
	return tasks
}
