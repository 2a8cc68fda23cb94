// Package tutor builds study plans, quizzes and mastery updates without
// calling an LLM. Every function here is pure and deterministic.
package tutor

// StudyTask is one step of a study plan.
type StudyTask struct {
	Title         string `json:"title"`
	EstimatedTime string `json:"estimated_time"`
	Description   string `json:"description"`
}

// QuizQuestion is an open-ended question about a concept.
type QuizQuestion struct {
	Text string `json:"text"`
}

// DefaultMastery is the score assumed for a concept with no recorded mastery.
const DefaultMastery = 0.3

// DefaultDelta is the mastery increment applied per study session.
const DefaultDelta = 0.05

// DefaultMaxTasks caps the number of plan tasks.
const DefaultMaxTasks = 6

// DefaultNumQuestions caps the number of quiz questions.
const DefaultNumQuestions = 5
