package analyzer

// Flashcard is a question/answer pair for self-testing.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
