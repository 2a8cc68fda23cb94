package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/insightmentor/insightmentor/internal/llm"
)

// Caller sends one prompt to the preferred LLM backend with fallback.
// *llm.Router satisfies it.
type Caller interface {
	Call(ctx context.Context, prompt, system string, preferred llm.Kind) (string, error)
}

// Analyzer turns study material into a summary, concepts and flashcards.
type Analyzer struct {
	caller Caller
}

// New creates an Analyzer that delegates generation to caller.
func New(caller Caller) *Analyzer {
	return &Analyzer{caller: caller}
}

// Summarize returns a student-friendly summary of text. The model's output
// is passed through unchanged.
func (a *Analyzer) Summarize(ctx context.Context, text string, provider llm.Kind) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSummary)
	summary, err := a.caller.Call(ctx, buildSummaryPrompt(text), summarySystemPrompt, provider)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return summary, nil
}

// ExtractConcepts returns up to maxConcepts distinct concept labels found
// in text, in the order the model listed them.
func (a *Analyzer) ExtractConcepts(ctx context.Context, text string, maxConcepts int, provider llm.Kind) ([]string, error) {
	if maxConcepts <= 0 {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeConcepts)
	raw, err := a.caller.Call(ctx, buildConceptsPrompt(text), conceptsSystemPrompt, provider)
	if err != nil {
		return nil, fmt.Errorf("extract concepts: %w", err)
	}

	concepts := ParseConcepts(raw)
	if len(concepts) > maxConcepts {
		concepts = concepts[:maxConcepts]
	}
	return concepts, nil
}

// GenerateFlashcards returns at most maxCards flashcards for text. When the
// model's output cannot be parsed, one templated card per concept is
// returned instead, so the result is never empty while concepts exist.
func (a *Analyzer) GenerateFlashcards(ctx context.Context, text string, concepts []string, maxCards int, provider llm.Kind) ([]Flashcard, error) {
	if len(concepts) == 0 || maxCards <= 0 {
		return []Flashcard{}, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeFlashcards)
	raw, err := a.caller.Call(ctx, buildFlashcardsPrompt(text, concepts, maxCards), flashcardsSystemPrompt, provider)
	if err != nil {
		return nil, fmt.Errorf("generate flashcards: %w", err)
	}

	cards, err := ParseFlashcards(raw)
	var perr *ParseError
	if errors.As(err, &perr) {
		cards = TemplateFlashcards(concepts, maxCards)
	}

	if len(cards) > maxCards {
		cards = cards[:maxCards]
	}
	return cards, nil
}

// Ask answers a free-form study question using notes as context.
func (a *Analyzer) Ask(ctx context.Context, question, notes string, provider llm.Kind) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("ask: empty question")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAsk)
	answer, err := a.caller.Call(ctx, buildAskPrompt(question, notes), askSystemPrompt, provider)
	if err != nil {
		return "", fmt.Errorf("ask: %w", err)
	}
	return answer, nil
}
