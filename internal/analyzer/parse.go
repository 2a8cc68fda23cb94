package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError reports LLM output that did not have the expected structure.
// Callers recover from it locally; it never reaches the end user.
type ParseError struct {
	What string // what was being parsed, e.g. "flashcards"
	Raw  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no %s found in LLM output (%d bytes)", e.What, len(e.Raw))
}

var (
	bulletPrefix   = regexp.MustCompile(`^[\-\*\d\.\)\s]+`)
	questionMarker = regexp.MustCompile(`Q\d+:`)
	answerMarker   = regexp.MustCompile(`A\d+:`)
)

// ParseConcepts turns a bullet list into concept labels: one per non-empty
// line, with leading bullet or numbering characters removed, deduplicated
// by exact match in order of first appearance.
func ParseConcepts(raw string) []string {
	var concepts []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = bulletPrefix.ReplaceAllString(line, "")
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		concepts = append(concepts, line)
	}
	return concepts
}

// ParseFlashcards extracts "Q<n>: question A<n>: answer" pairs. A question
// runs to the first following "A<n>:" marker, an answer to the next
// "Q<n>:" marker or the end of input; both may span lines and each must be
// at least one character long. Pairs with a blank side are skipped. When
// nothing usable is found the error is a *ParseError.
func ParseFlashcards(raw string) ([]Flashcard, error) {
	var cards []Flashcard
	pos := 0
	for pos < len(raw) {
		q := questionMarker.FindStringIndex(raw[pos:])
		if q == nil {
			break
		}
		qStart := pos + q[1]
		if qStart+1 > len(raw) {
			break
		}

		a := answerMarker.FindStringIndex(raw[qStart+1:])
		if a == nil {
			break
		}
		qEnd := qStart + 1 + a[0]
		aStart := qStart + 1 + a[1]
		if aStart+1 > len(raw) {
			break
		}

		end := len(raw)
		if next := questionMarker.FindStringIndex(raw[aStart+1:]); next != nil {
			end = aStart + 1 + next[0]
		}

		question := strings.TrimSpace(raw[qStart:qEnd])
		answer := strings.TrimSpace(raw[aStart:end])
		if question != "" && answer != "" {
			cards = append(cards, Flashcard{Question: question, Answer: answer})
		}
		pos = end
	}

	if len(cards) == 0 {
		return nil, &ParseError{What: "flashcards", Raw: raw}
	}
	return cards, nil
}

// TemplateFlashcards builds one generic card per concept, up to maxCards.
func TemplateFlashcards(concepts []string, maxCards int) []Flashcard {
	if maxCards <= 0 {
		return nil
	}
	if len(concepts) > maxCards {
		concepts = concepts[:maxCards]
	}
	cards := make([]Flashcard, 0, len(concepts))
	for _, c := range concepts {
		cards = append(cards, Flashcard{
			Question: fmt.Sprintf("What is %s?", c),
			Answer: fmt.Sprintf("%s is a key concept discussed in the material. "+
				"Review your notes on it and write the definition in your own words.", c),
		})
	}
	return cards
}
