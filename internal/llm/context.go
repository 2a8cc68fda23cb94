package llm

import (
	"context"
	"fmt"
)

// Purpose labels what a generation is for. It is recorded with every
// logged request and drives the per-purpose usage report.
type Purpose string

const (
	PurposeSummary    Purpose = "summary"
	PurposeConcepts   Purpose = "concepts"
	PurposeFlashcards Purpose = "flashcards"
	PurposeAsk        Purpose = "ask"
	PurposeUnknown    Purpose = "unknown"
)

// Purposes lists the labels the analyzer attaches, in pipeline order.
func Purposes() []Purpose {
	return []Purpose{PurposeSummary, PurposeConcepts, PurposeFlashcards, PurposeAsk}
}

// ParsePurpose accepts one of the labels returned by Purposes.
func ParsePurpose(s string) (Purpose, error) {
	for _, p := range Purposes() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown purpose %q (want summary, concepts, flashcards or ask)", s)
}

func (p Purpose) String() string { return string(p) }

type purposeKey struct{}

// WithPurpose tags ctx so providers downstream can attribute the request.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the label set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
