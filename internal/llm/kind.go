package llm

import (
	"fmt"
	"strings"
)

// Kind names one of the two supported LLM backends.
type Kind string

const (
	KindOpenAI Kind = "openai"
	KindGemini Kind = "gemini"
)

// DefaultKind is used when the caller does not choose a provider.
const DefaultKind = KindGemini

// Kinds lists every supported backend.
var Kinds = []Kind{KindOpenAI, KindGemini}

// ParseKind converts a user-supplied provider name into a Kind.
// The empty string selects DefaultKind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultKind, nil
	case KindOpenAI:
		return KindOpenAI, nil
	case KindGemini:
		return KindGemini, nil
	default:
		return "", fmt.Errorf("unknown LLM provider: %q (want openai or gemini)", s)
	}
}

// Other returns the fallback backend for k.
func (k Kind) Other() Kind {
	if k == KindOpenAI {
		return KindGemini
	}
	return KindOpenAI
}

// Valid reports whether k is a supported backend.
func (k Kind) Valid() bool {
	return k == KindOpenAI || k == KindGemini
}

func (k Kind) String() string { return string(k) }
