package analyzer

// Config holds content analysis limits.
type Config struct {
	MaxConcepts int
	MaxCards    int
}

// DefaultConfig returns the limits used by the study session flow.
func DefaultConfig() Config {
	return Config{
		MaxConcepts: 12,
		MaxCards:    8,
	}
}
