package llm

import "context"

// unconfiguredProvider stands in for a backend whose credential is absent.
// Every call fails with *ErrConfig so the problem surfaces when the backend
// is actually invoked rather than at startup.
type unconfiguredProvider struct {
	kind Kind
}

func (u unconfiguredProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrConfig{Provider: u.kind, EnvVar: envVarFor(u.kind)}
}

func (u unconfiguredProvider) ModelID() string {
	return string(u.kind) + "-unconfigured"
}
