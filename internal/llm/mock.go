package llm

import (
	"context"
	"sync"
)

// MockResponse is one scripted reply. A non-nil Err fails the call.
type MockResponse struct {
	Text  string
	Usage Usage
	Err   error
}

// MockProvider replays scripted replies in order and records what it was
// asked. Once the script runs out every call fails as unavailable, which
// lets an empty mock stand in for a backend that is down.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	Calls    []Request
	purposes []Purpose
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	m.purposes = append(m.purposes, PurposeFrom(ctx))

	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.script[0]
	m.script = m.script[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Text: next.Text, Usage: next.Usage, Model: "mock", StopReason: "end"}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse queues another scripted reply.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Purposes returns the purpose label of each call, in call order.
func (m *MockProvider) Purposes() []Purpose {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Purpose(nil), m.purposes...)
}
