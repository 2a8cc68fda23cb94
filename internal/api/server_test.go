package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightmentor/insightmentor/internal/analyzer"
	"github.com/insightmentor/insightmentor/internal/llm"
	"github.com/insightmentor/insightmentor/internal/session"
	"github.com/insightmentor/insightmentor/internal/store"
)

type testEnv struct {
	handler http.Handler
	gemini  *llm.MockProvider
	openai  *llm.MockProvider
}

// newTestEnv serves the API over a temp SQLite store with mock backends.
// openai is left unconfigured when withOpenAI is false.
func newTestEnv(t *testing.T, withOpenAI bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	env := &testEnv{gemini: llm.NewMockProvider()}
	providers := map[llm.Kind]llm.Provider{llm.KindGemini: env.gemini}
	if withOpenAI {
		env.openai = llm.NewMockProvider()
		providers[llm.KindOpenAI] = env.openai
	}
	router := llm.NewRouter(providers, nil)

	srv, err := NewServer(Config{
		Service:     session.NewService(analyzer.New(router), session.DefaultConfig(), nil),
		Sessions:    session.NewRepository(s.SessionRepo()),
		CORSOrigins: []string{"http://localhost:3000"},
	})
	require.NoError(t, err)
	env.handler = srv.Handler()
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (e *testEnv) createSession(t *testing.T) session.State {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/sessions", `{"provider":"gemini"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[session.State](t, rec)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, false)
	rec := env.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t, false)
	env.gemini.AddResponse(llm.MockResponse{Text: "Summary of cells."})
	env.gemini.AddResponse(llm.MockResponse{Text: "- Mitochondria\n- ATP"})
	env.gemini.AddResponse(llm.MockResponse{Text: "Q1: What makes ATP?\nA1: Mitochondria."})
	env.gemini.AddResponse(llm.MockResponse{Text: "ATP stores energy."})

	st := env.createSession(t)
	assert.Equal(t, llm.KindGemini, st.Provider)

	rec := env.do(t, http.MethodPost, "/api/sessions/"+st.ID+"/analyze", `{"text":"Mitochondria produce ATP."}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	analyzed := decode[session.State](t, rec)
	assert.Equal(t, "Summary of cells.", analyzed.Summary)
	assert.Equal(t, []string{"Mitochondria", "ATP"}, analyzed.Concepts)
	assert.Len(t, analyzed.Flashcards, 1)
	assert.Equal(t, 0.3, analyzed.Mastery["ATP"])

	rec = env.do(t, http.MethodPost, "/api/sessions/"+st.ID+"/plan", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	planned := decode[session.State](t, rec)
	assert.Len(t, planned.StudyPlan, 4)
	assert.Len(t, planned.Quiz, 5)
	assert.InDelta(t, 0.35, planned.Mastery["ATP"], 1e-9)

	rec = env.do(t, http.MethodPost, "/api/sessions/"+st.ID+"/ask", `{"prompt":"What is ATP?"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"answer":"ATP stores energy."}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/sessions/"+st.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[session.State](t, rec).StudyPlan, 4)

	rec = env.do(t, http.MethodGet, "/api/sessions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Sessions []session.Summary `json:"sessions"`
	}](t, rec)
	require.Len(t, list.Sessions, 1)
	assert.Equal(t, 2, list.Sessions[0].Concepts)

	rec = env.do(t, http.MethodDelete, "/api/sessions/"+st.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = env.do(t, http.MethodGet, "/api/sessions/"+st.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionErrors(t *testing.T) {
	env := newTestEnv(t, false)
	st := env.createSession(t)
	base := "/api/sessions/" + st.ID

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown session", http.MethodGet, "/api/sessions/nope", "", http.StatusNotFound},
		{"delete unknown", http.MethodDelete, "/api/sessions/nope", "", http.StatusNotFound},
		{"bad provider", http.MethodPost, "/api/sessions", `{"provider":"claude"}`, http.StatusBadRequest},
		{"unexpected field", http.MethodPost, "/api/sessions", `{"name":"x"}`, http.StatusBadRequest},
		{"missing text", http.MethodPost, base + "/analyze", `{}`, http.StatusBadRequest},
		{"blank text", http.MethodPost, base + "/analyze", `{"text":"   "}`, http.StatusBadRequest},
		{"malformed json", http.MethodPost, base + "/analyze", `{"text":`, http.StatusBadRequest},
		{"plan without concepts", http.MethodPost, base + "/plan", "", http.StatusConflict},
		{"ask without notes", http.MethodPost, base + "/ask", `{"prompt":"Explain"}`, http.StatusConflict},
		{"blank prompt", http.MethodPost, base + "/ask", `{"prompt":"  "}`, http.StatusBadRequest},
		{"bad limit", http.MethodGet, "/api/sessions?limit=-1", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decode[ErrorResponse](t, rec).Error)
		})
	}
}

func TestAnalyze_ProviderFailures(t *testing.T) {
	t.Run("both fail", func(t *testing.T) {
		env := newTestEnv(t, true)
		st := env.createSession(t)

		rec := env.do(t, http.MethodPost, "/api/sessions/"+st.ID+"/analyze", `{"text":"notes"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code, rec.Body.String())
		assert.Equal(t, 1, env.gemini.CallCount())
		assert.Equal(t, 1, env.openai.CallCount())
	})

	t.Run("preferred unconfigured", func(t *testing.T) {
		env := newTestEnv(t, false)
		st := env.createSession(t)

		rec := env.do(t, http.MethodPost, "/api/sessions/"+st.ID+"/analyze", `{"text":"notes","provider":"openai"}`)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), llm.EnvOpenAIKey)
		assert.Zero(t, env.gemini.CallCount())
	})
}

func TestTutorEndpoints(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodPost, "/api/tutor/plan", `{"concepts":["A","B"],"mastery":{"A":0.9,"B":0.2},"max_tasks":4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	plan := decode[struct {
		Tasks []struct {
			Title string `json:"title"`
		} `json:"tasks"`
	}](t, rec)
	require.Len(t, plan.Tasks, 4)
	assert.Equal(t, "Review: B", plan.Tasks[0].Title)

	rec = env.do(t, http.MethodPost, "/api/tutor/quiz", `{"concepts":[],"text":""}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Summarize the main idea")

	rec = env.do(t, http.MethodPost, "/api/tutor/mastery", `{"mastery":{"A":0.98},"studied":["A","B"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	m := decode[struct {
		Mastery map[string]float64 `json:"mastery"`
	}](t, rec)
	assert.Equal(t, 1.0, m.Mastery["A"])
	assert.InDelta(t, 0.35, m.Mastery["B"], 1e-9)

	rec = env.do(t, http.MethodPost, "/api/tutor/plan", `{"concepts":["A"],"mastery":{"A":1.5}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = env.do(t, http.MethodPost, "/api/tutor/quiz", `{"concepts":["A"],"num_questions":2.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPrompts(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodGet, "/api/prompts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	majors := decode[struct {
		Majors []string `json:"majors"`
	}](t, rec)
	assert.Contains(t, majors.Majors, "Nursing")

	rec = env.do(t, http.MethodGet, "/api/prompts?major=Underwater+Basket+Weaving", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"name":"General / Other"`), rec.Body.String())
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusFor(t *testing.T) {
	wrappedCfg := &llm.ErrAllProvidersFailed{Errs: []error{&llm.ErrProviderUnavailable{}, &llm.ErrConfig{Provider: llm.KindOpenAI}}}
	assert.Equal(t, http.StatusBadGateway, statusFor(wrappedCfg))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(&llm.ErrConfig{Provider: llm.KindGemini}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
