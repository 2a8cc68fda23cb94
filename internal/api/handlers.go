package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/insightmentor/insightmentor/internal/llm"
	"github.com/insightmentor/insightmentor/internal/promptguide"
	"github.com/insightmentor/insightmentor/internal/session"
	"github.com/insightmentor/insightmentor/internal/tutor"
)

// GET /api/health
func HealthCheck(c *gin.Context) {
	respondOK(c, gin.H{"status": "ok"})
}

// SessionHandler serves the stateful study flow.
type SessionHandler struct {
	service *session.Service
	store   SessionStore
}

type createSessionRequest struct {
	Provider string `json:"provider"`
}

type analyzeRequest struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

// POST /api/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	kind, err := llm.ParseKind(req.Provider)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	st := session.New(kind)
	if err := h.store.Save(c.Request.Context(), st); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// GET /api/sessions?limit=
func (h *SessionHandler) List(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, errInvalidLimit)
			return
		}
		limit = n
	}

	list, err := h.store.List(c.Request.Context(), limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"sessions": list})
}

// GET /api/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	st, err := h.store.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, st)
}

// DELETE /api/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/sessions/:id/analyze
func (h *SessionHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	st, err := h.store.Load(ctx, c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if req.Provider != "" {
		kind, err := llm.ParseKind(req.Provider)
		if err != nil {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		st.Provider = kind
	}

	st, err = h.service.Analyze(ctx, st, req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	if err := h.store.Save(ctx, st); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, st)
}

// POST /api/sessions/:id/plan
func (h *SessionHandler) Plan(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.store.Load(ctx, c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}

	st, err = h.service.PlanAndQuiz(st)
	if err != nil {
		respondErr(c, err)
		return
	}
	if err := h.store.Save(ctx, st); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, st)
}

// POST /api/sessions/:id/ask
func (h *SessionHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	st, err := h.store.Load(ctx, c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}

	answer, err := h.service.Ask(ctx, st, req.Prompt)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"answer": answer})
}

// TutorHandler exposes the deterministic tutor functions without sessions.
type TutorHandler struct{}

type planRequest struct {
	Concepts []string           `json:"concepts"`
	Mastery  map[string]float64 `json:"mastery"`
	MaxTasks *int               `json:"max_tasks"`
}

type quizRequest struct {
	Concepts     []string `json:"concepts"`
	Text         string   `json:"text"`
	NumQuestions *int     `json:"num_questions"`
}

type masteryRequest struct {
	Mastery map[string]float64 `json:"mastery"`
	Studied []string           `json:"studied"`
	Delta   *float64           `json:"delta"`
}

// POST /api/tutor/plan
func (h *TutorHandler) Plan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	maxTasks := tutor.DefaultMaxTasks
	if req.MaxTasks != nil {
		maxTasks = *req.MaxTasks
	}
	respondOK(c, gin.H{"tasks": tutor.GeneratePlan(req.Concepts, req.Mastery, maxTasks)})
}

// POST /api/tutor/quiz
func (h *TutorHandler) Quiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	n := tutor.DefaultNumQuestions
	if req.NumQuestions != nil {
		n = *req.NumQuestions
	}
	respondOK(c, gin.H{"questions": tutor.GenerateQuiz(req.Concepts, req.Text, n)})
}

// POST /api/tutor/mastery
func (h *TutorHandler) Mastery(c *gin.Context) {
	var req masteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	delta := tutor.DefaultDelta
	if req.Delta != nil {
		delta = *req.Delta
	}
	respondOK(c, gin.H{"mastery": tutor.UpdateMastery(req.Mastery, req.Studied, delta)})
}

// PromptHandler serves the example prompt catalog.
type PromptHandler struct{}

// GET /api/prompts[?major=]
func (h *PromptHandler) List(c *gin.Context) {
	if major, ok := c.GetQuery("major"); ok {
		respondOK(c, promptguide.For(major))
		return
	}
	respondOK(c, gin.H{"majors": promptguide.Majors()})
}
