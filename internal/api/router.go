package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter registers every route on a fresh gin engine.
func NewRouter(cfg Config) (*gin.Engine, error) {
	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Log))
	r.Use(CORS(cfg.CORSOrigins))

	sessions := &SessionHandler{service: cfg.Service, store: cfg.Sessions}
	tutor := &TutorHandler{}
	prompts := &PromptHandler{}

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		api.POST("/sessions", validateBody(schemas["create_session"]), sessions.Create)
		api.GET("/sessions", sessions.List)
		api.GET("/sessions/:id", sessions.Get)
		api.DELETE("/sessions/:id", sessions.Delete)
		api.POST("/sessions/:id/analyze", validateBody(schemas["analyze"]), sessions.Analyze)
		api.POST("/sessions/:id/plan", sessions.Plan)
		api.POST("/sessions/:id/ask", validateBody(schemas["ask"]), sessions.Ask)

		api.POST("/tutor/plan", validateBody(schemas["tutor_plan"]), tutor.Plan)
		api.POST("/tutor/quiz", validateBody(schemas["tutor_quiz"]), tutor.Quiz)
		api.POST("/tutor/mastery", validateBody(schemas["tutor_mastery"]), tutor.Mastery)

		api.GET("/prompts", prompts.List)
	}

	return r, nil
}
