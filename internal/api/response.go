package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insightmentor/insightmentor/internal/llm"
	"github.com/insightmentor/insightmentor/internal/session"
	"github.com/insightmentor/insightmentor/internal/store"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// respondErr picks the status code for err.
func respondErr(c *gin.Context, err error) {
	respondError(c, statusFor(err), err)
}

func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		all    *llm.ErrAllProvidersFailed
		cfgErr *llm.ErrConfig
	)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrEmptyText), errors.Is(err, session.ErrEmptyPrompt):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNoConcepts), errors.Is(err, session.ErrNoNotes):
		return http.StatusConflict
	// Checked before ErrConfig: a failed fallback may wrap one.
	case errors.As(err, &all):
		return http.StatusBadGateway
	case errors.As(err, &cfgErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var errInvalidLimit = errors.New("limit must be a non-negative integer")
