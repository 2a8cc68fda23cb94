package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Request body schemas, keyed by name.
var schemaSources = map[string]string{
	"create_session": `{
		"type": "object",
		"properties": {
			"provider": {"type": "string"}
		},
		"additionalProperties": false
	}`,
	"analyze": `{
		"type": "object",
		"required": ["text"],
		"properties": {
			"text": {"type": "string", "minLength": 1},
			"provider": {"type": "string"}
		},
		"additionalProperties": false
	}`,
	"ask": `{
		"type": "object",
		"required": ["prompt"],
		"properties": {
			"prompt": {"type": "string"}
		},
		"additionalProperties": false
	}`,
	"tutor_plan": `{
		"type": "object",
		"required": ["concepts"],
		"properties": {
			"concepts": {"type": "array", "items": {"type": "string"}},
			"mastery": {
				"type": "object",
				"additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
			},
			"max_tasks": {"type": "integer", "minimum": 0}
		},
		"additionalProperties": false
	}`,
	"tutor_quiz": `{
		"type": "object",
		"required": ["concepts"],
		"properties": {
			"concepts": {"type": "array", "items": {"type": "string"}},
			"text": {"type": "string"},
			"num_questions": {"type": "integer", "minimum": 0}
		},
		"additionalProperties": false
	}`,
	"tutor_mastery": `{
		"type": "object",
		"required": ["mastery", "studied"],
		"properties": {
			"mastery": {
				"type": "object",
				"additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
			},
			"studied": {"type": "array", "items": {"type": "string"}},
			"delta": {"type": "number"}
		},
		"additionalProperties": false
	}`,
}

// compileSchemas compiles every entry of schemaSources.
func compileSchemas() (map[string]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	urls := make(map[string]string, len(schemaSources))
	for name, src := range schemaSources {
		var doc any
		if err := json.Unmarshal([]byte(src), &doc); err != nil {
			return nil, fmt.Errorf("parse schema %q: %w", name, err)
		}
		url := fmt.Sprintf("schema://%s.json", name)
		if err := c.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("add schema %q: %w", name, err)
		}
		urls[name] = url
	}

	compiled := make(map[string]*jsonschema.Schema, len(urls))
	for name, url := range urls {
		s, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile schema %q: %w", name, err)
		}
		compiled[name] = s
	}
	return compiled, nil
}

// validateBody checks the JSON request body against schema and restores it
// for the handler. An empty body is validated as {}.
func validateBody(schema *jsonschema.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			respondError(c, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
			return
		}
		if len(bytes.TrimSpace(raw)) == 0 {
			raw = []byte("{}")
		}

		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			respondError(c, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
			return
		}
		if err := schema.Validate(doc); err != nil {
			respondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		c.Next()
	}
}
