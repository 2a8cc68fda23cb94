package session

import "errors"

var (
	// ErrEmptyText is returned when Analyze is given blank study material.
	ErrEmptyText = errors.New("no study material: paste or upload some text first")

	// ErrNoConcepts is returned when planning before any concepts exist.
	ErrNoConcepts = errors.New("no concepts yet: analyze study material first")

	// ErrEmptyPrompt is returned when Ask is given a blank prompt.
	ErrEmptyPrompt = errors.New("write a prompt first")

	// ErrNoNotes is returned when Ask is called before any material was analyzed.
	ErrNoNotes = errors.New("no notes yet: analyze study material first")
)
