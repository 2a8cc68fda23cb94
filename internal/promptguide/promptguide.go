// Package promptguide holds example prompts, grouped by academic major,
// that students can adapt when asking questions about their notes.
package promptguide

import "strings"

// Prompt is a labelled example prompt.
type Prompt struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Major groups the example prompts for one field of study.
type Major struct {
	Name    string   `json:"name"`
	Prompts []Prompt `json:"prompts"`
}

// Majors returns the major names in display order.
func Majors() []string {
	names := make([]string, len(catalog))
	for i, m := range catalog {
		names[i] = m.Name
	}
	return names
}

// Lookup finds a major by name, ignoring case and surrounding space.
func Lookup(name string) (Major, bool) {
	name = strings.TrimSpace(name)
	for _, m := range catalog {
		if strings.EqualFold(m.Name, name) {
			return clone(m), true
		}
	}
	return Major{}, false
}

// For returns the prompts for name, or the General / Other prompts when the
// major is unknown.
func For(name string) Major {
	if m, ok := Lookup(name); ok {
		return m
	}
	m, _ := Lookup(GeneralMajor)
	return m
}

func clone(m Major) Major {
	m.Prompts = append([]Prompt(nil), m.Prompts...)
	return m
}
