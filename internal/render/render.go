// Package render prints study sessions to a terminal with lipgloss styles.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/insightmentor/insightmentor/internal/analyzer"
	"github.com/insightmentor/insightmentor/internal/promptguide"
	"github.com/insightmentor/insightmentor/internal/session"
	"github.com/insightmentor/insightmentor/internal/tutor"
)

// barWidth is the width of a mastery bar in cells.
const barWidth = 20

// Printer writes styled sections. With Color false it writes plain text,
// which is what pipes and tests want.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *Printer) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) heading(text string) {
	p.println()
	p.println(p.style(headingStyle, text))
}

// Title prints a top-level title line.
func (p *Printer) Title(text string) {
	p.println(p.style(titleStyle, text))
}

// Hint prints a dim italic note.
func (p *Printer) Hint(text string) {
	p.println(p.style(hintStyle, text))
}

// Session prints every non-empty section of st.
func (p *Printer) Session(st session.State) {
	p.Title(fmt.Sprintf("Session %s (%s)", st.ID, st.Provider))

	if st.Summary != "" {
		p.heading("Study Notes")
		p.println(p.style(bodyStyle, st.Summary))
	}
	if len(st.Concepts) > 0 {
		p.heading("Key Concepts")
		for _, c := range st.Concepts {
			p.println("  • " + c)
		}
	}
	if len(st.Flashcards) > 0 {
		p.Flashcards(st.Flashcards)
	}
	if len(st.StudyPlan) > 0 {
		p.Plan(st.StudyPlan)
	}
	if len(st.Quiz) > 0 {
		p.Quiz(st.Quiz)
	}
	if len(st.Mastery) > 0 {
		p.Mastery(st.Concepts, st.Mastery)
	}
	if !st.HasNotes() {
		p.Hint("No study material yet. Run `insightmentor analyze` first.")
	}
}

// Flashcards prints numbered question and answer pairs.
func (p *Printer) Flashcards(cards []analyzer.Flashcard) {
	p.heading("Flashcards")
	for i, c := range cards {
		p.println(p.style(questionStyle, fmt.Sprintf("Q%d: %s", i+1, c.Question)))
		p.println(fmt.Sprintf("A%d: %s", i+1, c.Answer))
	}
}

// Plan prints study tasks with their time estimates.
func (p *Printer) Plan(tasks []tutor.StudyTask) {
	p.heading("Study Plan")
	for i, t := range tasks {
		p.println(fmt.Sprintf("%d. %s %s", i+1, t.Title, p.style(hintStyle, "("+t.EstimatedTime+")")))
		if t.Description != "" {
			p.println("   " + t.Description)
		}
	}
}

// Quiz prints numbered quiz questions.
func (p *Printer) Quiz(questions []tutor.QuizQuestion) {
	p.heading("Quiz")
	for i, q := range questions {
		p.println(fmt.Sprintf("%d. %s", i+1, q.Text))
	}
}

// Mastery prints a bar per concept. Concepts are listed in order, followed
// by any other scored concepts alphabetically.
func (p *Printer) Mastery(concepts []string, mastery map[string]float64) {
	p.heading("Mastery")

	order := make([]string, 0, len(mastery))
	seen := make(map[string]bool, len(mastery))
	for _, c := range concepts {
		if _, ok := mastery[c]; ok && !seen[c] {
			seen[c] = true
			order = append(order, c)
		}
	}
	var rest []string
	for c := range mastery {
		if !seen[c] {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	width := 0
	for _, c := range order {
		width = max(width, lipgloss.Width(c))
	}
	for _, c := range order {
		label := c + strings.Repeat(" ", width-lipgloss.Width(c))
		p.println("  " + label + "  " + p.bar(mastery[c]))
	}
}

// bar renders score in [0, 1] as a fixed-width bar with a percentage.
func (p *Printer) bar(score float64) string {
	filled := int(float64(barWidth) * score)
	filled = max(0, min(filled, barWidth))
	empty := barWidth - filled
	pct := fmt.Sprintf("%3d%%", int(score*100))

	if !p.color {
		return "[" + strings.Repeat("#", filled) + strings.Repeat("-", empty) + "] " + pct
	}
	pctStyle := goodStyle
	if score < tutor.DefaultMastery+0.2 {
		pctStyle = weakStyle
	}
	return barFilled.Render(strings.Repeat(" ", filled)) +
		barEmpty.Render(strings.Repeat(" ", empty)) + " " + pctStyle.Render(pct)
}

// Majors prints the list of majors in the prompt guide.
func (p *Printer) Majors(names []string) {
	p.heading("Majors")
	for _, n := range names {
		p.println("  • " + n)
	}
	p.Hint("Good prompts include role + task + context + output format.")
}

// Prompts prints the example prompts for one major.
func (p *Printer) Prompts(m promptguide.Major) {
	p.heading(m.Name)
	for _, pr := range m.Prompts {
		p.println(p.style(questionStyle, pr.Label))
		p.println("  " + pr.Text)
	}
}
