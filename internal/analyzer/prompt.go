package analyzer

import (
	"fmt"
	"strings"
)

const summarySystemPrompt = "You are an educational assistant that creates clear, concise student-friendly summaries of educational content."

const conceptsSystemPrompt = "You extract key concepts and terms from study materials for college students."

const flashcardsSystemPrompt = "You are an expert at making flashcards for college students. " +
	"You create short, focused questions and answers."

const askSystemPrompt = "You are a helpful study tutor for college students."

func buildSummaryPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Summarize the following content in a way that is easy for a college student to understand.\n\n")
	b.WriteString("Requirements:\n")
	b.WriteString("- Focus on key concepts/main ideas, define important terms, and explain relationships between ideas.\n")
	b.WriteString("- Use simple, clear language and avoid jargon.\n")
	b.WriteString("- Keep the summary concise (around 400 - 600 words).\n")
	b.WriteString("- Structure the summary with short paragraphs or bullet points for readability.\n\n")
	b.WriteString("Content:\n")
	b.WriteString(text)
	return b.String()
}

func buildConceptsPrompt(text string) string {
	return "List the most important concepts, terms, or ideas from the following text.\n" +
		"Return them as a simple bullet list, one concept per line.\n" +
		"Text:\n" + text
}

func buildFlashcardsPrompt(text string, concepts []string, maxCards int) string {
	var b strings.Builder
	b.WriteString("Create flashcards for a college student based on the following text and key concepts.\n\n")
	fmt.Fprintf(&b, "Concepts: %s\n\n", strings.Join(concepts, ", "))
	b.WriteString("Text:\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn them in the format:\n")
	b.WriteString("Q1: ...\nA1: ...\nQ2: ...\nA2: ...\n")
	b.WriteString("Keep questions short and specific. Answers should be 1–3 sentences.\n")
	fmt.Fprintf(&b, "Generate at most %d cards.", maxCards)
	return b.String()
}

func buildAskPrompt(question, notes string) string {
	return question + "\n\nHere are my notes:\n" + notes
}
