package tutor

import "strings"

const conceptPlaceholder = "{concept}"

// FallbackQuestion is asked when there are no concepts to build questions from.
const FallbackQuestion = "Summarize the main idea of the material in 3–5 sentences."

var quizTemplates = []string{
	"Analyze the key principles underlying {concept} and discuss their theoretical foundations.",
	"Compare and contrast {concept} with alternative approaches in the field.",
	"Critically evaluate the strengths and limitations of {concept} in contemporary applications.",
	"Synthesize how {concept} integrates with other major theories or frameworks in this domain.",
	"Propose a research question or hypothesis that could advance our understanding of {concept}.",
	"Examine the historical development of {concept} and its impact on current practices.",
	"Design an experiment or case study to demonstrate the practical implications of {concept}.",
	"Evaluate how {concept} addresses real-world problems and assess its efficacy.",
	"Discuss the ethical implications and societal impact of applying {concept}.",
	"Deconstruct the assumptions embedded in {concept} and analyze their validity.",
	"Explain how {concept} can be applied to solve interdisciplinary challenges.",
	"Assess the empirical evidence supporting or refuting the claims of {concept}.",
	"Formulate a counterargument to the prevailing interpretations of {concept}.",
	"Trace the evolution of {concept} from foundational theory to modern implementation.",
	"Analyze a case where {concept} failed to achieve expected outcomes and explain why.",
	"Justify the relevance of {concept} in addressing current societal or technological trends.",
	"Predict future developments in {concept} based on current research trajectories.",
	"Articulate how {concept} challenges or reinforces existing paradigms in the discipline.",
}

// GenerateQuiz fills the question templates with each concept in turn and
// stops at numQuestions. sourceText is reserved for text-aware questions
// and currently ignored.
func GenerateQuiz(concepts []string, sourceText string, numQuestions int) []QuizQuestion {
	if numQuestions <= 0 {
		return []QuizQuestion{}
	}

	questions := make([]QuizQuestion, 0, numQuestions)
fill:
	for _, c := range concepts {
		for _, tmpl := range quizTemplates {
			if len(questions) >= numQuestions {
				break fill
			}
			questions = append(questions, QuizQuestion{Text: strings.ReplaceAll(tmpl, conceptPlaceholder, c)})
		}
	}

	if len(questions) == 0 {
		questions = append(questions, QuizQuestion{Text: FallbackQuestion})
	}
	return questions
}
