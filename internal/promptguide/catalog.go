package promptguide

// GeneralMajor is the catch-all entry used for unknown majors.
const GeneralMajor = "General / Other"

var catalog = []Major{
	{
		Name: "Computer Science",
		Prompts: []Prompt{
			{"Explain core concepts simply", "Explain these notes like you're a senior software engineer teaching an intern. " +
				"Use simple analogies, text-based diagrams, and real-world coding examples."},
			{"Algorithms / data structures focus", "Identify the algorithms or data structures mentioned in these notes and explain when to use each one. " +
				"Give at least one coding example per concept."},
			{"Interview-style practice", "Based on these notes, create 5 technical interview–style questions and include ideal answers with time and space complexity where relevant."},
			{"System design thinking", "Based on this material, describe how the concepts would fit into a real system design. Include components, data flow, and tradeoffs."},
		},
	},
	{
		Name: "Nursing",
		Prompts: []Prompt{
			{"Clinical explanation", "Explain these notes as if you're teaching a first-year nursing student during clinicals. " +
				"Include symptoms, assessment steps, and safety precautions."},
			{"NCLEX-style questions", "Turn these notes into NCLEX-style multiple choice questions. For each question, provide rationales for why each answer is correct or incorrect."},
			{"Care plan creation", "Create a patient care plan from these notes. Include assessment, priority nursing diagnoses, interventions, and expected outcomes."},
			{"Clinical scenario practice", "Create a real-world clinical scenario based on these notes and ask me 3 critical thinking questions about it."},
		},
	},
	{
		Name: "Business / Management",
		Prompts: []Prompt{
			{"Explain with real companies", "Explain the business concepts in these notes using real-world examples from well-known companies. " +
				"Keep it practical and easy to understand."},
			{"Case study mode", "Turn these notes into a business case study with a problem statement, stakeholders, constraints, and possible strategies."},
			{"Exam-style questions", "Produce 5 short-answer exam questions based on these notes, along with model answers."},
			{"Cross-functional thinking", "Show how these notes apply to marketing, finance, and operations. Give one concrete example for each area."},
		},
	},
	{
		Name: "Psychology",
		Prompts: []Prompt{
			{"Everyday behavior examples", "Explain these psychological concepts using real-world behaviors and examples from everyday life."},
			{"Compare and contrast theories", "Identify theories in these notes that are often confused. Create a compare/contrast chart with key differences and memory tricks."},
			{"Research design", "Turn these notes into a research hypothesis and describe how you would design an experiment to test it."},
			{"Reflective questions", "Generate 3 reflective questions that help me connect these psychological concepts to personal experience."},
		},
	},
	{
		Name: "Biology / Pre-Med",
		Prompts: []Prompt{
			{"Analogy-based explanation", "Explain these biology concepts using analogies (for example, a cell is like a factory). " +
				"Focus on what happens, where it happens, and why it matters."},
			{"ASCII pathway diagram", "Create a simple ASCII diagram that represents the biological process described in these notes. Label each step clearly."},
			{"MCAT-style questions", "Turn these notes into 3 MCAT-style questions with detailed reasoning for each answer."},
			{"Pathway breakdown", "Break down the biological pathway in these notes into inputs, steps, outputs, and regulation points."},
		},
	},
	{
		Name: "Chemistry",
		Prompts: []Prompt{
			{"Mechanism explanation", "Explain the chemical reaction mechanisms in these notes using step-by-step descriptions as if drawing curly arrows."},
			{"Lab prep and safety", "Based on these notes, describe the key safety risks, PPE, and proper lab procedures to follow."},
			{"Stoichiometry / reaction practice", "Turn the concepts in these notes into 5 stoichiometry or reaction-mechanism quiz questions with answers."},
		},
	},
	{
		Name: "Math",
		Prompts: []Prompt{
			{"Intuitive understanding", "Explain these mathematical ideas using geometric intuition and simple visual analogies."},
			{"Practice problems with solutions", "Generate 5 practice problems similar to the concepts in these notes and include full worked solutions."},
			{"Proof techniques", "Identify the proof techniques implied in these notes and show one clear example of each technique using similar content."},
		},
	},
	{
		Name: "Engineering",
		Prompts: []Prompt{
			{"Systems view", "Explain how the concepts in these notes fit into an engineering system. Include components, forces/flows, and potential failure points."},
			{"Engineering problem set", "Create 3 engineering problems based on this material and include step-by-step solutions."},
			{"Real-world applications", "Give real-world engineering applications for each major concept in these notes."},
		},
	},
	{
		Name: "Law / Criminal Justice",
		Prompts: []Prompt{
			{"Plain-language explanation", "Explain the legal concepts in these notes using real case examples and plain language."},
			{"IRAC practice", "Turn these notes into 3 IRAC-style legal analysis exercises. For each, provide a brief model answer."},
			{"Essay-style exam prep", "Generate 5 essay-style exam questions from these notes and include a short outline for each ideal answer."},
		},
	},
	{
		Name: "Arts / Humanities",
		Prompts: []Prompt{
			{"Theme interpretation", "Explain the main themes in these notes and how they relate to larger historical or cultural contexts."},
			{"Essay prompt and thesis help", "Create 3 essay prompts based on these notes, along with sample thesis statements I could use."},
			{"Compare to other works", "Compare the ideas in these notes to another major work or thinker in the field, pointing out similarities and differences."},
		},
	},
	{
		Name: GeneralMajor,
		Prompts: []Prompt{
			{"Explain simply", "You are a friendly tutor. Explain the most important ideas from these notes in simple terms that a first-year college student could understand. Use short bullet points and one real-life example."},
			{"Exam-like practice", "Create 3–5 exam-style questions based on these notes and include model answers."},
			{"Flashcards from notes", "Create flashcards from these notes. Format them as 'Q: ...' and 'A: ...'. Focus on one concept or definition per card."},
			{"Deep dive on a confusing concept", "I am confused about one key concept in these notes. Ask me which one, then explain it in three levels: ELI5, normal explanation, and exam-level detail, followed by 2 practice questions."},
		},
	},
}
