package answer

import (
	"strings"

	"college-chatbot-be/pkg/store"
)

// PromptBuilder assembles the stuffed prompt: retrieved FAQ entries as
// reference material, the task framing, and the user's question.
type PromptBuilder struct {
	documents []store.Document
	query     string
}

func NewPromptBuilder(documents []store.Document, query string) *PromptBuilder {
	return &PromptBuilder{
		documents: documents,
		query:     query,
	}
}

func (b *PromptBuilder) Build() string {
	var prompt strings.Builder

	b.writeReferenceMaterial(&prompt)
	b.writeTask(&prompt)
	b.writeUserQuery(&prompt)

	return prompt.String()
}

func (b *PromptBuilder) writeReferenceMaterial(prompt *strings.Builder) {
	prompt.WriteString("<reference_material>\n")
	for i, doc := range b.documents {
		if i > 0 {
			prompt.WriteString("\n---\n")
		}
		prompt.WriteString(doc.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("</reference_material>\n\n")
}

func (b *PromptBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a helpful college assistant answering questions about admissions, courses, fees, exams, and class schedules.\n")
	prompt.WriteString("Answer the question using the FAQ entries in the reference material.\n")
	prompt.WriteString("If the material does not cover the question, say so honestly.\n")
	prompt.WriteString("</task>\n\n")
}

func (b *PromptBuilder) writeUserQuery(prompt *strings.Builder) {
	prompt.WriteString("<user_question>\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n</user_question>\n")
}
