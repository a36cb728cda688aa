package answer

import (
	"context"

	"college-chatbot-be/pkg/llm"
	"college-chatbot-be/pkg/store"
)

// Retriever is the slice of the vector index the chain depends on.
type Retriever interface {
	Retrieve(query string) ([]store.Document, error)
}

// Chain composes a retriever with a chat-completion provider: retrieve the
// nearest FAQ entries, stuff them into a prompt, return the completion
// verbatim. Provider failures propagate to the caller untouched.
type Chain struct {
	provider llm.LLMProvider
}

func NewChain(provider llm.LLMProvider) *Chain {
	return &Chain{
		provider: provider,
	}
}

func (c *Chain) Run(ctx context.Context, retriever Retriever, query string) (string, error) {
	docs, err := retriever.Retrieve(query)
	if err != nil {
		return "", err
	}

	prompt := NewPromptBuilder(docs, query).Build()

	return c.provider.Generate(ctx, prompt)
}
