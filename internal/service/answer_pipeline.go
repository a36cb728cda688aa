package service

import (
	"context"

	"college-chatbot-be/pkg/answer"
	"college-chatbot-be/pkg/faq"
	"college-chatbot-be/pkg/vectorindex"
)

// AnswerPipeline produces an answer for a composed query string.
type AnswerPipeline interface {
	Answer(ctx context.Context, query string) (string, error)
}

// ragPipeline is the production pipeline: cached FAQ snapshot,
// fingerprint-keyed vector index, top-k retrieval, completion.
type ragPipeline struct {
	faqLoader    *faq.Loader
	indexBuilder *vectorindex.Builder
	chain        *answer.Chain
}

func NewAnswerPipeline(
	faqLoader *faq.Loader,
	indexBuilder *vectorindex.Builder,
	chain *answer.Chain,
) AnswerPipeline {
	return &ragPipeline{
		faqLoader:    faqLoader,
		indexBuilder: indexBuilder,
		chain:        chain,
	}
}

func (p *ragPipeline) Answer(ctx context.Context, query string) (string, error) {
	snapshot, err := p.faqLoader.Load()
	if err != nil {
		return "", err
	}

	retriever, err := p.indexBuilder.RetrieverFor(snapshot.Fingerprint, snapshot.Documents)
	if err != nil {
		return "", err
	}

	return p.chain.Run(ctx, retriever, query)
}
