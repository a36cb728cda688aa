package vectorindex

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"college-chatbot-be/pkg/embedding"
	"college-chatbot-be/pkg/store"
)

// Retriever returns the top-k nearest documents for a query against a
// built index.
type Retriever struct {
	index    *Index
	provider embedding.EmbeddingProvider
	topK     int
}

func NewRetriever(index *Index, provider embedding.EmbeddingProvider, topK int) *Retriever {
	return &Retriever{
		index:    index,
		provider: provider,
		topK:     topK,
	}
}

// Retrieve embeds the query and searches the index.
func (r *Retriever) Retrieve(query string) ([]store.Document, error) {
	queryVec, err := r.provider.Generate(query)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}
	return r.index.Search(queryVec, r.topK), nil
}

// Builder produces retrievers for FAQ snapshots. Built indexes are cached
// keyed by the snapshot fingerprint so an unchanged document set within the
// FAQ cache window does not re-embed every row. A zero TTL disables the
// cache, restoring rebuild-per-request.
type Builder struct {
	provider embedding.EmbeddingProvider
	topK     int
	indexes  *cache.Cache
}

func NewBuilder(provider embedding.EmbeddingProvider, topK int, ttl time.Duration) *Builder {
	var c *cache.Cache
	if ttl > 0 {
		c = cache.New(ttl, ttl)
	}
	return &Builder{
		provider: provider,
		topK:     topK,
		indexes:  c,
	}
}

// RetrieverFor returns a retriever over the given documents, reusing a
// cached index when the fingerprint matches.
func (b *Builder) RetrieverFor(fingerprint string, docs []store.Document) (*Retriever, error) {
	if b.indexes != nil {
		if x, found := b.indexes.Get(fingerprint); found {
			return NewRetriever(x.(*Index), b.provider, b.topK), nil
		}
	}

	index, err := Build(b.provider, docs)
	if err != nil {
		return nil, err
	}

	if b.indexes != nil {
		b.indexes.Set(fingerprint, index, cache.DefaultExpiration)
	}

	return NewRetriever(index, b.provider, b.topK), nil
}
