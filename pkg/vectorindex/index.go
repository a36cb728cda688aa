package vectorindex

import (
	"fmt"
	"math"
	"sort"

	"college-chatbot-be/pkg/embedding"
	"college-chatbot-be/pkg/store"
)

// Index is an in-memory similarity index over a fixed document set.
// Documents and vectors are parallel slices; the index is immutable once
// built.
type Index struct {
	documents []store.Document
	vectors   [][]float32
}

// Build embeds every document and assembles the index. Any embedding
// failure aborts the build.
func Build(provider embedding.EmbeddingProvider, docs []store.Document) (*Index, error) {
	vectors := make([][]float32, len(docs))
	for i, doc := range docs {
		vec, err := provider.Generate(doc.Content)
		if err != nil {
			return nil, fmt.Errorf("embedding generation failed for document %d: %w", doc.ID, err)
		}
		vectors[i] = vec
	}

	return &Index{
		documents: docs,
		vectors:   vectors,
	}, nil
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.documents)
}

// Search returns the topK most similar documents to the query vector,
// highest score first.
func (idx *Index) Search(queryVec []float32, topK int) []store.Document {
	scored := make([]store.Document, 0, len(idx.documents))
	for i, doc := range idx.documents {
		doc.Score = CosineSimilarity(queryVec, idx.vectors[i])
		scored = append(scored, doc)
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-length vectors score 0.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
