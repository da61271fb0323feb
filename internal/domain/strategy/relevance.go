package strategy

import (
	"context"
	"math"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
	"github.com/coursechat/coursechat-go/internal/domain/ports"
)

// Scorer computes a relevance score per course for a query. When a
// query embedding is available and a course carries one, the score is
// cosine similarity; otherwise it falls back to lexical token overlap.
// Both paths are deterministic, so strategy output is stable across
// calls with identical inputs.
type Scorer struct {
	embedder ports.EmbeddingService
}

// NewScorer creates a scorer. A nil embedder is valid and selects the
// lexical path for every course.
func NewScorer(embedder ports.EmbeddingService) *Scorer {
	return &Scorer{embedder: embedder}
}

// Scores returns one score per catalog course, in catalog order.
// An embedding failure degrades to lexical scoring rather than
// failing the retrieval.
func (s *Scorer) Scores(ctx context.Context, query entities.Query, catalog *entities.Catalog) []float64 {
	var queryEmbedding []float32
	if s.embedder != nil {
		if emb, err := s.embedder.Embed(ctx, query.Raw); err == nil {
			queryEmbedding = emb
		}
	}

	scores := make([]float64, catalog.Len())
	for i, course := range catalog.Courses() {
		if queryEmbedding != nil && len(course.Embedding) > 0 {
			scores[i] = cosineSimilarity(queryEmbedding, course.Embedding)
			continue
		}
		scores[i] = lexicalOverlap(query.Tokens, course)
	}
	return scores
}

// lexicalOverlap scores a course by query-token hits, weighting title
// hits double since a title word is a stronger signal than one buried
// in a long description.
func lexicalOverlap(queryTokens []string, course entities.Course) float64 {
	if len(queryTokens) == 0 {
		return 0
	}

	titleTokens := toSet(entities.Tokenize(course.Title))
	descTokens := toSet(entities.Tokenize(course.Description))

	seen := make(map[string]struct{}, len(queryTokens))
	var hits float64
	for _, tok := range queryTokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := titleTokens[tok]; ok {
			hits += 2
		} else if _, ok := descTokens[tok]; ok {
			hits++
		}
	}
	return hits / float64(2*len(seen))
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// cosineSimilarity computes the cosine of the angle between vectors.
// Mismatched lengths or zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
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
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
