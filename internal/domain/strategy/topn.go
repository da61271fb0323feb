package strategy

import (
	"context"
	"fmt"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// TopN ranks every course by relevance and returns the best topK.
type TopN struct {
	scorer *Scorer
}

// NewTopN creates the top-N strategy.
func NewTopN(scorer *Scorer) *TopN {
	return &TopN{scorer: scorer}
}

// Name returns the strategy name.
func (s *TopN) Name() string { return NameTopN }

// Retrieve returns the topK most relevant courses in descending
// score order, ties broken by catalog order.
func (s *TopN) Retrieve(ctx context.Context, query entities.Query, catalog *entities.Catalog, topK int) (entities.RetrievalContext, error) {
	if err := validateTopK(topK); err != nil {
		return nil, err
	}
	if catalog.Len() == 0 {
		return entities.RetrievalContext{}, nil
	}

	scores := s.scorer.Scores(ctx, query, catalog)
	ranked := rankIndices(scores)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	rc := make(entities.RetrievalContext, len(ranked))
	for i, idx := range ranked {
		rc[i] = entities.ContextEntry{
			Course:    catalog.At(idx),
			Rationale: fmt.Sprintf("relevance rank %d (score %.3f)", i+1, scores[idx]),
		}
	}
	return rc, nil
}
