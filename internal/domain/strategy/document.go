package strategy

import (
	"context"
	"fmt"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// Document treats each course description as an atomic unit and
// returns the single best match whole, no truncation. Used when the
// user wants one complete course description.
type Document struct {
	scorer *Scorer
}

// NewDocument creates the document strategy.
func NewDocument(scorer *Scorer) *Document {
	return &Document{scorer: scorer}
}

// Name returns the strategy name.
func (s *Document) Name() string { return NameDocument }

// Retrieve returns the single best-matching course.
func (s *Document) Retrieve(ctx context.Context, query entities.Query, catalog *entities.Catalog, topK int) (entities.RetrievalContext, error) {
	if err := validateTopK(topK); err != nil {
		return nil, err
	}
	if catalog.Len() == 0 {
		return entities.RetrievalContext{}, nil
	}

	scores := s.scorer.Scores(ctx, query, catalog)
	best := bestIndex(scores)

	return entities.RetrievalContext{{
		Course:    catalog.At(best),
		Rationale: fmt.Sprintf("best matching document (score %.3f)", scores[best]),
	}}, nil
}
