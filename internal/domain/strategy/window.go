package strategy

import (
	"context"
	"fmt"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// Window returns a contiguous slice of the catalog centered on the
// best single match: "show me courses around X". Half-width is fixed
// at construction; topK is still validated per the common contract.
type Window struct {
	scorer    *Scorer
	halfWidth int
}

// NewWindow creates the window strategy. halfWidth < 1 falls back to 1.
func NewWindow(scorer *Scorer, halfWidth int) *Window {
	if halfWidth < 1 {
		halfWidth = 1
	}
	return &Window{scorer: scorer, halfWidth: halfWidth}
}

// Name returns the strategy name.
func (s *Window) Name() string { return NameWindow }

// Retrieve finds the best-matching course and returns it with its
// catalog-order neighbors, clipped at the catalog edges.
func (s *Window) Retrieve(ctx context.Context, query entities.Query, catalog *entities.Catalog, topK int) (entities.RetrievalContext, error) {
	if err := validateTopK(topK); err != nil {
		return nil, err
	}
	if catalog.Len() == 0 {
		return entities.RetrievalContext{}, nil
	}

	scores := s.scorer.Scores(ctx, query, catalog)
	center := bestIndex(scores)

	lo := center - s.halfWidth
	if lo < 0 {
		lo = 0
	}
	hi := center + s.halfWidth
	if hi > catalog.Len()-1 {
		hi = catalog.Len() - 1
	}

	centerCourse := catalog.At(center)
	rc := make(entities.RetrievalContext, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		rationale := fmt.Sprintf("window center (score %.3f)", scores[center])
		if i != center {
			rationale = fmt.Sprintf("catalog neighbor of %s", centerCourse.ID)
		}
		rc = append(rc, entities.ContextEntry{Course: catalog.At(i), Rationale: rationale})
	}
	return rc, nil
}
