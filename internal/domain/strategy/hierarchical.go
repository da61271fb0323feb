package strategy

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// Hierarchical narrows the catalog by a coarse key first - the
// subject prefix of a course ID (the "CSE" in CSE101) or the course
// level (the leading digit of the number part) - then ranks within
// that subset. When the coarse filter matches nothing the strategy
// degrades to full-catalog ranking, so it never returns an empty
// context while any course exists.
type Hierarchical struct {
	scorer *Scorer
}

// NewHierarchical creates the hierarchical strategy.
func NewHierarchical(scorer *Scorer) *Hierarchical {
	return &Hierarchical{scorer: scorer}
}

// Name returns the strategy name.
func (s *Hierarchical) Name() string { return NameHierarchical }

// Retrieve applies the coarse filter, then top-N ranking within the
// surviving subset.
func (s *Hierarchical) Retrieve(ctx context.Context, query entities.Query, catalog *entities.Catalog, topK int) (entities.RetrievalContext, error) {
	if err := validateTopK(topK); err != nil {
		return nil, err
	}
	if catalog.Len() == 0 {
		return entities.RetrievalContext{}, nil
	}

	subset, coarseKey := s.coarseFilter(query, catalog)
	scores := s.scorer.Scores(ctx, query, catalog)

	ranked := rankIndices(scores)
	rc := make(entities.RetrievalContext, 0, topK)
	for _, idx := range ranked {
		if subset != nil {
			if _, ok := subset[idx]; !ok {
				continue
			}
		}
		rationale := fmt.Sprintf("relevance rank %d (score %.3f)", len(rc)+1, scores[idx])
		if coarseKey != "" {
			rationale = fmt.Sprintf("%s subset, %s", coarseKey, rationale)
		}
		rc = append(rc, entities.ContextEntry{Course: catalog.At(idx), Rationale: rationale})
		if len(rc) == topK {
			break
		}
	}
	return rc, nil
}

// coarseFilter returns the catalog indices surviving the coarse key
// match, or a nil set (meaning "whole catalog") when no key in the
// query narrows anything.
func (s *Hierarchical) coarseFilter(query entities.Query, catalog *entities.Catalog) (map[int]struct{}, string) {
	for _, token := range query.Tokens {
		subset := make(map[int]struct{})
		for i, course := range catalog.Courses() {
			subject, number := splitCourseID(course.ID)
			switch {
			case subject != "" && token == strings.ToLower(subject):
				subset[i] = struct{}{}
			case isLevelToken(token) && number != "" && token[0] == number[0]:
				subset[i] = struct{}{}
			}
		}
		if len(subset) > 0 {
			return subset, token
		}
	}
	return nil, ""
}

// splitCourseID separates an ID like "CSE101" into its subject
// letters and number digits. Either part may be empty.
func splitCourseID(id string) (subject, number string) {
	i := 0
	for i < len(id) && unicode.IsLetter(rune(id[i])) {
		i++
	}
	subject = id[:i]
	for _, r := range id[i:] {
		if unicode.IsDigit(r) {
			number += string(r)
		}
	}
	return subject, number
}

// isLevelToken reports whether a token looks like a course level,
// e.g. "300" or "3000".
func isLevelToken(token string) bool {
	if len(token) < 3 || len(token) > 4 {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return strings.Trim(token[1:], "0") == ""
}
