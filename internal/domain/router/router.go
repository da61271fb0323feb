// Package router classifies incoming queries into a handling path.
// It is a chain of responsibility: cheap, precise matchers run first
// and the chain short-circuits on the first hit. The chain is
// stateless and safe for concurrent use.
package router

import (
	"strings"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// handler is one link in the chain. It either produces a result or
// defers to its successor. A nil successor ends the chain.
type handler interface {
	handle(query entities.Query, catalog *entities.Catalog) entities.RouteResult
}

// Router routes a raw query to exactly one of: direct course match,
// direct title match, or semantic fallback.
type Router struct {
	chain handler
}

// New builds the routing chain: course-ID matcher, then title matcher,
// then the unconditional semantic fallback.
func New() *Router {
	return &Router{
		chain: courseIDHandler{
			next: titleHandler{
				next: fallbackHandler{},
			},
		},
	}
}

// Route classifies the query. It never fails: absence of a specialized
// match is the defined trigger for the fallback, not an error.
func (r *Router) Route(query entities.Query, catalog *entities.Catalog) entities.RouteResult {
	return r.chain.handle(query, catalog)
}

// courseIDHandler matches query tokens against known course IDs,
// case-insensitively. First link: unambiguous and cheap.
type courseIDHandler struct {
	next handler
}

func (h courseIDHandler) handle(query entities.Query, catalog *entities.Catalog) entities.RouteResult {
	for i, token := range query.Tokens {
		if course, ok := catalog.ByID(token); ok {
			return entities.RouteResult{Kind: entities.RouteDirectCourse, Course: course}
		}
		// "CSE 101" tokenizes as two tokens but names the course CSE101.
		if i+1 < len(query.Tokens) {
			if course, ok := catalog.ByID(token + query.Tokens[i+1]); ok {
				return entities.RouteResult{Kind: entities.RouteDirectCourse, Course: course}
			}
		}
	}
	return h.next.handle(query, catalog)
}

// titleHandler matches course titles appearing verbatim (lower-cased)
// in the query. Tie-break: longest matching title wins, then catalog
// order, so the result is deterministic.
type titleHandler struct {
	next handler
}

func (h titleHandler) handle(query entities.Query, catalog *entities.Catalog) entities.RouteResult {
	best := -1
	bestLen := 0
	for i, course := range catalog.Courses() {
		title := strings.ToLower(strings.TrimSpace(course.Title))
		if title == "" || !strings.Contains(query.Lower, title) {
			continue
		}
		if len(title) > bestLen {
			best = i
			bestLen = len(title)
		}
	}
	if best >= 0 {
		return entities.RouteResult{Kind: entities.RouteDirectTitle, Course: catalog.At(best)}
	}
	return h.next.handle(query, catalog)
}

// fallbackHandler terminates the chain: whatever reaches it goes to
// the active retrieval strategy.
type fallbackHandler struct{}

func (fallbackHandler) handle(entities.Query, *entities.Catalog) entities.RouteResult {
	return entities.RouteResult{Kind: entities.RouteSemanticFallback}
}
