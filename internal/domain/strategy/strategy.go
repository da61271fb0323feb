// Package strategy implements the interchangeable retrieval
// strategies. Each variant ranks the catalog against a query and
// produces the context handed to an answer provider. All variants
// share the common contract: topK >= 1, empty catalog yields an
// empty context, output is deterministic for identical inputs.
package strategy

import (
	"fmt"
	"sort"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
	"github.com/coursechat/coursechat-go/internal/domain/ports"
)

// Runtime-selectable strategy names.
const (
	NameTopN         = "top_n"
	NameWindow       = "window"
	NameDocument     = "document"
	NameHierarchical = "hierarchical"
)

// Names returns the known strategy names in presentation order.
func Names() []string {
	return []string{NameTopN, NameWindow, NameDocument, NameHierarchical}
}

// Set holds all strategy variants keyed by name.
type Set map[string]ports.RetrievalStrategy

// NewSet constructs the full strategy family sharing one scorer.
// windowHalfWidth configures the window variant's reach on each side
// of its center course.
func NewSet(scorer *Scorer, windowHalfWidth int) Set {
	return Set{
		NameTopN:         NewTopN(scorer),
		NameWindow:       NewWindow(scorer, windowHalfWidth),
		NameDocument:     NewDocument(scorer),
		NameHierarchical: NewHierarchical(scorer),
	}
}

// validateTopK enforces the common parameter contract.
func validateTopK(topK int) error {
	if topK < 1 {
		return fmt.Errorf("top_k must be at least 1, got %d: %w", topK, entities.ErrInvalidParameter)
	}
	return nil
}

// rankIndices orders course indices by descending score, breaking
// ties by catalog order. Stable and independent of map iteration.
func rankIndices(scores []float64) []int {
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})
	return indices
}

// bestIndex returns the highest-scoring course index, ties going to
// the earliest catalog position. Returns -1 for an empty slice.
func bestIndex(scores []float64) int {
	best := -1
	for i, score := range scores {
		if best < 0 || score > scores[best] {
			best = i
		}
	}
	return best
}
