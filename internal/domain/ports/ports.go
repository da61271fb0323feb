// Package ports defines interfaces for external dependencies.
// Usecases depend on these abstractions, not concrete implementations;
// adapters implement them.
package ports

import (
	"context"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// RetrievalStrategy ranks catalog courses against a query and produces
// the context handed to an answer provider. Implementations must be
// deterministic for identical inputs and must return an empty context,
// not an error, for an empty catalog. topK < 1 is rejected with
// entities.ErrInvalidParameter.
type RetrievalStrategy interface {
	// Name returns the runtime-selectable strategy name.
	Name() string

	// Retrieve produces a ranked retrieval context for the query.
	Retrieve(ctx context.Context, query entities.Query, catalog *entities.Catalog, topK int) (entities.RetrievalContext, error)
}

// AnswerProvider generates a free-text answer from a question and the
// retrieved course context. Failures are classified with
// entities.ErrProviderUnavailable / entities.ErrProviderError.
type AnswerProvider interface {
	// Name returns the runtime-selectable provider name.
	Name() string

	// GenerateAnswer produces an answer for the question given context.
	GenerateAnswer(ctx context.Context, question string, rc entities.RetrievalContext) (string, error)
}

// EmbeddingService generates vector embeddings for text.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// CatalogSource loads the course catalog from backing storage.
type CatalogSource interface {
	// Load reads all courses. Malformed records are skipped with a
	// warning and reported in LoadReport; only an unreadable source
	// is an error.
	Load(ctx context.Context) (*entities.Catalog, LoadReport, error)
}

// LoadReport summarizes one catalog load.
type LoadReport struct {
	Loaded  int
	Skipped int
}

// CatalogWatcher monitors the catalog source for changes.
type CatalogWatcher interface {
	// Watch starts monitoring and emits an event per detected change.
	Watch(ctx context.Context) (<-chan ChangeEvent, error)

	// Stop stops the watcher.
	Stop() error
}

// ChangeEvent signals that the catalog source changed on disk.
type ChangeEvent struct {
	Path string
}
