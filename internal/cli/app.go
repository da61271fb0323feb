package cli

import (
	"context"
	"fmt"

	"github.com/coursechat/coursechat-go/internal/adapters/catalog"
	"github.com/coursechat/coursechat-go/internal/adapters/embedding"
	"github.com/coursechat/coursechat-go/internal/adapters/filewatcher"
	"github.com/coursechat/coursechat-go/internal/adapters/provider"
	"github.com/coursechat/coursechat-go/internal/config"
	"github.com/coursechat/coursechat-go/internal/domain/entities"
	"github.com/coursechat/coursechat-go/internal/domain/ports"
	"github.com/coursechat/coursechat-go/internal/domain/router"
	"github.com/coursechat/coursechat-go/internal/domain/strategy"
	"github.com/coursechat/coursechat-go/internal/domain/usecases"
	"github.com/coursechat/coursechat-go/internal/log"
)

// buildApp wires the whole system from configuration: catalog source,
// optional embeddings, optional hot-reload, strategies, providers and
// the controller. Catalog-file absence is the one fatal startup error.
func buildApp(ctx context.Context, cfg *config.Config) (*usecases.Controller, *catalog.Holder, error) {
	source, err := newSource(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}

	cat, report, err := source.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	log.Infof("catalog loaded: %d courses, %d records skipped", report.Loaded, report.Skipped)

	var embedder ports.EmbeddingService
	if cfg.Embedding.Enabled {
		adapter := embedding.NewOllamaAdapter(cfg.Embedding.BaseURL, cfg.Embedding.Model)
		embedder = adapter
		cat = embedCatalog(ctx, adapter, cat)
	}

	holder := catalog.NewHolder(cat)
	if cfg.Catalog.Watch {
		if err := watchCatalog(ctx, cfg.Catalog.Path, source, holder); err != nil {
			log.Warnf("catalog watch disabled: %v", err)
		}
	}

	scorer := strategy.NewScorer(embedder)
	strategies := strategy.NewSet(scorer, cfg.Retrieval.WindowHalfWidth)
	providers := provider.NewSet(cfg.Providers)

	controller := usecases.NewController(
		holder,
		router.New(),
		strategies,
		providers,
		cfg.Retrieval.TopK,
		cfg.Retrieval.Strategy,
		cfg.Providers.Default,
	)
	return controller, holder, nil
}

// newSource picks the catalog source for the configured format.
func newSource(cfg config.CatalogConfig) (ports.CatalogSource, error) {
	switch cfg.Format {
	case "", "jsonl":
		return catalog.NewJSONLSource(cfg.Path), nil
	case "sqlite":
		return catalog.NewSQLiteSource(cfg.Path), nil
	default:
		return nil, fmt.Errorf("catalog format %q: %w", cfg.Format, entities.ErrUnknownVariant)
	}
}

// embedCatalog fills in missing course embeddings at startup. Any
// failure logs a warning and leaves the catalog lexical-only - the
// scorer degrades per course, so this is never fatal.
func embedCatalog(ctx context.Context, embedder ports.EmbeddingService, cat *entities.Catalog) *entities.Catalog {
	courses := make([]entities.Course, cat.Len())
	copy(courses, cat.Courses())

	embedded := 0
	for i := range courses {
		if len(courses[i].Embedding) > 0 {
			continue
		}
		emb, err := embedder.Embed(ctx, courses[i].Title+": "+courses[i].Description)
		if err != nil {
			log.Warnf("embedding courses failed at %s, continuing with lexical scoring: %v", courses[i].ID, err)
			return cat
		}
		courses[i].Embedding = emb
		embedded++
	}
	log.Infof("embedded %d courses", embedded)
	return entities.NewCatalog(courses)
}

// watchCatalog hot-reloads the holder's snapshot when the catalog
// file changes. A failed reload keeps the previous snapshot.
func watchCatalog(ctx context.Context, path string, source ports.CatalogSource, holder *catalog.Holder) error {
	watcher, err := filewatcher.NewFSNotifyWatcher(path)
	if err != nil {
		return err
	}
	events, err := watcher.Watch(ctx)
	if err != nil {
		watcher.Stop()
		return err
	}

	go func() {
		defer watcher.Stop()
		for range events {
			cat, report, err := source.Load(ctx)
			if err != nil {
				log.Warnf("catalog reload failed, keeping previous snapshot: %v", err)
				continue
			}
			holder.Swap(cat)
			log.Infof("catalog reloaded: %d courses, %d records skipped", report.Loaded, report.Skipped)
		}
	}()
	return nil
}
