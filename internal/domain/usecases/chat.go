// Package usecases contains application business rules.
// Usecases orchestrate entities and depend on port interfaces only.
package usecases

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
	"github.com/coursechat/coursechat-go/internal/domain/ports"
	"github.com/coursechat/coursechat-go/internal/domain/router"
	"github.com/coursechat/coursechat-go/internal/log"
)

// CatalogProvider hands out the current catalog snapshot. Each request
// reads one complete snapshot, so a hot-reload mid-session never
// exposes a half-loaded catalog.
type CatalogProvider interface {
	Catalog() *entities.Catalog
}

// Result is the outcome of one handled question.
type Result struct {
	Answer   string
	Route    entities.RouteKind
	Strategy string
	Provider string
}

// Controller orchestrates one request: routing, retrieval, generation.
// It owns the active strategy/provider selections, the only mutable
// state in the core; access is serialized behind an RWMutex.
type Controller struct {
	catalogs   CatalogProvider
	router     *router.Router
	strategies map[string]ports.RetrievalStrategy
	providers  map[string]ports.AnswerProvider
	topK       int

	mu             sync.RWMutex
	activeStrategy string
	activeProvider string
}

// NewController creates a controller with injected dependencies.
// topK <= 0 falls back to 3. An unknown default name falls back to
// the first registered variant in name order rather than failing
// startup, so the effective default is the same on every run.
func NewController(
	catalogs CatalogProvider,
	rt *router.Router,
	strategies map[string]ports.RetrievalStrategy,
	providers map[string]ports.AnswerProvider,
	topK int,
	defaultStrategy, defaultProvider string,
) *Controller {
	if topK <= 0 {
		topK = 3
	}
	if _, ok := strategies[defaultStrategy]; !ok {
		defaultStrategy = firstName(strategies)
	}
	if _, ok := providers[defaultProvider]; !ok {
		defaultProvider = firstName(providers)
	}
	return &Controller{
		catalogs:       catalogs,
		router:         rt,
		strategies:     strategies,
		providers:      providers,
		topK:           topK,
		activeStrategy: defaultStrategy,
		activeProvider: defaultProvider,
	}
}

// firstName returns the lexicographically smallest registered name,
// or "" for an empty registry.
func firstName[V any](registry map[string]V) string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return names[0]
}

// Ask handles one question: route, retrieve, generate. A direct
// id/title match bypasses the active strategy with a single-course
// context - precision over recall. Generation failures are returned
// to the caller and never touch the active selections.
func (c *Controller) Ask(ctx context.Context, text string) (*Result, error) {
	reqID := uuid.NewString()[:8]
	query := entities.NewQuery(text)
	catalog := c.catalogs.Catalog()

	route := c.router.Route(query, catalog)
	log.Debugf("[%s] routed as %s", reqID, route.Kind)

	strategyName, provider := c.activePair()

	var rc entities.RetrievalContext
	switch route.Kind {
	case entities.RouteDirectCourse:
		rc = entities.RetrievalContext{{Course: route.Course, Rationale: "direct id match"}}
	case entities.RouteDirectTitle:
		rc = entities.RetrievalContext{{Course: route.Course, Rationale: "direct title match"}}
	default:
		strat := c.strategies[strategyName]
		var err error
		rc, err = strat.Retrieve(ctx, query, catalog, c.topK)
		if err != nil {
			return nil, fmt.Errorf("retrieving context: %w", err)
		}
	}
	log.Debugf("[%s] %d courses in context", reqID, len(rc))

	answer, err := provider.GenerateAnswer(ctx, text, rc)
	if err != nil {
		return nil, fmt.Errorf("generating answer via %s: %w", provider.Name(), err)
	}

	return &Result{
		Answer:   answer,
		Route:    route.Kind,
		Strategy: strategyName,
		Provider: provider.Name(),
	}, nil
}

// SetStrategy switches the active retrieval strategy. An unknown name
// leaves the current selection unchanged.
func (c *Controller) SetStrategy(name string) error {
	if _, ok := c.strategies[name]; !ok {
		return fmt.Errorf("strategy %q: %w", name, entities.ErrUnknownVariant)
	}
	c.mu.Lock()
	c.activeStrategy = name
	c.mu.Unlock()
	log.Infof("strategy changed to %s", name)
	return nil
}

// SetProvider switches the active answer provider. An unknown name
// leaves the current selection unchanged.
func (c *Controller) SetProvider(name string) error {
	if _, ok := c.providers[name]; !ok {
		return fmt.Errorf("provider %q: %w", name, entities.ErrUnknownVariant)
	}
	c.mu.Lock()
	c.activeProvider = name
	c.mu.Unlock()
	log.Infof("provider changed to %s", name)
	return nil
}

// ActiveStrategy returns the active strategy name.
func (c *Controller) ActiveStrategy() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeStrategy
}

// ActiveProvider returns the active provider name.
func (c *Controller) ActiveProvider() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeProvider
}

// activePair reads both selections under one lock so a request never
// sees a half-updated pair.
func (c *Controller) activePair() (string, ports.AnswerProvider) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeStrategy, c.providers[c.activeProvider]
}
