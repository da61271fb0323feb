package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

func testCatalog() *entities.Catalog {
	return entities.NewCatalog([]entities.Course{
		{ID: "CSE101", Title: "Intro to Programming", Description: "variables, loops, functions"},
		{ID: "CSE340", Title: "Algorithms", Description: "sorting, graphs, complexity"},
	})
}

func TestRoute_CourseIDWinsRegardlessOfOtherText(t *testing.T) {
	r := New()
	cat := testCatalog()

	queries := []string{
		"tell me about CSE101",
		"cse101",
		"is Algorithms harder than cse101?", // id beats title
		"what about CSE101 and more",
	}
	for _, q := range queries {
		result := r.Route(entities.NewQuery(q), cat)
		require.Equal(t, entities.RouteDirectCourse, result.Kind, "query %q", q)
		assert.Equal(t, "CSE101", result.Course.ID, "query %q", q)
	}
}

func TestRoute_SplitIDToken(t *testing.T) {
	r := New()
	result := r.Route(entities.NewQuery("tell me about CSE 101"), testCatalog())

	require.Equal(t, entities.RouteDirectCourse, result.Kind)
	assert.Equal(t, "CSE101", result.Course.ID)
}

func TestRoute_TitleMatch(t *testing.T) {
	r := New()
	result := r.Route(entities.NewQuery("what is Algorithms about"), testCatalog())

	require.Equal(t, entities.RouteDirectTitle, result.Kind)
	assert.Equal(t, "CSE340", result.Course.ID)
}

func TestRoute_TitleTieBreakLongestWins(t *testing.T) {
	cat := entities.NewCatalog([]entities.Course{
		{ID: "CSE340", Title: "Algorithms"},
		{ID: "CSE440", Title: "Data Algorithms"},
	})
	r := New()

	// Query contains both titles; the longer "Data Algorithms" wins.
	result := r.Route(entities.NewQuery("compare data algorithms courses"), cat)
	require.Equal(t, entities.RouteDirectTitle, result.Kind)
	assert.Equal(t, "CSE440", result.Course.ID)
}

func TestRoute_TitleTieBreakCatalogOrder(t *testing.T) {
	cat := entities.NewCatalog([]entities.Course{
		{ID: "CSE310", Title: "Compilers"},
		{ID: "CSE320", Title: "Networks!"}, // lowered+trimmed lengths tie: 9 vs 9
	})
	// Equal-length matching titles: first in catalog order wins.
	q := entities.NewQuery("compilers or networks! next term")
	result := New().Route(q, cat)

	require.Equal(t, entities.RouteDirectTitle, result.Kind)
	assert.Equal(t, "CSE310", result.Course.ID)
}

func TestRoute_SemanticFallback(t *testing.T) {
	r := New()
	result := r.Route(entities.NewQuery("what courses involve sorting"), testCatalog())

	assert.Equal(t, entities.RouteSemanticFallback, result.Kind)
}

func TestRoute_EmptyCatalogFallsBack(t *testing.T) {
	r := New()
	result := r.Route(entities.NewQuery("anything"), entities.NewCatalog(nil))

	assert.Equal(t, entities.RouteSemanticFallback, result.Kind)
}
