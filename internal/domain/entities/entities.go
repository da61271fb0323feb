// Package entities contains core business entities.
// These are pure domain objects with no external dependencies.
package entities

import (
	"strings"
	"unicode"
)

// Course represents a single course in the catalog.
// Immutable after catalog construction - nothing in the core mutates one.
type Course struct {
	ID          string
	Title       string
	Description string
	Embedding   []float32 // Optional vector; absence is valid, not an error.
}

// Catalog is an ordered, read-only collection of courses.
// The byID index is keyed by upper-cased ID so lookups are
// case-insensitive without touching the stored records.
type Catalog struct {
	courses []Course
	byID    map[string]int
}

// NewCatalog builds a catalog from an ordered course slice.
// Later duplicates of an ID are dropped so the uniqueness
// invariant holds regardless of source data.
func NewCatalog(courses []Course) *Catalog {
	c := &Catalog{
		byID: make(map[string]int, len(courses)),
	}
	for _, course := range courses {
		key := strings.ToUpper(course.ID)
		if _, exists := c.byID[key]; exists {
			continue
		}
		c.byID[key] = len(c.courses)
		c.courses = append(c.courses, course)
	}
	return c
}

// Courses returns the courses in catalog order.
// Callers must treat the slice as read-only.
func (c *Catalog) Courses() []Course {
	return c.courses
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// ByID looks up a course by ID, case-insensitively.
func (c *Catalog) ByID(id string) (Course, bool) {
	idx, ok := c.byID[strings.ToUpper(id)]
	if !ok {
		return Course{}, false
	}
	return c.courses[idx], true
}

// At returns the course at the given catalog position.
func (c *Catalog) At(i int) Course {
	return c.courses[i]
}

// IndexOf returns the catalog position of an ID, or -1.
func (c *Catalog) IndexOf(id string) int {
	idx, ok := c.byID[strings.ToUpper(id)]
	if !ok {
		return -1
	}
	return idx
}

// Query is a single user utterance with fields derived once at
// construction. Transient: built per request, discarded afterwards.
type Query struct {
	Raw    string
	Lower  string
	Tokens []string
}

// NewQuery builds a query and its derived fields from raw text.
func NewQuery(raw string) Query {
	return Query{
		Raw:    raw,
		Lower:  strings.ToLower(raw),
		Tokens: Tokenize(raw),
	}
}

// Tokenize splits text into lower-cased alphanumeric tokens.
// Shared by the router and the lexical relevance scorer so the
// two agree on what a "token" is.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ContextEntry pairs a retrieved course with the reason it was selected.
type ContextEntry struct {
	Course    Course
	Rationale string
}

// RetrievalContext is the ordered payload handed to an answer provider.
// Constructed by a strategy (or the controller on a direct match),
// consumed once, never retained.
type RetrievalContext []ContextEntry

// Courses returns just the courses, in context order.
func (rc RetrievalContext) Courses() []Course {
	out := make([]Course, len(rc))
	for i, e := range rc {
		out[i] = e.Course
	}
	return out
}

// RouteKind tags the outcome of routing a query.
type RouteKind int

const (
	// RouteDirectCourse means the query named a course by ID.
	RouteDirectCourse RouteKind = iota
	// RouteDirectTitle means the query contained a course title.
	RouteDirectTitle
	// RouteSemanticFallback means no specialized matcher fired and the
	// active retrieval strategy should handle the query.
	RouteSemanticFallback
)

// String returns the route kind name for logs.
func (k RouteKind) String() string {
	switch k {
	case RouteDirectCourse:
		return "direct_course"
	case RouteDirectTitle:
		return "direct_title"
	default:
		return "semantic_fallback"
	}
}

// RouteResult is the router's decision for one query. Course is only
// meaningful for the two direct kinds.
type RouteResult struct {
	Kind   RouteKind
	Course Course
}
