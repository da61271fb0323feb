package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ByIDCaseInsensitive(t *testing.T) {
	cat := NewCatalog([]Course{
		{ID: "CSE101", Title: "Intro to Programming"},
		{ID: "CSE340", Title: "Algorithms"},
	})

	course, ok := cat.ByID("cse101")
	require.True(t, ok)
	assert.Equal(t, "CSE101", course.ID)

	course, ok = cat.ByID("Cse340")
	require.True(t, ok)
	assert.Equal(t, "Algorithms", course.Title)

	_, ok = cat.ByID("CSE999")
	assert.False(t, ok)
}

func TestCatalog_DropsDuplicateIDs(t *testing.T) {
	cat := NewCatalog([]Course{
		{ID: "CSE101", Title: "first"},
		{ID: "cse101", Title: "second"},
	})

	require.Equal(t, 1, cat.Len())
	course, _ := cat.ByID("CSE101")
	assert.Equal(t, "first", course.Title)
}

func TestCatalog_PreservesOrder(t *testing.T) {
	cat := NewCatalog([]Course{
		{ID: "B200", Title: "b"},
		{ID: "A100", Title: "a"},
		{ID: "C300", Title: "c"},
	})

	assert.Equal(t, "B200", cat.At(0).ID)
	assert.Equal(t, "A100", cat.At(1).ID)
	assert.Equal(t, 2, cat.IndexOf("c300"))
	assert.Equal(t, -1, cat.IndexOf("nope"))
}

func TestNewQuery_DerivedFields(t *testing.T) {
	q := NewQuery("Tell me about CSE101!")

	assert.Equal(t, "tell me about cse101!", q.Lower)
	assert.Equal(t, []string{"tell", "me", "about", "cse101"}, q.Tokens)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"data", "structures", "101"}, Tokenize("Data-Structures, 101"))
	assert.Empty(t, Tokenize("  ...  "))
}

func TestRetrievalContext_Courses(t *testing.T) {
	rc := RetrievalContext{
		{Course: Course{ID: "A"}, Rationale: "x"},
		{Course: Course{ID: "B"}, Rationale: "y"},
	}
	courses := rc.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, "A", courses[0].ID)
	assert.Equal(t, "B", courses[1].ID)
}

func TestRouteKind_String(t *testing.T) {
	assert.Equal(t, "direct_course", RouteDirectCourse.String())
	assert.Equal(t, "direct_title", RouteDirectTitle.String())
	assert.Equal(t, "semantic_fallback", RouteSemanticFallback.String())
}
