package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

func TestHierarchical_SubjectPrefixNarrowsSubset(t *testing.T) {
	s := NewHierarchical(NewScorer(nil))
	// "mat" matches the MAT subject prefix, so only MAT courses survive.
	query := entities.NewQuery("mat courses about logic")

	rc, err := s.Retrieve(context.Background(), query, fiveCourseCatalog(), 3)

	require.NoError(t, err)
	require.Len(t, rc, 1)
	assert.Equal(t, "MAT210", rc[0].Course.ID)
}

func TestHierarchical_LevelNarrowsSubset(t *testing.T) {
	s := NewHierarchical(NewScorer(nil))
	// "300" selects 3xx-level courses.
	query := entities.NewQuery("300 level sorting")

	rc, err := s.Retrieve(context.Background(), query, fiveCourseCatalog(), 5)

	require.NoError(t, err)
	require.Len(t, rc, 1)
	assert.Equal(t, "CSE340", rc[0].Course.ID)
}

func TestHierarchical_NeverEmptyWhenCatalogNonEmpty(t *testing.T) {
	s := NewHierarchical(NewScorer(nil))
	// No subject or level in the query: coarse filter matches nothing
	// and the strategy degrades to full-catalog ranking.
	query := entities.NewQuery("something about proofs")

	rc, err := s.Retrieve(context.Background(), query, fiveCourseCatalog(), 3)

	require.NoError(t, err)
	require.NotEmpty(t, rc)
	assert.Equal(t, "MAT210", rc[0].Course.ID) // "proofs" hits its description
}

func TestHierarchical_Deterministic(t *testing.T) {
	s := NewHierarchical(NewScorer(nil))
	query := entities.NewQuery("cse sorting")
	cat := fiveCourseCatalog()

	first, err := s.Retrieve(context.Background(), query, cat, 3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := s.Retrieve(context.Background(), query, cat, 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSplitCourseID(t *testing.T) {
	subject, number := splitCourseID("CSE101")
	assert.Equal(t, "CSE", subject)
	assert.Equal(t, "101", number)

	subject, number = splitCourseID("4361")
	assert.Equal(t, "", subject)
	assert.Equal(t, "4361", number)
}

func TestIsLevelToken(t *testing.T) {
	assert.True(t, isLevelToken("300"))
	assert.True(t, isLevelToken("3000"))
	assert.False(t, isLevelToken("340"))
	assert.False(t, isLevelToken("30"))
	assert.False(t, isLevelToken("abc"))
}
