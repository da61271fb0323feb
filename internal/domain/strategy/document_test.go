package strategy

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

func TestDocument_ReturnsSingleBestMatchWhole(t *testing.T) {
	s := NewDocument(NewScorer(nil))
	query := entities.NewQuery("sorting algorithms")

	rc, err := s.Retrieve(context.Background(), query, fiveCourseCatalog(), 3)

	require.NoError(t, err)
	require.Len(t, rc, 1)
	assert.Equal(t, "CSE340", rc[0].Course.ID)
	// Whole description, no truncation.
	assert.Equal(t, "quicksort, mergesort, heaps", rc[0].Course.Description)
	assert.True(t, strings.HasPrefix(rc[0].Rationale, "best matching document"))
}

func TestDocument_NoLexicalHitStillReturnsOne(t *testing.T) {
	s := NewDocument(NewScorer(nil))

	rc, err := s.Retrieve(context.Background(), entities.NewQuery("zzz unknown topic"), fiveCourseCatalog(), 1)

	require.NoError(t, err)
	// All scores tie at zero; earliest catalog entry wins.
	require.Len(t, rc, 1)
	assert.Equal(t, "CSE101", rc[0].Course.ID)
}
