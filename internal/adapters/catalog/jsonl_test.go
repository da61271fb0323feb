package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJSONLSource_LoadsCourses(t *testing.T) {
	path := writeCatalogFile(t, `{"id":"CSE101","title":"Intro to Programming","description":"basics"}
{"id":"CSE340","title":"Algorithms","description":"sorting","embedding":[0.1,0.2]}
`)
	source := NewJSONLSource(path)

	cat, report, err := source.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, 0, report.Skipped)
	require.Equal(t, 2, cat.Len())

	course, ok := cat.ByID("cse340")
	require.True(t, ok)
	assert.Equal(t, "Algorithms", course.Title)
	assert.Equal(t, []float32{0.1, 0.2}, course.Embedding)
}

func TestJSONLSource_SkipsMalformedLines(t *testing.T) {
	path := writeCatalogFile(t, `{"id":"CSE101","title":"Intro to Programming"}
this is not json
{"title":"missing id"}
{"id":"CSE340","title":"Algorithms"}

{"id":"CSE440"}
`)
	source := NewJSONLSource(path)

	cat, report, err := source.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, 3, report.Skipped)
	assert.Equal(t, 2, cat.Len())
}

func TestJSONLSource_OversizeLine(t *testing.T) {
	big := fmt.Sprintf(`{"id":"CSE205","title":"Systems","description":%q}`, strings.Repeat("x", 2*1024*1024))
	path := writeCatalogFile(t, `{"id":"CSE101","title":"Intro to Programming"}
`+big+`
{"id":"CSE340","title":"Algorithms"}
`)
	source := NewJSONLSource(path)

	cat, report, err := source.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, report.Loaded)
	assert.Equal(t, 0, report.Skipped)

	// The records after the big one must survive.
	_, ok := cat.ByID("CSE340")
	assert.True(t, ok)
}

func TestJSONLSource_OversizeMalformedLineSkipped(t *testing.T) {
	path := writeCatalogFile(t, `{"id":"CSE101","title":"Intro to Programming"}
`+strings.Repeat("garbage ", 256*1024)+`
{"id":"CSE340","title":"Algorithms"}
`)
	source := NewJSONLSource(path)

	cat, report, err := source.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, 1, report.Skipped)

	_, ok := cat.ByID("CSE340")
	assert.True(t, ok)
}

func TestJSONLSource_MissingFileIsFatal(t *testing.T) {
	source := NewJSONLSource(filepath.Join(t.TempDir(), "absent.jsonl"))

	_, _, err := source.Load(context.Background())

	require.Error(t, err)
}

func TestJSONLSource_EmptyFile(t *testing.T) {
	source := NewJSONLSource(writeCatalogFile(t, ""))

	cat, report, err := source.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.Loaded)
	assert.Equal(t, 0, cat.Len())
}
