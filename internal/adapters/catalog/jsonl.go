// Package catalog provides course catalog source adapters and the
// swappable in-memory holder the rest of the system reads from.
package catalog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
	"github.com/coursechat/coursechat-go/internal/domain/ports"
	"github.com/coursechat/coursechat-go/internal/log"
)

// JSONLSource loads courses from a newline-delimited JSON file, one
// course object per line.
type JSONLSource struct {
	path string
}

// NewJSONLSource creates a JSONL catalog source.
func NewJSONLSource(path string) *JSONLSource {
	return &JSONLSource{path: path}
}

// courseRecord is the on-disk course format.
type courseRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Embedding   []float32 `json:"embedding,omitempty"`
}

// Load reads the whole file. A malformed line or a record missing its
// id or title is skipped with a warning; only an unreadable file is
// an error. Lines carry no length limit, so one oversize record never
// takes down the records after it.
func (s *JSONLSource) Load(ctx context.Context) (*entities.Catalog, ports.LoadReport, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, ports.LoadReport{}, fmt.Errorf("opening catalog %s: %w", s.path, err)
	}
	defer file.Close()

	var (
		courses []entities.Course
		report  ports.LoadReport
		lineNo  int
	)

	reader := bufio.NewReader(file)
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, report, fmt.Errorf("reading catalog %s: %w", s.path, readErr)
		}
		lineNo++

		if line := strings.TrimSpace(raw); line != "" {
			var rec courseRecord
			switch err := json.Unmarshal([]byte(line), &rec); {
			case err != nil:
				log.Warnf("catalog %s line %d: skipping malformed record: %v", s.path, lineNo, err)
				report.Skipped++
			case rec.ID == "" || rec.Title == "":
				log.Warnf("catalog %s line %d: skipping record without id or title", s.path, lineNo)
				report.Skipped++
			default:
				courses = append(courses, entities.Course{
					ID:          rec.ID,
					Title:       rec.Title,
					Description: rec.Description,
					Embedding:   rec.Embedding,
				})
				report.Loaded++
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	return entities.NewCatalog(courses), report, nil
}
