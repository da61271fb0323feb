package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
	"github.com/coursechat/coursechat-go/internal/domain/ports"
	"github.com/coursechat/coursechat-go/internal/log"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteSource loads courses from a SQLite database. Expected schema:
//
//	CREATE TABLE courses (
//		id TEXT PRIMARY KEY,
//		title TEXT NOT NULL,
//		description TEXT,
//		embedding BLOB
//	);
//
// The embedding column, when present, holds a JSON-encoded float array.
type SQLiteSource struct {
	path string
}

// NewSQLiteSource creates a SQLite catalog source.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

// Load reads all courses ordered by rowid so catalog order is stable.
// Bad rows are skipped with a warning, same policy as the JSONL source.
func (s *SQLiteSource) Load(ctx context.Context) (*entities.Catalog, ports.LoadReport, error) {
	db, err := sql.Open("sqlite3", s.path+"?mode=ro")
	if err != nil {
		return nil, ports.LoadReport{}, fmt.Errorf("opening catalog db %s: %w", s.path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, title, description, embedding FROM courses ORDER BY rowid`)
	if err != nil {
		return nil, ports.LoadReport{}, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	var (
		courses []entities.Course
		report  ports.LoadReport
	)
	for rows.Next() {
		var (
			id, title   string
			description sql.NullString
			embedding   []byte
		)
		if err := rows.Scan(&id, &title, &description, &embedding); err != nil {
			log.Warnf("catalog db %s: skipping bad row: %v", s.path, err)
			report.Skipped++
			continue
		}
		if id == "" || title == "" {
			log.Warnf("catalog db %s: skipping row without id or title", s.path)
			report.Skipped++
			continue
		}

		course := entities.Course{
			ID:          id,
			Title:       title,
			Description: description.String,
		}
		if len(embedding) > 0 {
			if err := json.Unmarshal(embedding, &course.Embedding); err != nil {
				log.Warnf("catalog db %s: course %s has unreadable embedding, keeping lexical: %v", s.path, id, err)
			}
		}
		courses = append(courses, course)
		report.Loaded++
	}
	if err := rows.Err(); err != nil {
		return nil, report, fmt.Errorf("iterating courses: %w", err)
	}

	return entities.NewCatalog(courses), report, nil
}
