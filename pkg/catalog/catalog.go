// Package catalog keeps a searchable sqlite index of scanned slide decks.
package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

// Catalog manages the deck index
type Catalog struct {
	db     *sql.DB
	useFTS bool
}

// Open opens (or creates) the catalog database at dbPath
func Open(dbPath string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	c := &Catalog{db: db}
	if err := c.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize catalog: %w", err)
	}

	return c, nil
}

// init creates the database schema
func (c *Catalog) init() error {
	c.useFTS = c.checkFTS5Support()

	metaSchema := `
	CREATE TABLE IF NOT EXISTS decks (
		path TEXT PRIMARY KEY,
		title TEXT,
		author TEXT,
		tags TEXT,
		content TEXT,
		cells INTEGER,
		slides INTEGER,
		fragments INTEGER,
		spacers INTEGER,
		modified_at TIMESTAMP,
		indexed_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_decks_title ON decks(title);
	CREATE INDEX IF NOT EXISTS idx_decks_spacers ON decks(spacers);
	`
	if _, err := c.db.Exec(metaSchema); err != nil {
		return err
	}

	if c.useFTS {
		ftsSchema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS decks_fts USING fts5(
			path UNINDEXED,
			title,
			tags,
			content,
			tokenize = 'porter unicode61'
		);
		`
		if _, err := c.db.Exec(ftsSchema); err != nil {
			// Fall back to LIKE queries
			c.useFTS = false
		}
	}

	return nil
}

// checkFTS5Support checks if the FTS5 module is compiled in
func (c *Catalog) checkFTS5Support() bool {
	_, err := c.db.Exec("CREATE VIRTUAL TABLE IF NOT EXISTS fts5_probe USING fts5(content)")
	if err != nil {
		return false
	}
	_, _ = c.db.Exec("DROP TABLE IF EXISTS fts5_probe")
	return true
}

// Put indexes or reindexes a deck
func (c *Catalog) Put(deck *models.Deck) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	tags := strings.Join(deck.Tags, ",")
	if c.useFTS {
		if _, err := tx.Exec("DELETE FROM decks_fts WHERE path = ?", deck.Path); err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO decks_fts (path, title, tags, content) VALUES (?, ?, ?, ?)
		`, deck.Path, deck.Title, tags, deck.Content); err != nil {
			return err
		}
	}

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO decks (
			path, title, author, tags, content, cells, slides, fragments, spacers, modified_at, indexed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, deck.Path, deck.Title, deck.Author, tags, deck.Content, deck.Cells, deck.Slides, deck.Fragments,
		deck.Spacers, deck.ModifiedAt, deck.IndexedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Options for searching
type Options struct {
	// NeedsCleaning limits results to decks saved with spacer cells.
	NeedsCleaning bool
	Limit         int
}

const deckColumns = "d.path, d.title, d.author, d.tags, d.cells, d.slides, d.fragments, d.spacers, d.modified_at, d.indexed_at"

// Search finds decks whose title or content matches query. An empty query
// lists every deck.
func (c *Catalog) Search(query string, opts *Options) ([]*models.Deck, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	var (
		conditions []string
		args       []any
		from       = "decks d"
		order      = "d.title"
	)
	if opts.NeedsCleaning {
		conditions = append(conditions, "d.spacers > 0")
	}

	query = strings.TrimSpace(query)
	switch {
	case query == "":
	case c.useFTS:
		from = "decks_fts f JOIN decks d ON f.path = d.path"
		conditions = append(conditions, "decks_fts MATCH ?")
		args = append(args, ftsQuery(query))
		order = "rank"
	default:
		pattern := "%" + strings.ReplaceAll(query, " ", "%") + "%"
		conditions = append(conditions, "(d.title LIKE ? OR d.tags LIKE ? OR d.content LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	stmt := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s LIMIT ?", deckColumns, from, where, order)
	args = append(args, opts.Limit)

	rows, err := c.db.Query(stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Deck
	for rows.Next() {
		var tags string
		d := &models.Deck{}
		if err := rows.Scan(&d.Path, &d.Title, &d.Author, &tags, &d.Cells, &d.Slides, &d.Fragments, &d.Spacers, &d.ModifiedAt, &d.IndexedAt); err != nil {
			return nil, err
		}
		if tags != "" {
			d.Tags = strings.Split(tags, ",")
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

// ftsQuery quotes each term so user input is never parsed as FTS syntax
func ftsQuery(q string) string {
	terms := strings.Fields(q)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

// Remove removes a deck from the catalog
func (c *Catalog) Remove(path string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if c.useFTS {
		if _, err := tx.Exec("DELETE FROM decks_fts WHERE path = ?", path); err != nil {
			return err
		}
	}
	if _, err := tx.Exec("DELETE FROM decks WHERE path = ?", path); err != nil {
		return err
	}
	return tx.Commit()
}

// Count returns the number of catalogued decks
func (c *Catalog) Count() (int, error) {
	var n int
	err := c.db.QueryRow("SELECT COUNT(*) FROM decks").Scan(&n)
	return n, err
}

// Close closes the catalog
func (c *Catalog) Close() error {
	return c.db.Close()
}
