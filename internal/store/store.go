// Package store persists fetched articles and link sets in SQLite so a
// corpus can be assembled across runs without refetching.
package store

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "modernc.org/sqlite"

	"github.com/matsen/wikicorpus/wiki"
)

// Store wraps a SQLite database holding fetched articles and links.
type Store struct {
	db *sql.DB
}

// Open opens or creates a corpus store at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS articles (
			title TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			pageid INTEGER NOT NULL,
			lang TEXT NOT NULL,
			fetched_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS links (
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			direction TEXT NOT NULL,
			PRIMARY KEY (source, target, direction)
		);

		CREATE INDEX IF NOT EXISTS idx_links_source ON links(source, direction);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveArticles inserts or replaces articles in one transaction.
func (s *Store) SaveArticles(articles []wiki.Article) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO articles (title, text, pageid, lang, fetched_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, a := range articles {
		if _, err := stmt.Exec(a.Title, a.Text, a.PageID, a.Lang, now); err != nil {
			return fmt.Errorf("inserting article %q: %w", a.Title, err)
		}
	}
	return tx.Commit()
}

// GetArticle returns the stored article with the given title, or nil if
// it has not been fetched.
func (s *Store) GetArticle(title string) (*wiki.Article, error) {
	var a wiki.Article
	err := s.db.QueryRow(
		`SELECT title, text, pageid, lang FROM articles WHERE title = ?`, title,
	).Scan(&a.Title, &a.Text, &a.PageID, &a.Lang)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying article %q: %w", title, err)
	}
	return &a, nil
}

// ListArticles returns all stored articles ordered by title.
func (s *Store) ListArticles() ([]wiki.Article, error) {
	rows, err := s.db.Query(`SELECT title, text, pageid, lang FROM articles ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []wiki.Article
	for rows.Next() {
		var a wiki.Article
		if err := rows.Scan(&a.Title, &a.Text, &a.PageID, &a.Lang); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// CountArticles returns the number of stored articles.
func (s *Store) CountArticles() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return n, nil
}

// SaveLinks replaces the stored link set of one source page.
func (s *Store) SaveLinks(source string, direction wiki.LinkDirection, targets []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM links WHERE source = ? AND direction = ?`, source, string(direction),
	); err != nil {
		return fmt.Errorf("clearing links for %q: %w", source, err)
	}

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO links (source, target, direction) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, target := range targets {
		if _, err := stmt.Exec(source, target, string(direction)); err != nil {
			return fmt.Errorf("inserting link %q -> %q: %w", source, target, err)
		}
	}
	return tx.Commit()
}

// LinkMap returns the stored adjacency as a source -> targets mapping,
// suitable for linkgraph.NewMatrix.
func (s *Store) LinkMap(direction wiki.LinkDirection) (map[string][]string, error) {
	rows, err := s.db.Query(
		`SELECT source, target FROM links WHERE direction = ? ORDER BY source, target`,
		string(direction),
	)
	if err != nil {
		return nil, fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	links := make(map[string][]string)
	for rows.Next() {
		var source, target string
		if err := rows.Scan(&source, &target); err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}
		links[source] = append(links[source], target)
	}
	return links, rows.Err()
}

// ExportText writes all stored article texts to w, each preceded by its
// title on a "= Title =" line, ordered by title.
func (s *Store) ExportText(w io.Writer) error {
	articles, err := s.ListArticles()
	if err != nil {
		return err
	}
	for _, a := range articles {
		if _, err := fmt.Fprintf(w, "= %s =\n\n%s\n\n", a.Title, a.Text); err != nil {
			return fmt.Errorf("writing article %q: %w", a.Title, err)
		}
	}
	return nil
}
