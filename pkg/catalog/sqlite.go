package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

const schemaTemplates = `
CREATE TABLE IF NOT EXISTS templates (
    position INTEGER PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    category TEXT NOT NULL,
    width REAL NOT NULL,
    depth REAL NOT NULL,
    tooltip TEXT NOT NULL DEFAULT ''
);
`

const (
	selectTemplates = `SELECT name, category, width, depth, tooltip FROM templates ORDER BY position ASC`
	deleteTemplates = `DELETE FROM templates`
	insertTemplate  = `INSERT INTO templates (position, name, category, width, depth, tooltip) VALUES (?, ?, ?, ?, ?, ?)`
)

// OpenSQLite opens or creates a catalog database and ensures the schema exists.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}
	if _, err := db.Exec(schemaTemplates); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply catalog schema: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// SQLStore reads and writes catalogs in a SQL database.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps an open database handle.
func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

// Load reads every template ordered by position.
func (s *SQLStore) Load(ctx context.Context) (*Catalog, error) {
	rows, err := s.db.QueryContext(ctx, selectTemplates)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	c := New()
	for rows.Next() {
		var (
			name, category, tooltip string
			width, depth            float64
		)
		if err := rows.Scan(&name, &category, &width, &depth, &tooltip); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		cat, err := ParseCategory(category)
		if err != nil {
			return nil, err
		}
		t, err := NewTemplate(name, cat, geom.Size{W: width, H: depth}, tooltip)
		if err != nil {
			return nil, err
		}
		if err := c.Add(t); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return c, nil
}

// Save replaces the stored catalog with c in one transaction.
func (s *SQLStore) Save(ctx context.Context, c *Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteTemplates); err != nil {
		return fmt.Errorf("clear templates: %w", err)
	}
	for i, t := range c.Templates() {
		if _, err := tx.ExecContext(ctx, insertTemplate,
			i, t.Name, t.Category.String(), t.DefaultSize.W, t.DefaultSize.H, t.Tooltip,
		); err != nil {
			return fmt.Errorf("insert template %q: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog transaction: %w", err)
	}
	return nil
}
