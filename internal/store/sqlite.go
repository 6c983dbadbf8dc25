package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crumbwork/ladle/internal/recipe"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// SQLite is a Store backed by a SQLite database.
type SQLite struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLite creates an unopened SQLite store.
func NewSQLite(logger *slog.Logger) *SQLite {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLite{logger: logger}
}

// Open opens the database at path and runs pending migrations.
// Use ":memory:" for an in-memory database.
func (s *SQLite) Open(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := migrate(db, "sqlite"); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	s.path = path
	s.logger.Debug("opened sqlite store", "path", path)
	return nil
}

// Close implements Store.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Seed inserts recipes that are not already present. Returns the number of
// rows inserted; re-seeding the same data is a no-op.
func (s *SQLite) Seed(ctx context.Context, recipes []recipe.Recipe) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database not opened")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for _, r := range recipes {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO recipes (id, label, source, url) VALUES (?, ?, ?, ?)
			 ON CONFLICT (id) DO NOTHING`,
			r.ID, r.Label, r.Source, r.URL,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to seed recipe %d: %w", r.ID, err)
		}
		n, _ := res.RowsAffected()
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return inserted, nil
}

// List implements Store. Collection order is id order, matching the order
// records were seeded in.
func (s *SQLite) List(ctx context.Context, limit int) ([]recipe.Recipe, error) {
	if limit < 0 {
		return nil, fmt.Errorf("list: %w", recipe.ErrInvalidLimit)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, source, url FROM recipes ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// Get implements Store.
func (s *SQLite) Get(ctx context.Context, id int64) (recipe.Recipe, error) {
	var r recipe.Recipe
	err := s.db.QueryRowContext(ctx,
		`SELECT id, label, source, url FROM recipes WHERE id = ?`, id,
	).Scan(&r.ID, &r.Label, &r.Source, &r.URL)

	if errors.Is(err, sql.ErrNoRows) {
		return recipe.Recipe{}, fmt.Errorf("get %d: %w", id, recipe.ErrNotFound)
	}
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}
	return r, nil
}

// Search implements Store. instr avoids LIKE wildcard escaping for keywords
// containing % or _.
func (s *SQLite) Search(ctx context.Context, keyword string, limit int) ([]recipe.Recipe, error) {
	if keyword == "" {
		return s.List(ctx, limit)
	}
	if limit < 0 {
		return nil, fmt.Errorf("search: %w", recipe.ErrInvalidLimit)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, source, url FROM recipes
		 WHERE instr(lower(label), lower(?)) > 0
		 ORDER BY id LIMIT ?`, keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// scanRecipes collects rows into a recipe slice.
func scanRecipes(rows *sql.Rows) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	for rows.Next() {
		var r recipe.Recipe
		if err := rows.Scan(&r.ID, &r.Label, &r.Source, &r.URL); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}
	return recipes, nil
}
