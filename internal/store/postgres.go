package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crumbwork/ladle/internal/recipe"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

// Postgres is a Store backed by a PostgreSQL database.
type Postgres struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgres creates an unopened Postgres store.
func NewPostgres(logger *slog.Logger) *Postgres {
	if logger == nil {
		logger = slog.Default()
	}
	return &Postgres{logger: logger}
}

// Open connects using the given DSN and runs pending migrations.
func (p *Postgres) Open(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open postgres database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping postgres database: %w", err)
	}

	if err := migrate(db, "postgres"); err != nil {
		_ = db.Close()
		return err
	}

	p.db = db
	p.logger.Debug("opened postgres store")
	return nil
}

// Close implements Store.
func (p *Postgres) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// Seed inserts recipes that are not already present. Returns the number of
// rows inserted.
func (p *Postgres) Seed(ctx context.Context, recipes []recipe.Recipe) (int, error) {
	if p.db == nil {
		return 0, fmt.Errorf("database not opened")
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for _, r := range recipes {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO recipes (id, label, source, url) VALUES ($1, $2, $3, $4)
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

// List implements Store.
func (p *Postgres) List(ctx context.Context, limit int) ([]recipe.Recipe, error) {
	if limit < 0 {
		return nil, fmt.Errorf("list: %w", recipe.ErrInvalidLimit)
	}

	rows, err := p.db.QueryContext(ctx,
		`SELECT id, label, source, url FROM recipes ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// Get implements Store.
func (p *Postgres) Get(ctx context.Context, id int64) (recipe.Recipe, error) {
	var r recipe.Recipe
	err := p.db.QueryRowContext(ctx,
		`SELECT id, label, source, url FROM recipes WHERE id = $1`, id,
	).Scan(&r.ID, &r.Label, &r.Source, &r.URL)

	if errors.Is(err, sql.ErrNoRows) {
		return recipe.Recipe{}, fmt.Errorf("get %d: %w", id, recipe.ErrNotFound)
	}
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}
	return r, nil
}

// Search implements Store.
func (p *Postgres) Search(ctx context.Context, keyword string, limit int) ([]recipe.Recipe, error) {
	if keyword == "" {
		return p.List(ctx, limit)
	}
	if limit < 0 {
		return nil, fmt.Errorf("search: %w", recipe.ErrInvalidLimit)
	}

	rows, err := p.db.QueryContext(ctx,
		`SELECT id, label, source, url FROM recipes
		 WHERE position(lower($1) IN lower(label)) > 0
		 ORDER BY id LIMIT $2`, keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}
