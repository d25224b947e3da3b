package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id SERIAL PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		category INTEGER NOT NULL REFERENCES categories(id),
		difficulty INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS questions_category_idx ON questions (category)`,
}

// Execer runs a statement; *pgxpool.Pool satisfies it
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Migrate creates the trivia tables if they do not exist yet
func Migrate(ctx context.Context, db Execer) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
