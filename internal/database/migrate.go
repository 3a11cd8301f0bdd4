package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Migrate creates the relational tables if they do not exist yet
func Migrate(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*User)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	return nil
}
