package migrations

import (
	"context"
	_ "embed"
	"fmt"

	"cinema-manager/pkg/database"
)

//go:embed schema.sql
var schema string

// Apply executes the embedded schema DDL. Every statement is written with
// IF NOT EXISTS so re-running on an existing database is a no-op.
func Apply(ctx context.Context, db database.PgxIface) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
