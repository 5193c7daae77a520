package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func createTables(ctx context.Context, schema string) error {
	connURL, err := connString()
	if err != nil {
		return err
	}

	conn, err := pgx.Connect(ctx, connURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer conn.Close(ctx)

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	if _, err = conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create DB schema: %w", err)
	}
	return nil
}
