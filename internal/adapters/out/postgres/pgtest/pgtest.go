// Package pgtest starts a migrated PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"time"

	adapter "cafeteria/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Database is a running container with the schema applied.
type Database struct {
	Container *postgres.PostgresContainer
	DSN       string
	*adapter.Connections
}

// Start runs postgres:15-alpine, connects and applies the migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	conns, err := adapter.Open(ctx, dsn, adapter.DefaultPoolConfig())
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := adapter.Migrate(conns.SQL); err != nil {
		_ = conns.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DSN: dsn, Connections: conns}, nil
}

// Truncate empties every table and resets the id sequences.
func (d *Database) Truncate(ctx context.Context) error {
	_, err := d.SQL.ExecContext(ctx,
		"TRUNCATE TABLE order_lines, orders, products, users RESTART IDENTITY CASCADE")
	return err
}

// Stop closes the pool and removes the container.
func (d *Database) Stop(ctx context.Context) error {
	_ = d.Close()
	return d.Container.Terminate(ctx)
}
