// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sqlexec applies a generated seed script to a PostgreSQL
// database. The whole script runs inside one transaction so a failed
// statement leaves nothing behind.
package sqlexec

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"seedgen/cli/internal/logging"
)

const connectTimeout = 10 * time.Second

// Result summarizes a successful apply.
type Result struct {
	Duration time.Duration
	Bytes    int
}

// Apply connects with the given DSN and executes the script in a
// single transaction.
func Apply(ctx context.Context, dsn, script string) (*Result, error) {
	if strings.TrimSpace(script) == "" {
		return nil, fmt.Errorf("script is empty")
	}

	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := pgx.Connect(connCtx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %s", logging.Mask(err.Error()))
	}
	defer conn.Close(context.Background())

	start := time.Now()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(context.Background())

	if _, err := tx.Exec(ctx, script); err != nil {
		return nil, fmt.Errorf("script failed, transaction rolled back: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return &Result{Duration: time.Since(start), Bytes: len(script)}, nil
}

// Ping verifies that the DSN reaches a live database.
func Ping(ctx context.Context, dsn string) error {
	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := pgx.Connect(connCtx, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect: %s", logging.Mask(err.Error()))
	}
	defer conn.Close(context.Background())

	return conn.Ping(ctx)
}
