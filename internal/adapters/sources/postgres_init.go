package sources

import (
	"campus-paths-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres campus schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createBuildingsQuery := `
	CREATE TABLE IF NOT EXISTS campus_buildings (
		short_name TEXT PRIMARY KEY,
		long_name TEXT NOT NULL DEFAULT '',
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL,
		ord INTEGER NOT NULL UNIQUE
	);
	`

	createPathsQuery := `
	CREATE TABLE IF NOT EXISTS campus_paths (
		path_id INTEGER PRIMARY KEY,
		x1 DOUBLE PRECISION NOT NULL,
		y1 DOUBLE PRECISION NOT NULL,
		x2 DOUBLE PRECISION NOT NULL,
		y2 DOUBLE PRECISION NOT NULL,
		distance DOUBLE PRECISION NOT NULL CHECK (distance >= 0)
	);
	`

	statements := []string{
		createBuildingsQuery,
		createPathsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the campus tables' contents with data, preserving record order.
func SeedCampus(ctx context.Context, db *sql.DB, data *ports.CampusData) error {
	if db == nil {
		return errors.New("seed campus: DB is nil")
	}
	if data == nil {
		return errors.New("seed campus: data is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed campus: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"campus_paths", "campus_buildings"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+";"); err != nil {
			return fmt.Errorf("seed campus: clear %s: %w", table, err)
		}
	}

	bstmt, err := tx.PrepareContext(ctx, `
	INSERT INTO campus_buildings (short_name, long_name, x, y, ord)
	VALUES ($1, $2, $3, $4, $5);
	`)
	if err != nil {
		return fmt.Errorf("seed campus: prepare building insert: %w", err)
	}
	defer bstmt.Close()

	for i, b := range data.Buildings {
		if _, err := bstmt.ExecContext(ctx, b.ShortName, b.LongName, b.Location.X, b.Location.Y, i+1); err != nil {
			return fmt.Errorf("seed campus: insert building %q: %w", b.ShortName, err)
		}
	}

	pstmt, err := tx.PrepareContext(ctx, `
	INSERT INTO campus_paths (path_id, x1, y1, x2, y2, distance)
	VALUES ($1, $2, $3, $4, $5, $6);
	`)
	if err != nil {
		return fmt.Errorf("seed campus: prepare path insert: %w", err)
	}
	defer pstmt.Close()

	for i, p := range data.Paths {
		if _, err := pstmt.ExecContext(ctx, i+1, p.Start.X, p.Start.Y, p.End.X, p.End.Y, p.Distance); err != nil {
			return fmt.Errorf("seed campus: insert path at index %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed campus: commit tx: %w", err)
	}

	return nil
}
