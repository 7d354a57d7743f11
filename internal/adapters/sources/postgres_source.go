package sources

import (
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresSource reads campus geometry from the campus_buildings and
// campus_paths tables. Rows are read in insertion order so the resulting
// graph adjacency is stable across restarts.
type PostgresSource struct {
	DB *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{DB: db}
}

func (s *PostgresSource) LoadCampus(ctx context.Context) (*ports.CampusData, error) {
	if s.DB == nil {
		return nil, errors.New("load postgres campus: db is nil")
	}

	buildings, err := s.listBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load postgres campus: %w", err)
	}

	paths, err := s.listPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("load postgres campus: %w", err)
	}

	return &ports.CampusData{Buildings: buildings, Paths: paths}, nil
}

func (s *PostgresSource) listBuildings(ctx context.Context) ([]domain.Building, error) {
	q := `
	SELECT short_name, long_name, x, y
	FROM campus_buildings
	ORDER BY ord;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list buildings: query campus_buildings table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Building, 0, 64)
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(&b.ShortName, &b.LongName, &b.Location.X, &b.Location.Y); err != nil {
			return nil, fmt.Errorf("list buildings: scan row: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list buildings: row iteration: %w", err)
	}

	return out, nil
}

func (s *PostgresSource) listPaths(ctx context.Context) ([]ports.PathRecord, error) {
	q := `
	SELECT x1, y1, x2, y2, distance
	FROM campus_paths
	ORDER BY path_id;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list paths: query campus_paths table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.PathRecord, 0, 256)
	for rows.Next() {
		var p ports.PathRecord
		if err := rows.Scan(&p.Start.X, &p.Start.Y, &p.End.X, &p.End.Y, &p.Distance); err != nil {
			return nil, fmt.Errorf("list paths: scan row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list paths: row iteration: %w", err)
	}

	return out, nil
}
