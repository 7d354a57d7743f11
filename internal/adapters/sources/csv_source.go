package sources

import (
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/ports"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CSVSource reads the campus dataset from two CSV files with header rows:
//
//	buildings: shortName,longName,x,y
//	paths:     x1,y1,x2,y2,distance
type CSVSource struct {
	BuildingsPath string
	PathsPath     string
}

func NewCSVSource(buildingsPath, pathsPath string) *CSVSource {
	return &CSVSource{BuildingsPath: buildingsPath, PathsPath: pathsPath}
}

func (s *CSVSource) LoadCampus(ctx context.Context) (*ports.CampusData, error) {
	if s.BuildingsPath == "" || s.PathsPath == "" {
		return nil, errors.New("load csv campus: buildings and paths file paths are required")
	}

	var data ports.CampusData
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		f, err := os.Open(s.BuildingsPath)
		if err != nil {
			return fmt.Errorf("open %q: %w", s.BuildingsPath, err)
		}
		defer f.Close()

		data.Buildings, err = ParseBuildingsCSV(f)
		if err != nil {
			return fmt.Errorf("parse %q: %w", s.BuildingsPath, err)
		}
		return nil
	})

	g.Go(func() error {
		f, err := os.Open(s.PathsPath)
		if err != nil {
			return fmt.Errorf("open %q: %w", s.PathsPath, err)
		}
		defer f.Close()

		data.Paths, err = ParsePathsCSV(f)
		if err != nil {
			return fmt.Errorf("parse %q: %w", s.PathsPath, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load csv campus: %w", err)
	}

	return &data, nil
}

// ParseBuildingsCSV reads shortName,longName,x,y rows after a header row.
func ParseBuildingsCSV(r io.Reader) ([]domain.Building, error) {
	rows, err := readRows(r, 4)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Building, 0, len(rows))
	for i, row := range rows {
		x, err := parseCoord(row[2])
		if err != nil {
			return nil, fmt.Errorf("building row %d: x: %w", i+1, err)
		}
		y, err := parseCoord(row[3])
		if err != nil {
			return nil, fmt.Errorf("building row %d: y: %w", i+1, err)
		}

		out = append(out, domain.Building{
			ShortName: strings.TrimSpace(row[0]),
			LongName:  strings.TrimSpace(row[1]),
			Location:  domain.Point{X: x, Y: y},
		})
	}
	return out, nil
}

// ParsePathsCSV reads x1,y1,x2,y2,distance rows after a header row.
func ParsePathsCSV(r io.Reader) ([]ports.PathRecord, error) {
	rows, err := readRows(r, 5)
	if err != nil {
		return nil, err
	}

	out := make([]ports.PathRecord, 0, len(rows))
	for i, row := range rows {
		vals := make([]float64, 5)
		for j := range vals {
			v, err := parseCoord(row[j])
			if err != nil {
				return nil, fmt.Errorf("path row %d column %d: %w", i+1, j+1, err)
			}
			vals[j] = v
		}

		out = append(out, ports.PathRecord{
			Start:    domain.Point{X: vals[0], Y: vals[1]},
			End:      domain.Point{X: vals[2], Y: vals[3]},
			Distance: vals[4],
		})
	}
	return out, nil
}

func readRows(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("read csv: missing header row")
	}
	return rows[1:], nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
