package sources

import (
	"bytes"
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlCampus struct {
	Buildings []struct {
		Short string  `yaml:"short"`
		Long  string  `yaml:"long"`
		X     float64 `yaml:"x"`
		Y     float64 `yaml:"y"`
	} `yaml:"buildings"`
	Paths []struct {
		X1       float64 `yaml:"x1"`
		Y1       float64 `yaml:"y1"`
		X2       float64 `yaml:"x2"`
		Y2       float64 `yaml:"y2"`
		Distance float64 `yaml:"distance"`
	} `yaml:"paths"`
}

// YAMLSource reads the whole campus dataset from one YAML document.
type YAMLSource struct {
	Path string
}

func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{Path: path}
}

func (s *YAMLSource) LoadCampus(ctx context.Context) (*ports.CampusData, error) {
	if s.Path == "" {
		return nil, errors.New("load yaml campus: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load yaml campus: read %q: %w", s.Path, err)
	}

	data, err := ParseCampusYAML(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("load yaml campus: %q: %w", s.Path, err)
	}
	return data, nil
}

// ParseCampusYAML decodes a campus document. Unknown keys are rejected.
func ParseCampusYAML(r io.Reader) (*ports.CampusData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlCampus
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	data := &ports.CampusData{
		Buildings: make([]domain.Building, 0, len(doc.Buildings)),
		Paths:     make([]ports.PathRecord, 0, len(doc.Paths)),
	}
	for _, b := range doc.Buildings {
		data.Buildings = append(data.Buildings, domain.Building{
			ShortName: b.Short,
			LongName:  b.Long,
			Location:  domain.Point{X: b.X, Y: b.Y},
		})
	}
	for _, p := range doc.Paths {
		data.Paths = append(data.Paths, ports.PathRecord{
			Start:    domain.Point{X: p.X1, Y: p.Y1},
			End:      domain.Point{X: p.X2, Y: p.Y2},
			Distance: p.Distance,
		})
	}

	return data, nil
}
