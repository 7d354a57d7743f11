package services

import (
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/ports"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CampusMap is the immutable building registry plus the walkable graph.
// Building nodes use the building short name as their node id.
type CampusMap struct {
	graph     *domain.Graph
	buildings []domain.Building
	byShort   map[string]int
}

// BuildCampus turns raw campus records into a CampusMap.
//
// Buildings become named nodes. A path endpoint that is not the location of an
// already-known node becomes an intersection node. Every path record adds one
// directed edge; sources list both directions where a walkway is two-way.
// Buildings sharing a location are linked by zero-cost edges in both
// directions. The first invalid record aborts the build.
func BuildCampus(data *ports.CampusData) (*CampusMap, error) {
	if data == nil {
		return nil, errors.New("build campus: data is nil")
	}

	b := domain.NewGraphBuilder()
	cm := &CampusMap{
		buildings: make([]domain.Building, 0, len(data.Buildings)),
		byShort:   make(map[string]int, len(data.Buildings)),
	}

	for i, bldg := range data.Buildings {
		short := strings.TrimSpace(bldg.ShortName)
		if short == "" {
			return nil, fmt.Errorf("build campus: building at index %d: short name cannot be empty", i+1)
		}
		if strings.HasPrefix(short, intersectionPrefix) {
			return nil, fmt.Errorf("build campus: building %q: short name must not start with %q", short, intersectionPrefix)
		}

		// A co-located building is reachable at no cost from the first one.
		colocated, hasColocated := b.NodeAt(bldg.Location)

		if err := b.AddNode(short, bldg.Location, bldg.LongName); err != nil {
			return nil, fmt.Errorf("build campus: %w", err)
		}

		if hasColocated {
			if err := b.AddEdge(colocated.ID, short, 0); err != nil {
				return nil, fmt.Errorf("build campus: %w", err)
			}
			if err := b.AddEdge(short, colocated.ID, 0); err != nil {
				return nil, fmt.Errorf("build campus: %w", err)
			}
		}

		cm.byShort[short] = len(cm.buildings)
		cm.buildings = append(cm.buildings, domain.Building{
			ShortName: short,
			LongName:  bldg.LongName,
			Location:  bldg.Location,
		})
	}

	for i, p := range data.Paths {
		from, err := endpoint(b, p.Start)
		if err != nil {
			return nil, fmt.Errorf("build campus: path at index %d: %w", i+1, err)
		}
		to, err := endpoint(b, p.End)
		if err != nil {
			return nil, fmt.Errorf("build campus: path at index %d: %w", i+1, err)
		}

		if err := b.AddEdge(from, to, p.Distance); err != nil {
			return nil, fmt.Errorf("build campus: path at index %d: %w", i+1, err)
		}
	}

	cm.graph = b.Build()
	return cm, nil
}

const intersectionPrefix = "@"

// endpoint returns the id of the node at loc, adding an intersection node
// when none exists yet.
func endpoint(b *domain.GraphBuilder, loc domain.Point) (string, error) {
	if n, ok := b.NodeAt(loc); ok {
		return n.ID, nil
	}

	id := intersectionID(loc)
	if err := b.AddNode(id, loc, ""); err != nil {
		return "", err
	}
	return id, nil
}

func intersectionID(p domain.Point) string {
	return intersectionPrefix +
		strconv.FormatFloat(p.X, 'g', -1, 64) + "," +
		strconv.FormatFloat(p.Y, 'g', -1, 64)
}

func (c *CampusMap) Graph() *domain.Graph { return c.graph }

// Buildings returns every building in load order.
func (c *CampusMap) Buildings() []domain.Building {
	out := make([]domain.Building, len(c.buildings))
	copy(out, c.buildings)
	return out
}

func (c *CampusMap) Building(short string) (domain.Building, bool) {
	i, ok := c.byShort[short]
	if !ok {
		return domain.Building{}, false
	}
	return c.buildings[i], true
}

func (c *CampusMap) HasBuilding(short string) bool {
	_, ok := c.byShort[short]
	return ok
}
