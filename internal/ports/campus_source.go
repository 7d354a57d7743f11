package ports

import (
	"campus-paths-service/internal/domain"
	"context"
)

// A walkable path between two campus points. Distance is in feet and the
// record describes one direction of travel only.
type PathRecord struct {
	Start    domain.Point
	End      domain.Point
	Distance float64
}

// Raw campus geometry as read from a data source, in source order.
type CampusData struct {
	Buildings []domain.Building
	Paths     []PathRecord
}

// Port: a boundary for loading static campus geometry.
type CampusSource interface {
	// Read every building and path record. Called once at startup.
	LoadCampus(ctx context.Context) (*CampusData, error)
}
