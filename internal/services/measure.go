package services

import (
	"campus-paths-service/internal/domain"
	"math"
)

// Measurement describes the straight line between two campus points.
type Measurement struct {
	From         domain.Point
	To           domain.Point
	FromGeo      domain.Coordinates
	ToGeo        domain.Coordinates
	PlanarLength float64
	GeoMeters    float64
	// Compass bearing using the campus axis convention, as in Narrate.
	Bearing float64
	// Initial great-circle bearing between the projected coordinates.
	GeoBearing float64
}

// Measure projects both points to latitude/longitude and reports planar and
// great-circle distances between them.
func Measure(proj domain.Projection, from, to domain.Point) Measurement {
	fromGeo := proj.ToGeo(from)
	toGeo := proj.ToGeo(to)

	return Measurement{
		From:         from,
		To:           to,
		FromGeo:      fromGeo,
		ToGeo:        toGeo,
		PlanarLength: math.Hypot(to.X-from.X, to.Y-from.Y),
		GeoMeters:    domain.HaversineMeters(fromGeo, toGeo),
		Bearing:      Bearing(from, to),
		GeoBearing:   domain.GeoBearing(fromGeo, toGeo),
	}
}
