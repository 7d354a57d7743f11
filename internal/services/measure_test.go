package services

import (
	"campus-paths-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	from := domain.Point{X: 1000, Y: 1000}
	to := domain.Point{X: 1300, Y: 600}

	m := Measure(domain.UWProjection, from, to)

	assert.Equal(t, from, m.From)
	assert.Equal(t, to, m.To)
	assert.Equal(t, 500.0, m.PlanarLength)
	assert.Equal(t, domain.UWProjection.ToGeo(from), m.FromGeo)
	assert.Equal(t, domain.UWProjection.ToGeo(to), m.ToGeo)

	assert.InDelta(t, 319.55, m.GeoMeters, 0.01)
	assert.InDelta(t, Bearing(from, to), m.Bearing, 1e-12)
	assert.InDelta(t, m.Bearing, m.GeoBearing, 2)
}

func TestMeasureSamePoint(t *testing.T) {
	p := domain.Point{X: 42, Y: 42}
	m := Measure(domain.UWProjection, p, p)

	assert.Zero(t, m.PlanarLength)
	assert.Zero(t, m.GeoMeters)
}
