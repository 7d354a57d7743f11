package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionRoundTrip(t *testing.T) {
	points := []Point{
		{0, 0},
		{1370.6408, 807.35188},
		{2259.7112, 1715.5273},
		{4000, 4000},
		{-250.5, 3999.125},
		{1e-7, 0.333333333},
	}

	for _, p := range points {
		got := UWProjection.ToPlanar(UWProjection.ToGeo(p))
		assert.InDelta(t, p.X, got.X, 1e-9*math.Max(1, math.Abs(p.X)), "x for %v", p)
		assert.InDelta(t, p.Y, got.Y, 1e-9*math.Max(1, math.Abs(p.Y)), "y for %v", p)
	}
}

func TestProjectionToGeoAtOffsets(t *testing.T) {
	// The offsets map exactly onto the reference latitude and longitude.
	got := UWProjection.ToGeo(Point{X: 1370.6408, Y: 807.35188})

	assert.Equal(t, 47.65878405511131, got.Lat)
	assert.Equal(t, -122.31305164734569, got.Lng)
}

func TestProjectionOrientation(t *testing.T) {
	origin := UWProjection.ToGeo(Point{X: 1000, Y: 1000})
	south := UWProjection.ToGeo(Point{X: 1000, Y: 1100})
	east := UWProjection.ToGeo(Point{X: 1100, Y: 1000})

	// Y grows southward and X grows eastward.
	assert.Less(t, south.Lat, origin.Lat)
	assert.Greater(t, east.Lng, origin.Lng)
}

func TestCoordsToList(t *testing.T) {
	c := Coordinates{Lat: 47.6, Lng: -122.3}
	require.Equal(t, []float64{47.6, -122.3}, c.CoordsToList())
}

func TestHaversineMeters(t *testing.T) {
	a := Coordinates{Lat: 47.6553, Lng: -122.3035}

	assert.Zero(t, HaversineMeters(a, a))

	// One degree of latitude on the mean sphere.
	oneDeg := HaversineMeters(Coordinates{Lat: 0, Lng: 0}, Coordinates{Lat: 1, Lng: 0})
	assert.InDelta(t, EarthRadiusMeters*math.Pi/180, oneDeg, 1e-6)

	b := Coordinates{Lat: 47.6597, Lng: -122.3086}
	assert.InDelta(t, HaversineMeters(a, b), HaversineMeters(b, a), 1e-9)
	// Roughly 600 m across campus.
	assert.InDelta(t, 620, HaversineMeters(a, b), 60)
}

func TestGeoBearing(t *testing.T) {
	origin := Coordinates{Lat: 0, Lng: 0}

	assert.InDelta(t, 0, GeoBearing(origin, Coordinates{Lat: 1, Lng: 0}), 1e-9)
	assert.InDelta(t, 90, GeoBearing(origin, Coordinates{Lat: 0, Lng: 1}), 1e-9)
	assert.InDelta(t, 180, GeoBearing(origin, Coordinates{Lat: -1, Lng: 0}), 1e-9)
	assert.InDelta(t, 270, GeoBearing(origin, Coordinates{Lat: 0, Lng: -1}), 1e-9)
}
