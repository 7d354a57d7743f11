package domain

// Point is a location in the planar campus coordinate system.
// The Y axis grows downward (south), so a smaller Y is further north.
type Point struct {
	X float64
	Y float64
}

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lat, lng] for map client compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lat, c.Lng} }

// Projection is the fixed affine mapping between campus coordinates and
// latitude/longitude:
//
//	lat = Lat0 + (y - LatOffset) * LatScale
//	lng = Lng0 + (x - LngOffset) * LngScale
type Projection struct {
	Lat0      float64
	LatOffset float64
	LatScale  float64
	Lng0      float64
	LngOffset float64
	LngScale  float64
}

// UWProjection maps the University of Washington campus dataset.
var UWProjection = Projection{
	Lat0:      47.65878405511131,
	LatOffset: 807.35188,
	LatScale:  -0.00000576766,
	Lng0:      -122.31305164734569,
	LngOffset: 1370.6408,
	LngScale:  0.00000848028,
}

func (p Projection) ToGeo(pt Point) Coordinates {
	return Coordinates{
		Lat: p.Lat0 + (pt.Y-p.LatOffset)*p.LatScale,
		Lng: p.Lng0 + (pt.X-p.LngOffset)*p.LngScale,
	}
}

// ToPlanar solves the affine mapping for x and y. Scales must be non-zero.
func (p Projection) ToPlanar(c Coordinates) Point {
	return Point{
		X: (c.Lng-p.Lng0)/p.LngScale + p.LngOffset,
		Y: (c.Lat-p.Lat0)/p.LatScale + p.LatOffset,
	}
}
