package dto

type PathRequest struct {
	Src  string `validate:"required"`
	Dest string `validate:"required"`
}

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SegmentResponse struct {
	Start PointResponse `json:"start"`
	End   PointResponse `json:"end"`
	Cost  float64       `json:"cost"`
}

// PathResponse keeps the field names the campus map client reads:
// "cost" is the total in feet and "path" the ordered segments.
type PathResponse struct {
	Start      PointResponse     `json:"start"`
	Cost       float64           `json:"cost"`
	Path       []SegmentResponse `json:"path"`
	Directions string            `json:"directions"`
	Distance   string            `json:"distance"`
}

type MeasureRequest struct {
	X1 string `validate:"required"`
	Y1 string `validate:"required"`
	X2 string `validate:"required"`
	Y2 string `validate:"required"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MeasureResponse struct {
	From         PointResponse       `json:"from"`
	To           PointResponse       `json:"to"`
	FromGeo      CoordinatesResponse `json:"from_geo"`
	ToGeo        CoordinatesResponse `json:"to_geo"`
	PlanarLength float64             `json:"planar_length"`
	GeoMeters    float64             `json:"geo_meters"`
	Bearing      float64             `json:"bearing"`
	GeoBearing   float64             `json:"geo_bearing"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Invalid []string `json:"invalid,omitempty"`
}
