package domain

// Represents a named campus building.
// ShortName is the case-sensitive identifier used in queries; LongName is
// the display name and may be empty.
type Building struct {
	ShortName string
	LongName  string
	Location  Point
}
