package domain

import (
	"errors"
	"fmt"
	"math"
)

// Represents a single traversed edge of a route.
type Segment struct {
	Start Point
	End   Point
	Cost  float64
}

// Represents an ordered chain of segments from a start point.
// Each segment's End equals the next segment's Start, and TotalCost is the
// sum of segment costs. A Path with no segments is a valid zero-cost route
// from Start to itself.
type Path struct {
	Start     Point
	Segments  []Segment
	TotalCost float64
}

// End returns the last point reached by the path.
func (p Path) End() Point {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].End
}

// Validate checks the chain invariant and the aggregate cost.
func (p Path) Validate() error {
	cur := p.Start
	sum := 0.0
	for i, s := range p.Segments {
		if s.Start != cur {
			return fmt.Errorf("validate path: segment %d starts at %v, want %v", i+1, s.Start, cur)
		}
		if s.Cost < 0 || math.IsNaN(s.Cost) || math.IsInf(s.Cost, 0) {
			return fmt.Errorf("validate path: segment %d: %w: %v", i+1, ErrInvalidCost, s.Cost)
		}
		sum += s.Cost
		cur = s.End
	}
	if sum != p.TotalCost {
		return errors.New("validate path: total cost does not match segment sum")
	}
	return nil
}

// Represents a resolved building-to-building route along with its
// human-readable narration. It is immutable query output.
type Route struct {
	From       string
	To         string
	Path       Path
	Directions string
	Summary    string
}
