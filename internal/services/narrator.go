package services

import (
	"campus-paths-service/internal/domain"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	inchesPerFoot  = 12
	metersPerInch  = 0.0254
	stepPrecision  = 0
	totalPrecision = 1
)

// Narrate renders a path as numbered walking directions.
//
//	Directions:
//	1. Walk 366 m, bearing 0 degrees
//	Arrived at destination.
//
// Segment costs are feet; distances are printed in meters.
func Narrate(path domain.Path) string {
	var b strings.Builder
	b.WriteString("Directions:\n")

	for i, s := range path.Segments {
		meters := RoundHalfAway(FeetToMeters(s.Cost), stepPrecision)
		bearing := RoundHalfAway(Bearing(s.Start, s.End), stepPrecision)
		// 359.5 and above rounds onto North.
		if bearing >= 360 {
			bearing -= 360
		}

		fmt.Fprintf(&b, "%d. Walk %s m, bearing %s degrees\n",
			i+1,
			strconv.FormatFloat(meters, 'f', stepPrecision, 64),
			strconv.FormatFloat(bearing, 'f', stepPrecision, 64),
		)
	}

	b.WriteString("Arrived at destination.\n")
	return b.String()
}

// SummarizeDistance formats a total cost in feet as meters to one decimal.
func SummarizeDistance(totalFeet float64) string {
	meters := RoundHalfAway(FeetToMeters(totalFeet), totalPrecision)
	return "Total distance: " + strconv.FormatFloat(meters, 'f', totalPrecision, 64) + " m"
}

// Bearing returns the compass bearing from start to end in degrees clockwise
// from North. Campus Y grows southward, hence the y1 - y2 term.
func Bearing(start, end domain.Point) float64 {
	angle := math.Atan2(start.Y-end.Y, end.X-start.X)
	bearing := math.Mod(450-angle*180/math.Pi, 360)
	if bearing < 0 {
		bearing += 360
	}
	return bearing
}

func FeetToMeters(feet float64) float64 {
	return feet * inchesPerFoot * metersPerInch
}

// RoundHalfAway rounds to the given number of decimal places, with ties
// rounded away from zero.
func RoundHalfAway(value float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(value*scale) / scale
}
