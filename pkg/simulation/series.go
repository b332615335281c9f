package simulation

import "math"

const projectionHours = 24

type Point struct {
	Hour int     `json:"hour"`
	KWH  float64 `json:"kwh"`
}

// HourlyProjection reshapes a total daily output into a 24 point
// sin² curve for charting. Purely illustrative, not a forecast: the
// curve is zero at hour 0 and peaks at the full total at hour 12.
func HourlyProjection(total float64) []Point {
	points := make([]Point, projectionHours)
	for h := range points {
		s := math.Sin(math.Pi * float64(h) / projectionHours)
		points[h] = Point{Hour: h, KWH: total * s * s}
	}
	return points
}
