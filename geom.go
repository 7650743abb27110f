package spherical

import (
	"math"

	"github.com/twpayne/go-geom"
)

// PathFromCoords converts geom coordinates to a path. Coordinates follow the
// geojson order, [long, lat].
func PathFromCoords(coords []geom.Coord) []LatLng {
	path := make([]LatLng, len(coords))
	for i, c := range coords {
		path[i] = LatLng{Lat: c.Y(), Lng: c.X()}
	}
	return path
}

// LineStringLength returns the length of the line string on Earth (meters).
func LineStringLength(ls *geom.LineString) float64 {
	return Length(PathFromCoords(ls.Coords()))
}

// PolygonArea returns the area of the polygon on Earth (meters-squared). The
// first ring is the outer boundary and every other ring is a hole that is
// subtracted, whatever its orientation.
func PolygonArea(p *geom.Polygon) float64 {
	var area float64
	for i := 0; i < p.NumLinearRings(); i++ {
		// The closing coordinate repeats the first one and adds an empty
		// edge, so rings don't need trimming.
		a := Area(PathFromCoords(p.LinearRing(i).Coords()))
		if i == 0 {
			area = a
		} else {
			area -= a
		}
	}
	return math.Max(area, 0)
}
