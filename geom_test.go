package spherical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestPathFromCoords(t *testing.T) {
	path := PathFromCoords([]geom.Coord{{-122.082506, 37.4249518}, {2.35, 48.85}})
	require.Equal(t, []LatLng{
		{Lat: 37.4249518, Lng: -122.082506},
		{Lat: 48.85, Lng: 2.35},
	}, path)
	require.Empty(t, PathFromCoords(nil))
}

func TestLineStringLength(t *testing.T) {
	ls := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {0, 90}, {90, 0}})
	require.InDelta(t, math.Pi*EarthRadius, LineStringLength(ls), 1e-6)

	ls = geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {0.1, 0.1}})
	require.InDelta(t, 0.1*radians*math.Sqrt2*EarthRadius, LineStringLength(ls), 1)
}

func TestPolygonArea(t *testing.T) {
	// a 1° square on the equator
	outer := []geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	p := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{outer})
	square := PolygonArea(p)
	require.InDelta(t, Area(PathFromCoords(outer)), square, 1e-6)
	// close to the planar approximation at this size
	side := radians * EarthRadius
	require.InEpsilon(t, side*side, square, 1e-3)

	// the hole is clockwise, its orientation must not matter
	hole := []geom.Coord{{0.25, 0.25}, {0.25, 0.75}, {0.75, 0.75}, {0.75, 0.25}, {0.25, 0.25}}
	p = geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{outer, hole})
	require.InDelta(t, square-Area(PathFromCoords(hole)), PolygonArea(p), 1e-6)
	require.InEpsilon(t, 0.75*square, PolygonArea(p), 1e-3)

	require.Equal(t, 0.0, PolygonArea(geom.NewPolygon(geom.XY)))
}
