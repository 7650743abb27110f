package spherical

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// LatLng is a point on the sphere, in degrees.
//
// The values are not validated or normalized. A latitude outside of
// [-90,+90] is accepted and simply produces whatever the formulas yield.
type LatLng struct {
	Lat float64
	Lng float64
}

func (ll LatLng) String() string {
	return fmt.Sprintf("(%f, %f)", ll.Lat, ll.Lng)
}

// S2 returns the point as a s2.LatLng.
func (ll LatLng) S2() s2.LatLng {
	return s2.LatLngFromDegrees(ll.Lat, ll.Lng)
}

// LatLngFromS2 converts a s2.LatLng.
func LatLngFromS2(ll s2.LatLng) LatLng {
	return LatLng{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
}

// LatLngFromPoint converts a s2.Point, a unit vector, to degrees.
func LatLngFromPoint(p s2.Point) LatLng {
	return LatLngFromS2(s2.LatLngFromPoint(p))
}
