// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.

package spherical

import "math"

// Earth is a pre-initialized sphere of EarthRadius.
var Earth = NewSphere(EarthRadius)

// Sphere is an object for performing geodesic operations on a sphere.
type Sphere struct {
	radius float64
}

// NewSphere initializes a new sphere.
//
// Param radius is the radius of the sphere (meters).
//
// The Earth package-level variable is a pre-initialized sphere representing
// Earth.
func NewSphere(radius float64) *Sphere {
	return &Sphere{radius: radius}
}

// Radius of the Sphere
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Offset returns the point reached by travelling distance meters from the
// origin in the given heading (degrees clockwise from north).
func (s *Sphere) Offset(from LatLng, distance, heading float64) LatLng {
	return destination(s.radius, from, distance, heading)
}

// OffsetOrigin returns the origin that reaches the destination to after
// travelling distance meters in the given heading. The bool is false when
// there is no such origin.
func (s *Sphere) OffsetOrigin(to LatLng, distance, heading float64) (LatLng, bool) {
	return origin(s.radius, to, distance, heading)
}

// Distance returns the great circle distance between two points (meters).
func (s *Sphere) Distance(from, to LatLng) float64 {
	return AngleBetween(from, to) * s.radius
}

// Length returns the length of the path (meters).
func (s *Sphere) Length(path []LatLng) float64 {
	if len(path) < 2 {
		return 0
	}
	var length float64
	prevLat := path[0].Lat * radians
	prevLng := path[0].Lng * radians
	for _, p := range path[1:] {
		lat := p.Lat * radians
		lng := p.Lng * radians
		length += distanceRadians(prevLat, prevLng, lat, lng)
		prevLat = lat
		prevLng = lng
	}
	return length * s.radius
}

// Area returns the area of the closed path (meters-squared).
func (s *Sphere) Area(path []LatLng) float64 {
	return math.Abs(s.SignedArea(path))
}

// SignedArea returns the signed area of the closed path (meters-squared).
// Counter-clockwise paths are positive.
func (s *Sphere) SignedArea(path []LatLng) float64 {
	return signedArea(path) * s.radius * s.radius
}

// Inverse solves the inverse geodesic problem.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Out param s12 is a pointer to the distance from point 1 to point 2 (meters).
// Out param azi1 is a pointer to the azimuth at point 1 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// The values of azi1 and azi2 returned are in the range [-180,+180).
// Any of the "return" arguments, s12, etc., may be replaced with nil, if you
// do not need some quantities computed.
func (s *Sphere) Inverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2 *float64,
) {
	p1 := LatLng{Lat: lat1, Lng: lon1}
	p2 := LatLng{Lat: lat2, Lng: lon2}
	if s12 != nil {
		*s12 = s.Distance(p1, p2)
	}
	if azi1 != nil {
		*azi1 = Heading(p1, p2)
	}
	if azi2 != nil {
		*azi2 = wrap(Heading(p2, p1)+180, -180, 180)
	}
}

// Direct solves the direct geodesic problem.
//
// Param lat1 is the latitude of point 1 (degrees).
// Param lon1 is the longitude of point 1 (degrees).
// Param azi1 is the azimuth at point 1 (degrees).
// Param s12 is the distance from point 1 to point 2 (meters). negative is ok.
// Out param lat2 is a pointer to the latitude of point 2 (degrees).
// Out param lon2 is a pointer to the longitude of point 2 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// The values of lon2 and azi2 returned are in the range [-180,+180).
// Any of the "return" arguments, lat2, etc., may be replaced with nil, if you
// do not need some quantities computed.
func (s *Sphere) Direct(
	lat1, lon1, azi1, s12 float64,
	lat2, lon2, azi2 *float64,
) {
	p1 := LatLng{Lat: lat1, Lng: lon1}
	p2 := s.Offset(p1, s12, azi1)
	if lat2 != nil {
		*lat2 = p2.Lat
	}
	if lon2 != nil {
		*lon2 = wrap(p2.Lng, -180, 180)
	}
	if azi2 != nil {
		*azi2 = wrap(Heading(p2, p1)+180, -180, 180)
	}
}

// Polygon struct for accumulating information about a polygon on the sphere.
// Used for computing the perimeter and area of a polygon.
// This must be initialized from Sphere.PolygonInit before use.
type Polygon struct {
	s        *Sphere
	polyline bool
	points   []LatLng
}

// PolygonInit initializes a polygon.
// Param polyline for polyline instead of a polygon.
//
// If polyline is not set, then the sequence of vertices and edges added by
// Polygon.AddPoint() and Polygon.AddEdge() define a polygon and
// the perimeter and area are returned by Polygon.Compute().
// If polyline is set, then the vertices and edges define a polyline and
// only the perimeter is returned by Polygon.Compute().
func (s *Sphere) PolygonInit(polyline bool) Polygon {
	return Polygon{s: s, polyline: polyline}
}

// AddPoint adds a point to the polygon or polyline.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Polygon) AddPoint(lat, lon float64) {
	p.points = append(p.points, LatLng{Lat: lat, Lng: lon})
}

// AddEdge adds an edge to the polygon or polyline.
// It does nothing if no points have been added yet.
//
// Param azi is the azimuth at current point (degrees).
// Param s is the distance from current point to next point (meters).
func (p *Polygon) AddEdge(azi, s float64) {
	if len(p.points) == 0 {
		return
	}
	last := p.points[len(p.points)-1]
	p.points = append(p.points, p.s.Offset(last, s, azi))
}

// Compute the results for a polygon
//
// Param clockwise, if set then clockwise (instead of
//   counter-clockwise) traversal counts as a positive area.
// Param sign, if set then return a signed result for the area if
//   the polygon is traversed in the "wrong" direction instead of returning
//   the area for the rest of the sphere.
// Out param area is a pointer to the area of the polygon (meters-squared).
// Out param perimeter is a pointer to the perimeter of the polygon or length
//   of the polyline (meters).
// Returns the number of points.
//
// There's no need to "close" the polygon by repeating the first vertex. Set
// area or perimeter to nil, if you do not want the corresponding quantity
// returned. The area of a polyline is never set.
//
// More points can be added to the polygon after this call.
func (p *Polygon) Compute(clockwise, sign bool, area, perimeter *float64) int {
	n := len(p.points)
	if perimeter != nil {
		*perimeter = p.s.Length(p.points)
		if !p.polyline && n > 1 {
			*perimeter += p.s.Distance(p.points[n-1], p.points[0])
		}
	}
	if area != nil && !p.polyline {
		a := p.s.SignedArea(p.points)
		if clockwise {
			a = -a
		}
		total := 4 * math.Pi * p.s.radius * p.s.radius
		if sign {
			if a > total/2 {
				a -= total
			} else if a <= -total/2 {
				a += total
			}
		} else if a < 0 {
			a += total
		} else if a >= total {
			a -= total
		}
		*area = a
	}
	return n
}

// Clear the polygon, allowing a new polygon to be started.
func (p *Polygon) Clear() {
	p.points = p.points[:0]
}
