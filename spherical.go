// Spherical geometry on the Earth sphere
//
// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.
//
// Headings are degrees clockwise from north in the range [-180,180).
// Distances are meters and areas are square meters on a sphere of
// EarthRadius, unless a Sphere with another radius is used.

package spherical

import "math"

// Heading returns the initial heading from one point to another, in degrees
// clockwise from north in the range [-180,180).
//
// The heading is undefined when from is one of the poles.
func Heading(from, to LatLng) float64 {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	φ1 := from.Lat * radians
	φ2 := to.Lat * radians
	Δλ := (to.Lng - from.Lng) * radians
	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	return wrap(math.Atan2(y, x)*degrees, -180, 180)
}

// Offset returns the point reached by travelling distance meters from the
// origin in the given heading.
func Offset(from LatLng, distance, heading float64) LatLng {
	return Earth.Offset(from, distance, heading)
}

// OffsetOrigin returns the origin that reaches the destination to after
// travelling distance meters in the given heading. The bool is false when
// there is no such origin.
//
// Some inputs have many valid origins, for example when to is a pole. Any
// one of them is returned.
func OffsetOrigin(to LatLng, distance, heading float64) (LatLng, bool) {
	return Earth.OffsetOrigin(to, distance, heading)
}

// Interpolate returns the point that lies the given fraction of the way along
// the great circle arc from one point to another. A fraction of 0 yields from
// and 1 yields to.
//
// When the two points are the same, or are antipodal, from is returned.
func Interpolate(from, to LatLng, fraction float64) LatLng {
	// http://en.wikipedia.org/wiki/Slerp
	φ1 := from.Lat * radians
	λ1 := from.Lng * radians
	φ2 := to.Lat * radians
	λ2 := to.Lng * radians
	cosφ1 := math.Cos(φ1)
	cosφ2 := math.Cos(φ2)

	angle := AngleBetween(from, to)
	sinAngle := math.Sin(angle)
	if sinAngle < 1e-6 {
		return from
	}
	a := math.Sin((1-fraction)*angle) / sinAngle
	b := math.Sin(fraction*angle) / sinAngle

	x := a*cosφ1*math.Cos(λ1) + b*cosφ2*math.Cos(λ2)
	y := a*cosφ1*math.Sin(λ1) + b*cosφ2*math.Sin(λ2)
	z := a*math.Sin(φ1) + b*math.Sin(φ2)

	lat := math.Atan2(z, math.Sqrt(x*x+y*y))
	lng := math.Atan2(y, x)
	return LatLng{Lat: lat * degrees, Lng: lng * degrees}
}

// AngleBetween returns the central angle between two points, in radians. This
// is the distance on the unit sphere.
func AngleBetween(from, to LatLng) float64 {
	return distanceRadians(from.Lat*radians, from.Lng*radians,
		to.Lat*radians, to.Lng*radians)
}

// Distance returns the great circle distance between two points, in meters.
func Distance(from, to LatLng) float64 {
	return Earth.Distance(from, to)
}

// Length returns the length of the path, in meters. The path is not closed.
func Length(path []LatLng) float64 {
	return Earth.Length(path)
}

// Area returns the area enclosed by the path, in square meters.
func Area(path []LatLng) float64 {
	return Earth.Area(path)
}

// SignedArea returns the signed area enclosed by the path, in square meters.
// The path is closed implicitly, the last point connects back to the first.
//
// The area is positive when the path is counter-clockwise, with "inside" being
// the side that does not contain the South Pole. Reversing the path negates
// the area.
func SignedArea(path []LatLng) float64 {
	return Earth.SignedArea(path)
}

// distanceRadians returns the distance on the unit sphere. All arguments are
// in radians.
func distanceRadians(lat1, lng1, lat2, lng2 float64) float64 {
	return arcHav(havDistance(lat1, lat2, lng1-lng2))
}

func destination(radius float64, from LatLng, meters, bearingDegrees float64) LatLng {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	δ := meters / radius
	θ := bearingDegrees * radians
	φ1 := from.Lat * radians
	λ1 := from.Lng * radians
	cosδ := math.Cos(δ)
	sinδ := math.Sin(δ)
	sinφ1 := math.Sin(φ1)
	cosφ1 := math.Cos(φ1)
	sinφ2 := cosδ*sinφ1 + sinδ*cosφ1*math.Cos(θ)
	Δλ := math.Atan2(sinδ*cosφ1*math.Sin(θ), cosδ-sinφ1*sinφ2)
	return LatLng{Lat: math.Asin(sinφ2) * degrees, Lng: (λ1 + Δλ) * degrees}
}

// origin solves destination backwards.
// See http://lists.maptools.org/pipermail/proj/2008-October/003939.html
func origin(radius float64, to LatLng, meters, bearingDegrees float64) (LatLng, bool) {
	θ := bearingDegrees * radians
	δ := meters / radius
	n1 := math.Cos(δ)
	n2 := math.Sin(δ) * math.Cos(θ)
	n3 := math.Sin(δ) * math.Sin(θ)
	n4 := math.Sin(to.Lat * radians)

	// With a = sinφ1 and b = cosφ1, n4 = n1⋅a + n2⋅b has two solutions for
	// b = (n2⋅n4 ± √discriminant) / (n1² + n2²). The first may put the
	// latitude outside of [-90,+90], then the second is used.
	n12 := n1 * n1
	discriminant := n2*n2*n12 + n12*n12 - n12*n4*n4
	if discriminant < 0 {
		return LatLng{}, false
	}
	var φ1 float64
	ok := false
	for _, sign := range [2]float64{1, -1} {
		b := (n2*n4 + sign*math.Sqrt(discriminant)) / (n12 + n2*n2)
		a := (n4 - n2*b) / n1
		φ1 = math.Atan2(a, b)
		if φ1 >= -math.Pi/2 && φ1 <= math.Pi/2 {
			ok = true
			break
		}
	}
	if !ok {
		return LatLng{}, false
	}
	λ1 := to.Lng*radians - math.Atan2(n3, n1*math.Cos(φ1)-n2*math.Sin(φ1))
	return LatLng{Lat: φ1 * degrees, Lng: λ1 * degrees}, true
}

// signedArea returns the signed area of the closed path on the unit sphere.
//
// Each edge forms a triangle with the North Pole, the "polar triangle", and the
// path's area is the sum of the signed areas of those triangles.
func signedArea(path []LatLng) float64 {
	if len(path) < 3 {
		return 0
	}
	var total float64
	prev := path[len(path)-1]
	prevTan := math.Tan((math.Pi/2 - prev.Lat*radians) / 2)
	prevLng := prev.Lng * radians
	for _, p := range path {
		tan := math.Tan((math.Pi/2 - p.Lat*radians) / 2)
		lng := p.Lng * radians
		total += polarTriangleArea(tan, lng, prevTan, prevLng)
		prevTan = tan
		prevLng = lng
	}
	return total
}

// polarTriangleArea returns the signed area of a triangle which has the North
// Pole as a vertex. The tan arguments are tan((π/2 - latitude)/2).
//
// Todhunter, Spherical Trigonometry, p. 71, §103, point 2.
func polarTriangleArea(tan1, lng1, tan2, lng2 float64) float64 {
	Δλ := lng1 - lng2
	t := tan1 * tan2
	return 2 * math.Atan2(t*math.Sin(Δλ), 1+t*math.Cos(Δλ))
}
