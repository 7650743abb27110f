// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.

package spherical

import "math"

// EarthRadius is the mean radius of the Earth in meters.
const EarthRadius = 6371009

const radians = math.Pi / 180
const degrees = 180 / math.Pi

// wrap returns n wrapped into [min, max), or n itself when it is already in
// that range.
func wrap(n, min, max float64) float64 {
	if n >= min && n < max {
		return n
	}
	return mod(n-min, max-min) + min
}

// mod is a modulo that is always non-negative for positive m.
func mod(x, m float64) float64 {
	return math.Mod(math.Mod(x, m)+m, m)
}

func clamp(x, low, high float64) float64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// hav is the haversine, sin²(x/2).
func hav(x float64) float64 {
	s := math.Sin(x * 0.5)
	return s * s
}

// arcHav is the inverse haversine. Rounding in havDistance may leave x a few
// ulps outside of [0, 1], so it's clamped first.
func arcHav(x float64) float64 {
	return 2 * math.Asin(math.Sqrt(clamp(x, 0, 1)))
}

// havDistance returns hav() of the distance on the unit sphere between two
// points, all arguments in radians.
func havDistance(lat1, lat2, dLng float64) float64 {
	return hav(lat1-lat2) + hav(dLng)*math.Cos(lat1)*math.Cos(lat2)
}
