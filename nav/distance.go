// nav/distance.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"github.com/hackcommons/airdb/aviation"

	"github.com/jftuga/geodist"
	"github.com/umahmood/haversine"
)

// MetersPerNauticalMile is exact by international definition.
const MetersPerNauticalMile = 1852.0

// NauticalMiles converts a distance in meters to nautical miles.
func NauticalMiles(meters float64) float64 {
	return meters / MetersPerNauticalMile
}

// LegMeters returns the geodesic distance between p and q in meters.
// The primary method is Vincenty's iterative ellipsoidal formula; when
// it fails to converge (degenerate or near-antipodal inputs) the
// spherical haversine approximation is used instead, so a leg never
// fails.
func LegMeters(p, q aviation.Coords) float64 {
	_, km, err := geodist.VincentyDistance(
		geodist.Coord{Lat: p.Lat, Lon: p.Lon},
		geodist.Coord{Lat: q.Lat, Lon: q.Lon})
	if err == nil {
		return km * 1000
	}

	_, km = haversine.Distance(
		haversine.Coord{Lat: p.Lat, Lon: p.Lon},
		haversine.Coord{Lat: q.Lat, Lon: q.Lon})
	return km * 1000
}
