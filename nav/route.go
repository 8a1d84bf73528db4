// nav/route.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"errors"
	"fmt"

	"github.com/hackcommons/airdb/aviation"
	"github.com/hackcommons/airdb/util"
)

var ErrUnknownWaypoint = errors.New("Unknown waypoint")

// Lookup resolves identifiers to airport records; satisfied by
// *search.Database.
type Lookup interface {
	ByIdentifier(id string) (*aviation.Airport, error)
}

// Leg is the segment between two consecutive waypoints. Distance is the
// length in nautical miles formatted to one decimal place, kept alongside
// Meters so presentation can align a column of legs.
type Leg struct {
	From     string
	To       string
	Meters   float64
	Distance string
}

// Route is a fully resolved and measured chain of waypoints.
type Route struct {
	Legs        []Leg
	TotalMeters float64

	// Width is the widest formatted leg distance, for column alignment.
	Width int
}

// TotalNM returns the aggregate route length in nautical miles.
func (r *Route) TotalNM() float64 {
	return NauticalMiles(r.TotalMeters)
}

// ResolveRoute resolves each token, origin first, to a waypoint: an
// identifier known to the database becomes an airport waypoint; otherwise
// a token parsing as "lat, lon" becomes a raw-coordinate waypoint. A
// token that is neither fails the whole route with ErrUnknownWaypoint
// naming the token; no partial route is returned.
func ResolveRoute(db Lookup, tokens []string) ([]Waypoint, error) {
	var waypoints []Waypoint
	for _, token := range tokens {
		wp, err := resolve(db, token)
		if err != nil {
			return nil, err
		}
		waypoints = append(waypoints, wp)
	}
	return waypoints, nil
}

func resolve(db Lookup, token string) (Waypoint, error) {
	ap, err := db.ByIdentifier(token)
	if err != nil {
		return nil, err
	}
	if ap != nil {
		return AirportWaypoint{Airport: *ap}, nil
	}

	if c, err := aviation.ParseCoords(token); err == nil {
		return CoordsWaypoint{Location: c}, nil
	}

	return nil, fmt.Errorf("%s: %w", token, ErrUnknownWaypoint)
}

// MakeRoute measures the legs between consecutive waypoints and
// aggregates the total. Fewer than two waypoints yield a route with no
// legs and zero length.
func MakeRoute(waypoints []Waypoint) *Route {
	r := &Route{}
	for from, to := range util.AdjacentPairs(waypoints) {
		meters := LegMeters(from.Coordinates(), to.Coordinates())
		dist := fmt.Sprintf("%.1f", NauticalMiles(meters))

		r.Legs = append(r.Legs, Leg{
			From:     from.DisplayName(),
			To:       to.DisplayName(),
			Meters:   meters,
			Distance: dist,
		})
		r.TotalMeters += meters
		r.Width = max(r.Width, len(dist))
	}
	return r
}

// ComputeRoute resolves the given tokens and measures the resulting
// route.
func ComputeRoute(db Lookup, tokens []string) (*Route, error) {
	waypoints, err := ResolveRoute(db, tokens)
	if err != nil {
		return nil, err
	}
	return MakeRoute(waypoints), nil
}
