// nav/waypoint.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package nav resolves route tokens against the airport database and
// computes great-circle route distances over the resulting waypoints.
package nav

import (
	"github.com/hackcommons/airdb/aviation"
)

// Waypoint is a resolved route point: an airport from the database or a
// raw coordinate pair. The interface is sealed; these two variants are
// the only implementations, and a Waypoint is never mutated after
// resolution.
type Waypoint interface {
	DisplayName() string
	Coordinates() aviation.Coords

	waypoint()
}

type AirportWaypoint struct {
	Airport aviation.Airport
}

func (w AirportWaypoint) DisplayName() string          { return w.Airport.Ident }
func (w AirportWaypoint) Coordinates() aviation.Coords { return w.Airport.Location }
func (AirportWaypoint) waypoint()                      {}

type CoordsWaypoint struct {
	Location aviation.Coords
}

func (w CoordsWaypoint) DisplayName() string          { return w.Location.String() }
func (w CoordsWaypoint) Coordinates() aviation.Coords { return w.Location }
func (CoordsWaypoint) waypoint()                      {}
