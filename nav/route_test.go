// nav/route_test.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hackcommons/airdb/aviation"
)

// stubLookup serves airports from a map so the tests don't need a real
// index on disk.
type stubLookup map[string]*aviation.Airport

func (s stubLookup) ByIdentifier(id string) (*aviation.Airport, error) {
	return s[strings.ToUpper(strings.TrimSpace(id))], nil
}

type failingLookup struct{ err error }

func (f failingLookup) ByIdentifier(id string) (*aviation.Airport, error) {
	return nil, f.err
}

func testLookup() stubLookup {
	return stubLookup{
		"KEB": &aviation.Airport{
			Ident:    "KEB",
			Name:     "Nanwalek Airport",
			Location: aviation.Coords{Lat: 59.3521, Lon: -151.925},
		},
		"PANC": &aviation.Airport{
			Ident:    "PANC",
			Name:     "Ted Stevens Anchorage International Airport",
			Location: aviation.Coords{Lat: 61.1744, Lon: -149.996},
		},
		"PAHO": &aviation.Airport{
			Ident:    "PAHO",
			Name:     "Homer Airport",
			Location: aviation.Coords{Lat: 59.6456, Lon: -151.477},
		},
	}
}

func TestResolveRouteAirports(t *testing.T) {
	wps, err := ResolveRoute(testLookup(), []string{"KEB", "PANC"})
	if err != nil {
		t.Fatalf("ResolveRoute: %v", err)
	}
	if len(wps) != 2 {
		t.Fatalf("expected 2 waypoints, got %d", len(wps))
	}
	for i, name := range []string{"KEB", "PANC"} {
		aw, ok := wps[i].(AirportWaypoint)
		if !ok {
			t.Fatalf("waypoint %d: expected airport, got %T", i, wps[i])
		}
		if aw.DisplayName() != name {
			t.Errorf("waypoint %d: expected %q, got %q", i, name, aw.DisplayName())
		}
	}
}

func TestResolveRouteCoordinates(t *testing.T) {
	wps, err := ResolveRoute(testLookup(), []string{"KEB", "59.6456,-151.477"})
	if err != nil {
		t.Fatalf("ResolveRoute: %v", err)
	}
	cw, ok := wps[1].(CoordsWaypoint)
	if !ok {
		t.Fatalf("expected raw coordinates waypoint, got %T", wps[1])
	}
	if cw.Coordinates().Lat != 59.6456 || cw.Coordinates().Lon != -151.477 {
		t.Errorf("unexpected coordinates %+v", cw.Coordinates())
	}
	if name := cw.DisplayName(); name != "59.6456°N 151.4770°W" {
		t.Errorf("unexpected display name %q", name)
	}
}

func TestResolveRouteAirportWinsOverCoordinates(t *testing.T) {
	// An identifier that is also parseable as coordinates would be
	// pathological, but airport lookup must be consulted first.
	db := stubLookup{
		"KEB": testLookup()["KEB"],
	}
	wps, err := ResolveRoute(db, []string{"KEB"})
	if err != nil {
		t.Fatalf("ResolveRoute: %v", err)
	}
	if _, ok := wps[0].(AirportWaypoint); !ok {
		t.Errorf("expected airport waypoint, got %T", wps[0])
	}
}

func TestResolveRouteUnknown(t *testing.T) {
	wps, err := ResolveRoute(testLookup(), []string{"KEB", "ZZZZZ", "PANC"})
	if err == nil {
		t.Fatal("expected an error for an unresolvable token")
	}
	if !errors.Is(err, ErrUnknownWaypoint) {
		t.Errorf("expected ErrUnknownWaypoint, got %v", err)
	}
	if !strings.Contains(err.Error(), "ZZZZZ") {
		t.Errorf("expected error to name the offending token, got %q", err)
	}
	if wps != nil {
		t.Errorf("expected no partial route, got %v", wps)
	}
}

func TestResolveRouteLookupFailure(t *testing.T) {
	boom := errors.New("index unavailable")
	_, err := ResolveRoute(failingLookup{err: boom}, []string{"KEB"})
	if !errors.Is(err, boom) {
		t.Errorf("expected lookup error to propagate, got %v", err)
	}
}

func TestComputeRouteLegs(t *testing.T) {
	route, err := ComputeRoute(testLookup(), []string{"KEB", "PANC", "PAHO"})
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}
	if len(route.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(route.Legs))
	}

	legs := []struct{ from, to string }{{"KEB", "PANC"}, {"PANC", "PAHO"}}
	for i, want := range legs {
		if route.Legs[i].From != want.from || route.Legs[i].To != want.to {
			t.Errorf("leg %d: expected %s -> %s, got %s -> %s",
				i, want.from, want.to, route.Legs[i].From, route.Legs[i].To)
		}
	}

	if total := route.Legs[0].Meters + route.Legs[1].Meters; route.TotalMeters != total {
		t.Errorf("expected total %v to equal sum of legs %v", route.TotalMeters, total)
	}
}

func TestComputeRouteDistances(t *testing.T) {
	route, err := ComputeRoute(testLookup(), []string{"KEB", "PANC"})
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}
	if len(route.Legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(route.Legs))
	}

	leg := route.Legs[0]
	if want := fmt.Sprintf("%.1f", NauticalMiles(leg.Meters)); leg.Distance != want {
		t.Errorf("expected formatted distance %q, got %q", want, leg.Distance)
	}
	if nm := route.TotalNM(); nm < 110 || nm > 135 {
		t.Errorf("KEB-PANC total %v nm outside expected range", nm)
	}
}

func TestRouteWidth(t *testing.T) {
	// Mix a transcontinental leg with a short hop so the formatted
	// distances have different widths.
	wps := []Waypoint{
		CoordsWaypoint{Location: aviation.Coords{Lat: 40.6398, Lon: -73.7789}},
		CoordsWaypoint{Location: aviation.Coords{Lat: 33.9425, Lon: -118.408}},
		CoordsWaypoint{Location: aviation.Coords{Lat: 34.0, Lon: -118.408}},
	}
	route := MakeRoute(wps)

	widest := 0
	for _, leg := range route.Legs {
		if len(leg.Distance) > route.Width {
			t.Errorf("leg distance %q wider than route width %d", leg.Distance, route.Width)
		}
		widest = max(widest, len(leg.Distance))
	}
	if widest != route.Width {
		t.Errorf("expected width %d to match widest leg %d", route.Width, widest)
	}
	if route.Width < 6 {
		t.Errorf("expected a 4-digit leg to set width >= 6, got %d", route.Width)
	}
}

func TestMakeRouteDegenerate(t *testing.T) {
	for _, wps := range [][]Waypoint{
		nil,
		{CoordsWaypoint{Location: aviation.Coords{Lat: 1, Lon: 2}}},
	} {
		route := MakeRoute(wps)
		if len(route.Legs) != 0 || route.TotalMeters != 0 {
			t.Errorf("expected empty route for %d waypoints, got %+v", len(wps), route)
		}
	}
}
