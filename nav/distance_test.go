// nav/distance_test.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"math"
	"testing"

	"github.com/hackcommons/airdb/aviation"
)

var (
	keb  = aviation.Coords{Lat: 59.3521, Lon: -151.925}
	panc = aviation.Coords{Lat: 61.1744, Lon: -149.996}
	kjfk = aviation.Coords{Lat: 40.6398, Lon: -73.7789}
	klax = aviation.Coords{Lat: 33.9425, Lon: -118.408}
)

func TestLegMetersCoincident(t *testing.T) {
	if d := LegMeters(keb, keb); d != 0 {
		t.Errorf("expected zero distance for coincident points, got %v", d)
	}
}

func TestLegMetersSymmetric(t *testing.T) {
	d1 := LegMeters(keb, panc)
	d2 := LegMeters(panc, keb)
	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("expected symmetric distance, got %v and %v", d1, d2)
	}
}

func TestLegMetersKnownDistances(t *testing.T) {
	// KEB-PANC is a ~120 nm hop; JFK-LAX is ~2150 nm.
	if nm := NauticalMiles(LegMeters(keb, panc)); nm < 110 || nm > 135 {
		t.Errorf("KEB-PANC distance %v nm outside expected range", nm)
	}
	if nm := NauticalMiles(LegMeters(kjfk, klax)); nm < 2100 || nm > 2200 {
		t.Errorf("JFK-LAX distance %v nm outside expected range", nm)
	}
}

func TestLegMetersNearAntipodal(t *testing.T) {
	// Near-antipodal legs are where the iterative formula gives up; the
	// fallback keeps the leg from failing and the result stays plausible
	// (roughly half the earth's circumference).
	p := aviation.Coords{Lat: 0.5, Lon: 0}
	q := aviation.Coords{Lat: -0.4, Lon: 179.8}

	d := LegMeters(p, q)
	if d < 19.8e6 || d > 20.1e6 {
		t.Errorf("near-antipodal distance %v m outside expected range", d)
	}
}

func TestNauticalMiles(t *testing.T) {
	if nm := NauticalMiles(1852); nm != 1 {
		t.Errorf("expected 1852 m to be exactly 1 nm, got %v", nm)
	}
	if nm := NauticalMiles(0); nm != 0 {
		t.Errorf("expected 0 m to be 0 nm, got %v", nm)
	}
}
