// search/database_test.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package search

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/hackcommons/airdb/aviation"
)

func TestByIdentifierRoundTrips(t *testing.T) {
	db := openTestDatabase(t)

	// Materialized records must deep-equal what the dataset parse
	// produced.
	airports, err := aviation.ParseAirports(strings.NewReader(testAirportsCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	runways, err := aviation.ParseRunways(strings.NewReader(testRunwaysCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	aviation.AssociateRunways(airports, runways)

	for _, want := range airports {
		got, err := db.ByIdentifier(want.Ident)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", want.Ident, err)
		}
		if got == nil {
			t.Fatalf("%s: expected a match", want.Ident)
		}
		if !reflect.DeepEqual(*got, want) {
			t.Errorf("%s: stored record does not round-trip:\n got %+v\nwant %+v", want.Ident, *got, want)
		}
	}
}

func TestByIdentifierCanonicalizes(t *testing.T) {
	db := openTestDatabase(t)

	for _, id := range []string{"keb", "Keb", " KEB "} {
		ap, err := db.ByIdentifier(id)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", id, err)
		}
		if ap == nil || ap.Ident != "KEB" {
			t.Errorf("%q: expected KEB, got %+v", id, ap)
		}
	}
}

func TestByIdentifierMiss(t *testing.T) {
	db := openTestDatabase(t)

	ap, err := db.ByIdentifier("ZZZZZ")
	if err != nil {
		t.Fatalf("miss must not be an error, got %v", err)
	}
	if ap != nil {
		t.Errorf("expected no match for ZZZZZ, got %+v", ap)
	}
}

func TestByIdentifierCaches(t *testing.T) {
	db := openTestDatabase(t)

	first, err := db.ByIdentifier("PANC")
	if err != nil || first == nil {
		t.Fatalf("expected PANC, got %v, %v", first, err)
	}
	second, err := db.ByIdentifier("panc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("expected repeated lookup to return the cached record")
	}
}

func TestSearch(t *testing.T) {
	db := openTestDatabase(t)

	matches, err := db.Search("Nanwalek")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Ident != "KEB" {
		t.Errorf("expected exactly KEB for Nanwalek, got %+v", matches)
	}

	matches, err = db.Search("Anchorage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, ap := range matches {
		if ap.Ident == "PANC" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected PANC among Anchorage matches, got %+v", matches)
	}

	matches, err = db.Search("Gotham")
	if err != nil {
		t.Fatalf("a query with no matches must not be an error, got %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches for Gotham, got %+v", matches)
	}
}

func TestSearchLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`"ident","type","name","elevation_ft","continent","iso_country","iso_region","municipality","gps_code","iata_code","local_code","latitude_deg","longitude_deg"` + "\n")
	for i := range 30 {
		fmt.Fprintf(&sb, "\"X%02d\",\"small_airport\",\"Springfield Strip %d\",100,\"NA\",\"US\",\"US-MO\",\"Springfield\",,,,37.1,-93.%d\n", i, i, i)
	}

	db, _, err := InitializeFrom(Source{
		Airports: strings.NewReader(sb.String()),
		Runways:  strings.NewReader(emptyRunwaysCSV),
	}, Config{DataDir: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	matches, err := db.Search("Springfield")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != SearchLimit {
		t.Errorf("expected results capped at %d, got %d", SearchLimit, len(matches))
	}
}

func TestNoDropsOnHealthyStore(t *testing.T) {
	db := openTestDatabase(t)

	if _, err := db.Search("Airport"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := db.DroppedPayloads(); n != 0 {
		t.Errorf("expected no dropped payloads on a healthy store, got %d", n)
	}
}
