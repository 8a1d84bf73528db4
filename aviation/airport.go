// aviation/airport.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Airport is the canonical in-memory representation of one airport row
// from the dataset, plus its associated runways. Field names follow the
// ourairports.com column names; the JSON encoding is the stored payload
// format for the search index and must round-trip exactly.
//
// Ident is canonicalized to uppercase at construction and is never
// mutated afterwards.
type Airport struct {
	Ident        string   `json:"ident"`
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	ElevationFt  *int     `json:"elevation_ft,omitempty"`
	Continent    string   `json:"continent"`
	Country      string   `json:"iso_country"`
	Region       string   `json:"iso_region"`
	Municipality string   `json:"municipality"`
	GPSCode      string   `json:"gps_code,omitempty"`
	IATACode     string   `json:"iata_code,omitempty"`
	LocalCode    string   `json:"local_code,omitempty"`
	Location     Coords   `json:"coordinates"`
	Runways      []Runway `json:"runways,omitempty"`
}

// Runway describes one runway row; Name is the composite of the two
// physical ends (e.g. "07L/25R"). LengthFt is nil when the dataset
// doesn't give a length (common for water runways and small strips).
type Runway struct {
	Airport  string `json:"airport_ident"`
	Name     string `json:"name"`
	LengthFt *int   `json:"length_ft,omitempty"`
	Lighted  bool   `json:"lighted"`
	Closed   bool   `json:"closed"`
}

// Description returns the free-text string that the airport is indexed
// under for relevance-ranked search.
func (ap *Airport) Description() string {
	return fmt.Sprintf("%s %s, %s, %s, %s", ap.Ident, ap.Name, ap.Municipality, ap.Region, ap.Country)
}

// FacetPath returns the hierarchical categorical path stored with each
// indexed airport: /country/region/municipality/identifier/name.
func (ap *Airport) FacetPath() string {
	return "/" + strings.Join([]string{ap.Country, ap.Region, ap.Municipality, ap.Ident, ap.Name}, "/")
}

func (ap Airport) String() string {
	if ap.ElevationFt != nil {
		return fmt.Sprintf("%s %s (%d feet)", ap.Ident, ap.Name, *ap.ElevationFt)
	}
	return fmt.Sprintf("%s %s", ap.Ident, ap.Name)
}

///////////////////////////////////////////////////////////////////////////
// Coords

// Coords is a geographic position in degrees. Latitude is always first,
// matching the dataset column order; the named fields keep callers from
// silently swapping the two.
type Coords struct {
	Lat float64 `json:"latitude_deg"`
	Lon float64 `json:"longitude_deg"`
}

// ParseCoords parses a position given as exactly two decimal degree
// values, latitude first, separated by whitespace and/or a comma
// ("59.35, -151.92"). Anything else, including extra tokens or values
// outside the valid latitude/longitude ranges, is an error.
func ParseCoords(s string) (Coords, error) {
	f := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(f) != 2 {
		return Coords{}, fmt.Errorf("%q: %w", s, ErrInvalidCoordinates)
	}

	lat, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return Coords{}, fmt.Errorf("%q: %w", s, ErrInvalidCoordinates)
	}
	lon, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return Coords{}, fmt.Errorf("%q: %w", s, ErrInvalidCoordinates)
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coords{}, fmt.Errorf("%q: %w", s, ErrInvalidCoordinates)
	}

	return Coords{Lat: lat, Lon: lon}, nil
}

// String renders the position with hemisphere letters and four decimal
// places: "59.3521°N 151.9250°W".
func (c Coords) String() string {
	ns, ew := 'N', 'E'
	if c.Lat < 0 {
		ns = 'S'
	}
	if c.Lon < 0 {
		ew = 'W'
	}
	return fmt.Sprintf("%.4f°%c %.4f°%c", math.Abs(c.Lat), ns, math.Abs(c.Lon), ew)
}
