// aviation/csv.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/hackcommons/airdb/util"
)

// Utility function for parsing CSV files as strings; it breaks each line
// of the file into the requested fields and calls the provided callback
// function for each one. An error returned by the callback aborts the
// walk and is decorated with the offending record number.
func mungeCSV(filename string, r io.Reader, fields []string, callback func([]string) error) error {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	// Find the index of each field the caller requested
	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("%s: error parsing CSV file: %w", filename, err)
	}
	var fieldIndices []int
	for _, f := range fields {
		idx := slices.IndexFunc(header, func(h string) bool { return f == strings.TrimSpace(h) })
		if idx == -1 {
			return fmt.Errorf("%s: %q: %w", filename, f, ErrMissingColumn)
		}
		fieldIndices = append(fieldIndices, idx)
	}

	var strs []string
	for record := 1; ; record++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("%s: error parsing CSV file: %w", filename, err)
		}
		for _, i := range fieldIndices {
			strs = append(strs, rec[i])
		}
		if err := callback(strs); err != nil {
			return fmt.Errorf("%s: record %d: %w", filename, record, err)
		}
		strs = strs[:0]
	}
}

// ParseAirports reads an ourairports.com-style airports table and returns
// one Airport per row, in dataset order, with no runways associated yet.
// Two header layouts are accepted: the current one with separate
// latitude_deg/longitude_deg columns and the earlier one with a single
// combined "coordinates" column holding "lat, lon". A missing identifier
// or an unparsable numeric or coordinate field fails the whole parse.
func ParseAirports(r io.Reader) ([]Airport, error) {
	// The header has to be inspected before the fields to extract are
	// known, so slurp the input and scan it twice.
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("airports: %w", err)
	}

	header, err := csv.NewReader(bytes.NewReader(b)).Read()
	if err != nil {
		return nil, fmt.Errorf("airports: error parsing CSV file: %w", err)
	}
	combined := !slices.ContainsFunc(header, func(h string) bool {
		return strings.TrimSpace(h) == "latitude_deg"
	})

	fields := []string{"ident", "type", "name", "elevation_ft", "continent", "iso_country",
		"iso_region", "municipality", "gps_code", "iata_code", "local_code"}
	if combined {
		fields = append(fields, "coordinates")
	} else {
		fields = append(fields, "latitude_deg", "longitude_deg")
	}

	var airports []Airport
	err = mungeCSV("airports", bytes.NewReader(b), fields, func(s []string) error {
		ident := strings.ToUpper(strings.TrimSpace(s[0]))
		if ident == "" {
			return ErrMissingIdent
		}

		var elevation *int
		if e := strings.TrimSpace(s[3]); e != "" && e != "NA" {
			v, err := util.Atof(e)
			if err != nil {
				return fmt.Errorf("elevation_ft %q: %v", s[3], err)
			}
			ev := int(v)
			elevation = &ev
		}

		var loc Coords
		if combined {
			var err error
			if loc, err = ParseCoords(s[11]); err != nil {
				return err
			}
		} else {
			lat, err := util.Atof(s[11])
			if err != nil {
				return fmt.Errorf("latitude_deg %q: %v", s[11], err)
			}
			lon, err := util.Atof(s[12])
			if err != nil {
				return fmt.Errorf("longitude_deg %q: %v", s[12], err)
			}
			loc = Coords{Lat: lat, Lon: lon}
		}

		airports = append(airports, Airport{
			Ident:        ident,
			Type:         strings.TrimSpace(s[1]),
			Name:         strings.TrimSpace(s[2]),
			ElevationFt:  elevation,
			Continent:    strings.TrimSpace(s[4]),
			Country:      strings.TrimSpace(s[5]),
			Region:       strings.TrimSpace(s[6]),
			Municipality: strings.TrimSpace(s[7]),
			GPSCode:      strings.TrimSpace(s[8]),
			IATACode:     strings.TrimSpace(s[9]),
			LocalCode:    strings.TrimSpace(s[10]),
			Location:     loc,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return airports, nil
}

// ParseRunways reads an ourairports.com-style runways table. The composite
// runway name is formed from the two end identifiers; an empty length is
// carried as nil.
func ParseRunways(r io.Reader) ([]Runway, error) {
	parseFlag := func(field, v string) (bool, error) {
		v = strings.TrimSpace(v)
		if v == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%s %q: invalid flag", field, v)
		}
		return b, nil
	}

	var runways []Runway
	err := mungeCSV("runways", r, []string{"airport_ident", "length_ft", "lighted", "closed", "le_ident", "he_ident"},
		func(s []string) error {
			ident := strings.ToUpper(strings.TrimSpace(s[0]))
			if ident == "" {
				return ErrMissingIdent
			}

			var length *int
			if l := strings.TrimSpace(s[1]); l != "" {
				v, err := util.Atof(l)
				if err != nil {
					return fmt.Errorf("length_ft %q: %v", s[1], err)
				}
				lv := int(v)
				length = &lv
			}

			lighted, err := parseFlag("lighted", s[2])
			if err != nil {
				return err
			}
			closed, err := parseFlag("closed", s[3])
			if err != nil {
				return err
			}

			runways = append(runways, Runway{
				Airport:  ident,
				Name:     strings.TrimSpace(s[4]) + "/" + strings.TrimSpace(s[5]),
				LengthFt: length,
				Lighted:  lighted,
				Closed:   closed,
			})
			return nil
		})
	if err != nil {
		return nil, err
	}
	return runways, nil
}

// AssociateRunways attaches each airport's runways, preserving dataset
// order within a group. Each identifier's group is consumed by the first
// airport that claims it, so an airport that appears twice in the table
// cannot pick up the same runways twice; airports with no matching group
// are left with no runways.
func AssociateRunways(airports []Airport, runways []Runway) {
	groups := make(map[string][]Runway)
	for _, r := range runways {
		groups[r.Airport] = append(groups[r.Airport], r)
	}

	for i := range airports {
		airports[i].Runways = groups[airports[i].Ident]
		delete(groups, airports[i].Ident)
	}
}

// DefaultAirports parses the embedded default dataset and returns its
// airports with runways associated.
func DefaultAirports() ([]Airport, error) {
	rr := util.LoadResource("runways.csv.zst")
	defer rr.Close()
	runways, err := ParseRunways(rr)
	if err != nil {
		return nil, err
	}

	ar := util.LoadResource("airports.csv.zst")
	defer ar.Close()
	airports, err := ParseAirports(ar)
	if err != nil {
		return nil, err
	}

	AssociateRunways(airports, runways)
	return airports, nil
}
