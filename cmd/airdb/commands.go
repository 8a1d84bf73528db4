// commands.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hackcommons/airdb/aviation"
	"github.com/hackcommons/airdb/log"
	"github.com/hackcommons/airdb/nav"
	"github.com/hackcommons/airdb/search"
	"github.com/hackcommons/airdb/util"
)

// runList prints the full record for each identifier given. An unknown
// identifier doesn't stop the walk; the failures are reported together at
// the end and the command fails.
func runList(dir string, idents []string, lg *log.Logger) error {
	db, _, err := search.Initialize(search.Config{DataDir: dir}, lg)
	if err != nil {
		return err
	}
	defer db.Close()

	var unknown []error
	printed := 0
	for _, ident := range idents {
		ap, err := db.ByIdentifier(ident)
		if err != nil {
			return err
		}
		if ap == nil {
			unknown = append(unknown,
				fmt.Errorf("%s: %w", strings.ToUpper(strings.TrimSpace(ident)), aviation.ErrUnknownAirport))
			continue
		}

		if printed > 0 {
			fmt.Println()
		}
		printAirport(ap)
		printed++
	}
	return errors.Join(unknown...)
}

func printAirport(ap *aviation.Airport) {
	fmt.Println(ap)

	details := util.FilterSlice([]string{ap.Type, ap.Municipality, ap.Region, ap.Country},
		func(s string) bool { return s != "" })
	if len(details) > 0 {
		fmt.Printf("  %s\n", strings.Join(details, ", "))
	}
	fmt.Printf("  %s\n", ap.Location)

	for _, rwy := range ap.Runways {
		fmt.Printf("  runway %s%s\n", rwy.Name, runwayDetails(rwy))
	}
}

func runwayDetails(rwy aviation.Runway) string {
	var notes []string
	if rwy.LengthFt != nil {
		notes = append(notes, fmt.Sprintf("%d feet", *rwy.LengthFt))
	}
	if rwy.Lighted {
		notes = append(notes, "lighted")
	}
	if rwy.Closed {
		notes = append(notes, "closed")
	}
	if len(notes) == 0 {
		return ""
	}
	return ": " + strings.Join(notes, ", ")
}

// runSearch prints one line per match, best first: identifier, region,
// name.
func runSearch(dir string, args []string, lg *log.Logger) error {
	if len(args) == 0 {
		return errors.New("search: no query given")
	}

	db, _, err := search.Initialize(search.Config{DataDir: dir}, lg)
	if err != nil {
		return err
	}
	defer db.Close()

	airports, err := db.Search(strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, ap := range airports {
		fmt.Printf("%-7s %-7s %s\n", ap.Ident, ap.Region, ap.Name)
	}
	return nil
}

// runDist resolves the waypoints and prints a distance table, one row per
// leg plus the total. Any unresolvable waypoint fails the command before
// anything is printed.
func runDist(dir string, tokens []string, lg *log.Logger) error {
	if len(tokens) == 0 {
		var err error
		if tokens, err = readWaypoints(os.Stdin); err != nil {
			return err
		}
	}
	if len(tokens) < 2 {
		return errors.New("dist: need at least two waypoints")
	}

	db, _, err := search.Initialize(search.Config{DataDir: dir}, lg)
	if err != nil {
		return err
	}
	defer db.Close()

	route, err := nav.ComputeRoute(db, tokens)
	if err != nil {
		return err
	}

	for _, leg := range route.Legs {
		fmt.Printf("%4s -> %4s  %*s\n", leg.From, leg.To, route.Width, leg.Distance)
	}
	fmt.Printf("\nTotal distance: %.1f nm\n", route.TotalNM())
	return nil
}

// readWaypoints reads one waypoint per line, for piping a route in. A
// terminal on stdin means no route was supplied at all.
func readWaypoints(f *os.File) ([]string, error) {
	if fi, err := f.Stat(); err != nil || fi.Mode()&os.ModeCharDevice != 0 {
		return nil, errors.New("dist: no waypoints given")
	}

	var tokens []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			tokens = append(tokens, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// runUpdate discards any existing index and rebuilds it, from the
// embedded dataset by default or from the given CSV files. With a single
// path only the airports table is replaced.
func runUpdate(dir string, paths []string, lg *log.Logger) error {
	if len(paths) > 2 {
		return errors.New("update: expected at most AIRPORTS and RUNWAYS paths")
	}

	var src search.Source
	for i, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if i == 0 {
			src.Airports = f
		} else {
			src.Runways = f
		}
	}

	db, _, err := search.InitializeFrom(src, search.Config{DataDir: dir, Force: true}, lg)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Printf("Rebuilt airport index under %s\n", dir)
	return nil
}
