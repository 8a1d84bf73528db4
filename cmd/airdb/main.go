// main.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// airdb is an offline reference for the ourairports dataset: it resolves
// airport identifiers to full records, searches airports by name and
// place, and totals great-circle distances along a chain of waypoints.
// The dataset is indexed once into a persistent on-disk store and queried
// from there on every run.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hackcommons/airdb/log"

	"github.com/joho/godotenv"
)

var (
	dataDir  = flag.String("datadir", "", "directory holding the search index (default: $AIRDB_DATA_DIR, else the user config dir)")
	logLevel = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir   = flag.String("logdir", "", "log file directory")
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, `usage:
  airdb [flags] IDENT [IDENT...]             print the record for each airport
  airdb [flags] dist WAYPOINT WAYPOINT...    per-leg and total route distance
  airdb [flags] search QUERY...              search airports by name and place
  airdb [flags] update [AIRPORTS [RUNWAYS]]  rebuild the index, optionally
                                             from ourairports CSV files

A waypoint is an airport identifier or a "lat,lon" coordinate pair. With
no arguments, dist reads waypoints from stdin, one per line.

flags:`)
	flag.PrintDefaults()
}

func main() {
	// A .env in the working directory can pre-set AIRDB_DATA_DIR and
	// friends; running without one is the normal case.
	godotenv.Load()

	flag.Usage = usage
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	dir, err := resolveDataDir()
	if err == nil {
		switch args[0] {
		case "dist":
			err = runDist(dir, args[1:], lg)
		case "search", "find":
			err = runSearch(dir, args[1:], lg)
		case "update":
			err = runUpdate(dir, args[1:], lg)
		default:
			err = runList(dir, args, lg)
		}
	}

	if err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveDataDir picks the directory the index lives under: the -datadir
// flag wins, then $AIRDB_DATA_DIR, then a directory under the platform
// user config dir.
func resolveDataDir() (string, error) {
	if *dataDir != "" {
		return *dataDir, nil
	}
	if dir := os.Getenv("AIRDB_DATA_DIR"); dir != "" {
		return dir, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "airdb"), nil
}
