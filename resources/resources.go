// resources/resources.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package resources carries the default airport and runway datasets that
// ship inside the binary. Both are ourairports.com CSV extracts, zstd
// compressed; util.LoadResource handles decompression when they are read.
package resources

import "embed"

//go:embed airports.csv.zst runways.csv.zst
var FS embed.FS
