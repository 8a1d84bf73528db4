// aviation/errors.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "errors"

var (
	ErrInvalidCoordinates = errors.New("Invalid coordinates")
	ErrMissingColumn      = errors.New("Missing dataset column")
	ErrMissingIdent       = errors.New("Missing airport identifier")
	ErrUnknownAirport     = errors.New("Unknown airport")
)
