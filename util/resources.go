// util/resources.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/hackcommons/airdb/resources"

	"github.com/klauspost/compress/zstd"
)

// Unfortunately, unlike io.ReadCloser, the zstd Decoder's Close() method
// doesn't return an error, so we need to make our own custom ReadCloser
// interface.
type ResourceReadCloser interface {
	io.Reader
	Close()
}

type bytesReadCloser struct {
	*bytes.Reader
}

func (bytesReadCloser) Close() {}

// LoadResource provides a ResourceReadCloser for the given file from the
// embedded resources; if it is zstd compressed, the Reader handles
// decompression transparently. It panics if the file is not found since
// missing resources are pretty much impossible to recover from.
func LoadResource(path string) ResourceReadCloser {
	b, err := fs.ReadFile(resources.FS, path)
	if err != nil {
		panic(err)
	}
	br := bytesReadCloser{bytes.NewReader(b)}

	if filepath.Ext(path) == ".zst" {
		// Single-threaded decode; dataset ingest is sequential anyway.
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(err)
		}
		return zr
	}

	return br
}

// LoadResourceBytes returns the fully-decompressed contents of the given
// resource file.
func LoadResourceBytes(path string) []byte {
	r := LoadResource(path)
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}
	return b
}

// ResourceExists returns true if the specified resource file exists.
func ResourceExists(path string) bool {
	_, err := fs.Stat(resources.FS, path)
	return err == nil
}
