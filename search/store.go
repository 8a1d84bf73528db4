// search/store.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package search builds, persists, and queries the full-text index over
// the airport dataset. The index lives in a directory under the
// application data dir and survives across runs; it is only ever rebuilt
// wholesale, never patched incrementally.
package search

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hackcommons/airdb/aviation"
	"github.com/hackcommons/airdb/log"
	"github.com/hackcommons/airdb/util"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Fields names the four index fields. The schema is fixed for the
// lifetime of a store; queries and materialization address fields through
// this descriptor rather than repeating string literals.
type Fields struct {
	Identifier  string
	Description string
	Facet       string
	Object      string
}

var IndexFields = Fields{
	Identifier:  "identifier",
	Description: "description",
	Facet:       "facet",
	Object:      "object",
}

// document is the shape handed to the index for each airport. Object
// carries the full record as JSON and is the only thing ever read back.
type document struct {
	Identifier  string `json:"identifier"`
	Description string `json:"description"`
	Facet       string `json:"facet"`
	Object      string `json:"object"`
}

// Config selects where the store lives and whether an existing store is
// discarded. The data directory is threaded in explicitly; there is no
// process-wide default hidden in this package.
type Config struct {
	DataDir string
	Force   bool
}

// Source optionally overrides the embedded default dataset when building.
// A nil reader means "use the embedded copy" for that table.
type Source struct {
	Airports io.Reader
	Runways  io.Reader
}

// Initialize opens the store under cfg.DataDir, building it from the
// embedded default dataset first if it does not exist (or if cfg.Force
// discarded it). It returns the query handle and the field descriptors.
func Initialize(cfg Config, lg *log.Logger) (*Database, Fields, error) {
	return InitializeFrom(Source{}, cfg, lg)
}

// InitializeFrom is Initialize with the dataset supplied by the caller;
// used for dataset refresh. The source is only consulted when a build
// actually happens.
func InitializeFrom(src Source, cfg Config, lg *log.Logger) (*Database, Fields, error) {
	dir := filepath.Join(cfg.DataDir, "index")

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, Fields{}, err
	}

	if cfg.Force {
		lg.Infof("%s: removing existing index", dir)
		if err := os.RemoveAll(dir); err != nil {
			return nil, Fields{}, err
		}
	}

	idx, err := bleve.Open(dir)
	if err == nil {
		lg.Debugf("%s: opened existing index", dir)
		return newDatabase(idx, lg), IndexFields, nil
	}
	if !errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
		return nil, Fields{}, err
	}

	airports, err := src.load()
	if err != nil {
		return nil, Fields{}, err
	}

	idx, err = build(dir, airports, lg)
	if err != nil {
		return nil, Fields{}, err
	}
	return newDatabase(idx, lg), IndexFields, nil
}

// load returns the dataset to index, with runways associated, falling
// back to the embedded copy for any table the source does not provide.
func (src Source) load() ([]aviation.Airport, error) {
	if src.Airports == nil && src.Runways == nil {
		return aviation.DefaultAirports()
	}

	airportsReader := src.Airports
	if airportsReader == nil {
		r := util.LoadResource("airports.csv.zst")
		defer r.Close()
		airportsReader = r
	}
	airports, err := aviation.ParseAirports(airportsReader)
	if err != nil {
		return nil, err
	}

	runwaysReader := src.Runways
	if runwaysReader == nil {
		r := util.LoadResource("runways.csv.zst")
		defer r.Close()
		runwaysReader = r
	}
	runways, err := aviation.ParseRunways(runwaysReader)
	if err != nil {
		return nil, err
	}

	aviation.AssociateRunways(airports, runways)
	return airports, nil
}

// build indexes all airports into a temporary sibling directory and
// renames it into place only after the single batch has committed and the
// index has been cleanly closed, so a half-built store is never visible
// at the final path. Document IDs are dataset ordinals, which keeps
// duplicated identifiers as distinct documents.
func build(dir string, airports []aviation.Airport, lg *log.Logger) (bleve.Index, error) {
	start := time.Now()

	tmp := dir + ".build"
	if err := os.RemoveAll(tmp); err != nil {
		return nil, err
	}

	idx, err := bleve.New(tmp, indexMapping())
	if err != nil {
		return nil, err
	}

	discard := func(err error) (bleve.Index, error) {
		idx.Close()
		os.RemoveAll(tmp)
		return nil, err
	}

	batch := idx.NewBatch()
	for i, ap := range airports {
		object, err := json.Marshal(ap)
		if err != nil {
			return discard(err)
		}
		doc := document{
			Identifier:  ap.Ident,
			Description: ap.Description(),
			Facet:       ap.FacetPath(),
			Object:      string(object),
		}
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			return discard(err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return discard(err)
	}
	if err := idx.Close(); err != nil {
		os.RemoveAll(tmp)
		return nil, err
	}

	if err := os.Rename(tmp, dir); err != nil {
		os.RemoveAll(tmp)
		return nil, err
	}

	lg.Infof("%s: indexed %d airports in %s", dir, len(airports), time.Since(start))

	return bleve.Open(dir)
}

// indexMapping declares the static four-field schema: identifier and
// description are indexed but not stored, facet is a stored keyword path,
// and object is stored verbatim without being indexed. Dynamic fields and
// the composite _all field are disabled.
func indexMapping() mapping.IndexMapping {
	identifier := bleve.NewTextFieldMapping()
	identifier.Analyzer = standard.Name
	identifier.Store = false
	identifier.IncludeInAll = false
	identifier.IncludeTermVectors = false

	description := bleve.NewTextFieldMapping()
	description.Analyzer = standard.Name
	description.Store = false
	description.IncludeInAll = false

	facet := bleve.NewTextFieldMapping()
	facet.Analyzer = keyword.Name
	facet.Store = true
	facet.Index = true
	facet.IncludeInAll = false

	object := bleve.NewTextFieldMapping()
	object.Store = true
	object.Index = false
	object.IncludeInAll = false

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt(IndexFields.Identifier, identifier)
	doc.AddFieldMappingsAt(IndexFields.Description, description)
	doc.AddFieldMappingsAt(IndexFields.Facet, facet)
	doc.AddFieldMappingsAt(IndexFields.Object, object)

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	im.StoreDynamic = false
	im.IndexDynamic = false
	im.DocValuesDynamic = false
	return im
}
