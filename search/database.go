// search/database.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package search

import (
	"strings"
	"time"

	"github.com/hackcommons/airdb/aviation"
	"github.com/hackcommons/airdb/log"
	"github.com/hackcommons/airdb/util"

	"github.com/blevesearch/bleve/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SearchLimit bounds the number of results returned by Search.
const SearchLimit = 25

// Database is a query handle over an opened store. It holds the index
// reader for its lifetime; callers must Close it on every exit path.
// Queries share the reader snapshot taken at open time, so a rebuild in
// another process is not visible until a fresh handle is made.
type Database struct {
	idx     bleve.Index
	cache   *expirable.LRU[string, *aviation.Airport]
	lg      *log.Logger
	dropped int
}

func newDatabase(idx bleve.Index, lg *log.Logger) *Database {
	return &Database{
		idx: idx,
		// Route resolution hits the same identifiers repeatedly; keep
		// recently materialized records around.
		cache: expirable.NewLRU[string, *aviation.Airport](64, nil, 15*time.Minute),
		lg:    lg,
	}
}

// ByIdentifier returns the airport matching the given identifier, or
// (nil, nil) when there is no match; an absent identifier is not an
// error. The identifier is canonicalized to uppercase first.
func (db *Database) ByIdentifier(id string) (*aviation.Airport, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if ap, ok := db.cache.Get(id); ok {
		return ap, nil
	}

	q := bleve.NewMatchQuery(id)
	q.SetField(IndexFields.Identifier)
	req := bleve.NewSearchRequest(q)
	req.Size = 1
	req.Fields = []string{IndexFields.Object}

	res, err := db.idx.Search(req)
	if err != nil {
		return nil, err
	}

	airports := db.materialize(res)
	if len(airports) == 0 {
		return nil, nil
	}

	ap := &airports[0]
	db.cache.Add(id, ap)
	return ap, nil
}

// Search returns up to SearchLimit airports whose description matches the
// given free text, in descending relevance order.
func (db *Database) Search(text string) ([]aviation.Airport, error) {
	q := bleve.NewMatchQuery(text)
	q.SetField(IndexFields.Description)
	req := bleve.NewSearchRequest(q)
	req.Size = SearchLimit
	req.Fields = []string{IndexFields.Object}

	res, err := db.idx.Search(req)
	if err != nil {
		return nil, err
	}
	return db.materialize(res), nil
}

// materialize deserializes the stored payload of each hit back into an
// Airport. A document whose payload is missing or does not decode is
// dropped from the results; that only happens on index corruption, so it
// is logged and counted rather than failing the query.
func (db *Database) materialize(res *bleve.SearchResult) []aviation.Airport {
	var airports []aviation.Airport
	for _, hit := range res.Hits {
		payload, ok := hit.Fields[IndexFields.Object].(string)
		if !ok {
			db.dropped++
			db.lg.Warnf("%s: stored payload missing", hit.ID)
			continue
		}

		var ap aviation.Airport
		if err := util.UnmarshalJSONBytes([]byte(payload), &ap); err != nil {
			db.dropped++
			db.lg.Warnf("%s: dropping undecodable payload: %v", hit.ID, err)
			continue
		}
		airports = append(airports, ap)
	}
	return airports
}

// DroppedPayloads reports how many stored payloads this handle has had to
// drop at query time.
func (db *Database) DroppedPayloads() int { return db.dropped }

// Close releases the index and its filesystem resources.
func (db *Database) Close() error {
	return db.idx.Close()
}
