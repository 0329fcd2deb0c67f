// Package database links loaded objects and approaches and answers lookups
// and filtered queries over them.
package database

import (
	"iter"

	"github.com/vegasq/neocat/model"
	"github.com/vegasq/neocat/query"
)

// Database holds the full object and approach collections and the lookup
// tables that connect them.
type Database struct {
	neos          []*model.NearEarthObject
	approaches    []*model.CloseApproach
	byDesignation map[string]*model.NearEarthObject
	byName        map[string]*model.NearEarthObject
	unlinked      int
}

// New indexes neos by designation and name and links every approach to its
// object. Approaches whose designation is not in neos stay unlinked.
//
// New takes ownership of both slices and mutates the records: each
// object's Approaches is appended to and each approach's NEO is set.
func New(neos []*model.NearEarthObject, approaches []*model.CloseApproach) *Database {
	db := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*model.NearEarthObject, len(neos)),
		byName:        make(map[string]*model.NearEarthObject),
	}

	for _, neo := range neos {
		if _, dup := db.byDesignation[neo.Designation]; !dup {
			db.byDesignation[neo.Designation] = neo
		}
		if neo.Name != "" {
			if _, dup := db.byName[neo.Name]; !dup {
				db.byName[neo.Name] = neo
			}
		}
	}

	for _, approach := range approaches {
		neo, ok := db.byDesignation[approach.Designation]
		if !ok {
			db.unlinked++
			continue
		}
		approach.NEO = neo
		neo.Approaches = append(neo.Approaches, approach)
	}

	return db
}

// GetByDesignation returns the object with the given primary designation.
func (db *Database) GetByDesignation(designation string) (*model.NearEarthObject, bool) {
	neo, ok := db.byDesignation[designation]
	return neo, ok
}

// GetByName returns the object with the given name. The empty name matches
// nothing.
func (db *Database) GetByName(name string) (*model.NearEarthObject, bool) {
	if name == "" {
		return nil, false
	}
	neo, ok := db.byName[name]
	return neo, ok
}

// NEOs returns all objects in load order.
func (db *Database) NEOs() []*model.NearEarthObject {
	return db.neos
}

// Approaches returns all approaches in load order.
func (db *Database) Approaches() []*model.CloseApproach {
	return db.approaches
}

// Unlinked returns the number of approaches without a matching object.
func (db *Database) Unlinked() int {
	return db.unlinked
}

// Query lazily yields the linked approaches that satisfy every filter, in
// load order.
func (db *Database) Query(filters ...query.Filter) iter.Seq[*model.CloseApproach] {
	return func(yield func(*model.CloseApproach) bool) {
		for _, approach := range db.approaches {
			if approach.NEO == nil {
				continue
			}
			if query.MatchAll(approach, filters...) && !yield(approach) {
				return
			}
		}
	}
}
