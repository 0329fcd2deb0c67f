// Package reader loads near-Earth objects and close approaches from their
// source files into the records of package model.
//
// Each loader resolves the columns it needs by name first, then projects
// every row onto them:
//
//   - LoadNEOs reads a CSV file whose header names the pdes, name, diameter
//     and pha columns.
//   - LoadApproaches reads a JSON document whose "fields" array names the
//     des, cd, dist and v_rel fields and whose "data" array holds the rows.
//
// # Basic Usage
//
//	neos, err := reader.LoadNEOs("data/neos.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	approaches, err := reader.LoadApproaches("data/cad.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// A missing column yields a *SchemaError and a row that is too short yields
// a *MalformedRowError. Both abort the whole load; no partial result is
// returned. Use errors.Is with ErrSchema or ErrMalformedRow to classify them.
// Failures to open or read the file are returned wrapped, so
// errors.Is(err, fs.ErrNotExist) works as usual.
//
// The loaders never link approaches to objects. See package database.
package reader
