package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vegasq/neocat/model"
)

const utf8BOM = "\ufeff"

// LoadNEOs reads near-Earth objects from a CSV file whose first row is a
// header. Only the pdes, name, diameter and pha columns are used; they may
// appear in any order and alongside other columns.
//
// The whole file is read before any record is returned. On error no records
// are returned.
//
// Example:
//
//	neos, err := reader.LoadNEOs("data/neos.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
func LoadNEOs(path string) ([]*model.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadNEOs(f, path)
}

// ReadNEOs reads near-Earth objects from CSV content. source names the input
// in error messages.
func ReadNEOs(r io.Reader, source string) ([]*model.NearEarthObject, error) {
	csvReader := csv.NewReader(r)
	// Row width is checked against the resolved columns, not the header.
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Source: source, Label: NEOLabels[0]}
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	cols, err := ResolveColumns(source, header, NEOLabels)
	if err != nil {
		return nil, err
	}

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}

	neos := make([]*model.NearEarthObject, 0, len(rows))
	for i, row := range rows {
		fields, err := Project(cols, source, i+1, row)
		if err != nil {
			return nil, err
		}
		neos = append(neos, model.NewNearEarthObject(fields[0], fields[1], fields[2], fields[3]))
	}

	return neos, nil
}
