package reader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vegasq/neocat/model"
)

// cadDocument is the close-approach data layout: a list of field names and
// rows of values parallel to it.
type cadDocument struct {
	Fields []string            `json:"fields"`
	Data   [][]json.RawMessage `json:"data"`
}

// LoadApproaches reads close approaches from a JSON document shaped as
// {"fields": [...], "data": [[...], ...]}. Only the des, cd, dist and v_rel
// fields are used.
//
// Both sources are small enough to decode in one pass; there is no
// streaming mode.
func LoadApproaches(path string) ([]*model.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadApproaches(f, path)
}

// ReadApproaches reads close approaches from JSON content. source names the
// input in error messages.
func ReadApproaches(r io.Reader, source string) ([]*model.CloseApproach, error) {
	var doc cadDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	cols, err := ResolveColumns(source, doc.Fields, ApproachLabels)
	if err != nil {
		return nil, err
	}

	approaches := make([]*model.CloseApproach, 0, len(doc.Data))
	for i, entry := range doc.Data {
		rowNum := i + 1
		fields, err := Project(cols, source, rowNum, entry)
		if err != nil {
			return nil, err
		}

		approach, err := projectApproach(fields)
		if err != nil {
			return nil, &MalformedRowError{Source: source, Row: rowNum, Want: cols.Width(), Got: len(entry), Err: err}
		}
		approaches = append(approaches, approach)
	}

	return approaches, nil
}

// projectApproach builds a CloseApproach from des, cd, dist and v_rel values.
func projectApproach(fields []json.RawMessage) (*model.CloseApproach, error) {
	distance, err := rawFloat(fields[2])
	if err != nil {
		return nil, fmt.Errorf("dist: %w", err)
	}
	velocity, err := rawFloat(fields[3])
	if err != nil {
		return nil, fmt.Errorf("v_rel: %w", err)
	}

	return &model.CloseApproach{
		Designation: rawString(fields[0]),
		Time:        rawString(fields[1]),
		Distance:    distance,
		Velocity:    velocity,
	}, nil
}

// rawString returns a JSON string's value, or the literal JSON text of any
// other value.
func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// rawFloat accepts a JSON number or a string holding one.
func rawFloat(raw json.RawMessage) (float64, error) {
	if strings.TrimSpace(string(raw)) == "null" {
		return 0, fmt.Errorf("missing value")
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("expected a number, got %s", raw)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", s)
	}
	return f, nil
}
