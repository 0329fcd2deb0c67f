package reader

// NEOLabels are the CSV columns projected into a NearEarthObject, in
// projection order.
var NEOLabels = []string{"pdes", "name", "diameter", "pha"}

// ApproachLabels are the JSON fields projected into a CloseApproach, in
// projection order.
var ApproachLabels = []string{"des", "cd", "dist", "v_rel"}

// Columns maps each requested label to its position in a source header.
// Index i holds the position of the i-th requested label.
type Columns []int

// ResolveColumns looks up every label in header by exact match. The first
// missing label is reported as a *SchemaError.
func ResolveColumns(source string, header, labels []string) (Columns, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		// First occurrence wins for duplicated header names.
		if _, ok := positions[name]; !ok {
			positions[name] = i
		}
	}

	cols := make(Columns, len(labels))
	for i, label := range labels {
		pos, ok := positions[label]
		if !ok {
			return nil, &SchemaError{Source: source, Label: label}
		}
		cols[i] = pos
	}
	return cols, nil
}

// Width returns the minimum row length that covers every resolved column.
func (c Columns) Width() int {
	width := 0
	for _, pos := range c {
		if pos+1 > width {
			width = pos + 1
		}
	}
	return width
}

// Project picks the resolved columns out of row, in label order. It returns
// a *MalformedRowError when row is too short.
func Project[T any](c Columns, source string, rowNum int, row []T) ([]T, error) {
	if len(row) < c.Width() {
		return nil, &MalformedRowError{Source: source, Row: rowNum, Want: c.Width(), Got: len(row)}
	}
	out := make([]T, len(c))
	for i, pos := range c {
		out[i] = row[pos]
	}
	return out, nil
}
