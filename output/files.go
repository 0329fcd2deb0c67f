package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/vegasq/neocat/model"
)

// ErrUnsupportedFormat is returned by WriteFile for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// WriteToCSV writes approaches to a CSV file, creating or truncating it.
func WriteToCSV(results iter.Seq[*model.CloseApproach], filename string) error {
	return writeFile(filename, false, NewCSVFormatter(nil), results)
}

// WriteToJSON writes approaches to a JSON file, creating or truncating it.
func WriteToJSON(results iter.Seq[*model.CloseApproach], filename string) error {
	return writeFile(filename, false, NewJSONFormatter(nil), results)
}

// WriteToParquet writes approaches to a Parquet file, creating or
// truncating it.
func WriteToParquet(results iter.Seq[*model.CloseApproach], filename string) error {
	return writeFile(filename, false, NewParquetFormatter(nil), results)
}

// WriteFile picks the output format from the file extension:
//
//   - .csv, .csv.gz
//   - .json, .json.gz
//   - .parquet
//   - .db, .sqlite, .sqlite3
//
// A .gz suffix gzip-compresses the text formats.
func WriteFile(ctx context.Context, results iter.Seq[*model.CloseApproach], filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	compressed := ext == ".gz"
	if compressed {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(filename, filepath.Ext(filename))))
	}

	switch {
	case ext == ".csv":
		return writeFile(filename, compressed, NewCSVFormatter(nil), results)
	case ext == ".json":
		return writeFile(filename, compressed, NewJSONFormatter(nil), results)
	case ext == ".parquet" && !compressed:
		return WriteToParquet(results, filename)
	case (ext == ".db" || ext == ".sqlite" || ext == ".sqlite3") && !compressed:
		return WriteToSQLite(ctx, results, filename)
	default:
		return fmt.Errorf("%w: %s (supported: .csv, .json, .parquet, .db, .sqlite and .gz for csv/json)", ErrUnsupportedFormat, filename)
	}
}

// writeFile creates filename, runs the formatter against it and closes it on
// every path. The first error wins.
func writeFile(filename string, compressed bool, formatter Formatter, results iter.Seq[*model.CloseApproach]) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	var w io.Writer = f
	if compressed {
		gz := gzip.NewWriter(f)
		defer func() {
			if closeErr := gz.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to finish gzip stream: %w", closeErr)
			}
		}()
		w = gz
	}

	formatter.SetOutput(w)
	if err := formatter.Format(results); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
