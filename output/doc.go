// Package output writes close approaches, together with their linked
// objects, to CSV, JSON, Parquet, SQLite or a terminal table.
//
// # Formatters
//
// Every formatter satisfies the Formatter interface and writes to an
// io.Writer:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(db.Query(filters...)); err != nil {
//	    log.Fatal(err)
//	}
//
// Results are an iter.Seq and are consumed exactly once. Wrap a slice with
// slices.Values to format materialized results.
//
// # Columns
//
// The flat formats (CSV, table, Parquet, SQLite) share the columns listed in
// Fieldnames:
//
//	datetime_utc, distance_au, velocity_km_s, designation, name,
//	diameter_km, potentially_hazardous
//
// The JSON formatter writes an array of objects with datetime_utc,
// distance_au and velocity_km_s, and a nested "neo" object holding the
// remaining four fields.
//
// # Value Handling
//
//   - datetime_utc is rendered as "YYYY-MM-DD hh:mm" (see package timeconv).
//   - name is the empty string for unnamed objects, in every format.
//   - potentially_hazardous is the text True or False in CSV and table
//     output, and a native boolean in JSON, Parquet and SQLite.
//   - CSV rows end in "\n" on every platform.
//
// # Writing to Files
//
// WriteToCSV, WriteToJSON, WriteToParquet and WriteToSQLite create (or
// truncate) the destination and close it on every path. WriteFile picks one
// of them by file extension, with optional gzip compression for .csv.gz and
// .json.gz. Failures to create or write the file are returned wrapped, so
// errors.Is(err, fs.ErrPermission) and similar checks keep working.
package output
