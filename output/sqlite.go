package output

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/vegasq/neocat/model"
)

// SQLiteTable is the table WriteToSQLite (re)creates.
const SQLiteTable = "close_approaches"

const sqliteSchema = `CREATE TABLE ` + SQLiteTable + ` (
	datetime_utc          TEXT    NOT NULL,
	distance_au           REAL    NOT NULL,
	velocity_km_s         REAL    NOT NULL,
	designation           TEXT    NOT NULL,
	name                  TEXT    NOT NULL,
	diameter_km           REAL,
	potentially_hazardous INTEGER NOT NULL
)`

const sqliteInsert = `INSERT INTO ` + SQLiteTable + ` (
	datetime_utc, distance_au, velocity_km_s, designation, name, diameter_km, potentially_hazardous
) VALUES (?, ?, ?, ?, ?, ?, ?)`

// WriteToSQLite writes approaches into the close_approaches table of the
// SQLite database at filename, replacing any previous contents of that
// table. All rows are inserted in one transaction.
func WriteToSQLite(ctx context.Context, results iter.Seq[*model.CloseApproach], filename string) (err error) {
	dsn, err := sqliteDSN(filename)
	if err != nil {
		return err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", closeErr)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+SQLiteTable); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}
	if _, err = tx.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, sqliteInsert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	i := 0
	for approach := range results {
		r, flattenErr := flatten(i, approach)
		if flattenErr != nil {
			err = flattenErr
			return err
		}
		var diameter any
		if r.DiameterKM != nil {
			diameter = *r.DiameterKM
		}
		if _, err = stmt.ExecContext(ctx,
			r.DatetimeUTC, r.DistanceAU, r.VelocityKMS, r.Designation, r.Name, diameter, r.Hazardous,
		); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
		i++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// sqliteDSN turns a file path into a "file:" URI so that characters such as
// '?', '#' and '%' stay part of the file name instead of being read as
// connection parameters.
func sqliteDSN(filename string) (string, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("failed to resolve database path: %w", err)
	}
	path := filepath.ToSlash(abs)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := url.URL{Scheme: "file", Path: path, OmitHost: true}
	return u.String(), nil
}
