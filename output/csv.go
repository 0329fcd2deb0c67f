package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"

	"github.com/vegasq/neocat/model"
)

// CSVFormatter outputs approaches as CSV with a header row
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header followed by one row per approach.
//
// Rows end in a single "\n" on every platform. The name column is empty for
// unnamed objects and potentially_hazardous is the literal True or False.
func (c *CSVFormatter) Format(results iter.Seq[*model.CloseApproach]) error {
	csvWriter := csv.NewWriter(c.writer)
	csvWriter.UseCRLF = false

	if err := csvWriter.Write(Fieldnames); err != nil {
		return err
	}

	i := 0
	for approach := range results {
		r, err := flatten(i, approach)
		if err != nil {
			return err
		}
		if err := csvWriter.Write(r.row()); err != nil {
			return err
		}
		i++
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
