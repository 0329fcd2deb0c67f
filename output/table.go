package output

import (
	"io"
	"iter"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/neocat/model"
)

// TableFormatter renders approaches as an aligned text table for terminals.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the same columns as the CSV output. Nothing is written
// when an approach cannot be flattened.
func (t *TableFormatter) Format(results iter.Seq[*model.CloseApproach]) error {
	var rows [][]string
	i := 0
	for approach := range results {
		r, err := flatten(i, approach)
		if err != nil {
			return err
		}
		rows = append(rows, r.row())
		i++
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(Fieldnames)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}
