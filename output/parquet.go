package output

import (
	"fmt"
	"io"
	"iter"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/vegasq/neocat/model"
)

// ParquetRecord is the row layout of the Parquet output.
type ParquetRecord struct {
	DatetimeUTC          string   `parquet:"datetime_utc"`
	DistanceAU           float64  `parquet:"distance_au"`
	VelocityKMS          float64  `parquet:"velocity_km_s"`
	Designation          string   `parquet:"designation"`
	Name                 string   `parquet:"name"`
	DiameterKM           *float64 `parquet:"diameter_km,optional"`
	PotentiallyHazardous bool     `parquet:"potentially_hazardous"`
}

// parquetBatchSize bounds the rows buffered between writer calls.
const parquetBatchSize = 1024

// ParquetFormatter writes approaches as a zstd-compressed Parquet file.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new Parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes one Parquet row per approach. Like JSON, the hazardous flag
// is a native boolean and an unknown diameter is null.
func (p *ParquetFormatter) Format(results iter.Seq[*model.CloseApproach]) error {
	writer := parquet.NewGenericWriter[ParquetRecord](p.writer, parquet.Compression(&zstd.Codec{}))

	batch := make([]ParquetRecord, 0, parquetBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := writer.Write(batch); err != nil {
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	i := 0
	for approach := range results {
		r, err := flatten(i, approach)
		if err != nil {
			_ = writer.Close()
			return err
		}
		batch = append(batch, ParquetRecord{
			DatetimeUTC:          r.DatetimeUTC,
			DistanceAU:           r.DistanceAU,
			VelocityKMS:          r.VelocityKMS,
			Designation:          r.Designation,
			Name:                 r.Name,
			DiameterKM:           r.DiameterKM,
			PotentiallyHazardous: r.Hazardous,
		})
		if len(batch) == parquetBatchSize {
			if err := flush(); err != nil {
				_ = writer.Close()
				return err
			}
		}
		i++
	}

	if err := flush(); err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
