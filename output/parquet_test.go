package output

import (
	"bytes"
	"fmt"
	"slices"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/neocat/model"
)

func TestParquetFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewParquetFormatter(&buf).Format(slices.Values(sampleApproaches())))

	rows, err := parquet.Read[ParquetRecord](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2029-01-01 00:00", rows[0].DatetimeUTC)
	assert.Equal(t, 0.15, rows[0].DistanceAU)
	assert.Equal(t, "Eros", rows[0].Name)
	require.NotNil(t, rows[0].DiameterKM)
	assert.Equal(t, 16.84, *rows[0].DiameterKM)
	assert.False(t, rows[0].PotentiallyHazardous)

	assert.Equal(t, "2019 AA", rows[1].Designation)
	assert.Equal(t, "", rows[1].Name)
	assert.Nil(t, rows[1].DiameterKM)
	assert.True(t, rows[1].PotentiallyHazardous)
}

func TestParquetFormatter_ManyRows(t *testing.T) {
	neo := model.NewNearEarthObject("433", "Eros", "16.84", "N")
	var approaches []*model.CloseApproach
	for i := 0; i < parquetBatchSize*2+7; i++ {
		approaches = append(approaches, &model.CloseApproach{
			Designation: "433",
			Time:        fmt.Sprintf("2000-Jan-01 %02d:%02d", (i/60)%24, i%60),
			Distance:    float64(i),
			Velocity:    1,
			NEO:         neo,
		})
	}

	var buf bytes.Buffer
	require.NoError(t, NewParquetFormatter(&buf).Format(slices.Values(approaches)))

	rows, err := parquet.Read[ParquetRecord](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, rows, len(approaches))
	for i, row := range rows {
		assert.Equal(t, float64(i), row.DistanceAU)
	}
}

func TestParquetFormatter_Unlinked(t *testing.T) {
	approaches := sampleApproaches()
	approaches[0].NEO = nil

	err := NewParquetFormatter(&bytes.Buffer{}).Format(slices.Values(approaches))
	assert.ErrorIs(t, err, ErrUnlinked)
}
