package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/vegasq/neocat/model"
)

const csvHeader = "datetime_utc,distance_au,velocity_km_s,designation,name,diameter_km,potentially_hazardous\n"

func TestCSVFormatter_Format(t *testing.T) {
	tests := []struct {
		name       string
		approaches []*model.CloseApproach
		want       string
	}{
		{
			name:       "empty results still write the header",
			approaches: nil,
			want:       csvHeader,
		},
		{
			name:       "named and unnamed objects",
			approaches: sampleApproaches(),
			want: csvHeader +
				"2029-01-01 00:00,0.15,5,433,Eros,16.84,False\n" +
				"2020-01-01 12:30,0.00025,22.1,2019 AA,,,True\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter := NewCSVFormatter(&buf)

			if err := formatter.Format(slices.Values(tt.approaches)); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Format() output mismatch\ngot:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestCSVFormatter_NoCarriageReturns(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(slices.Values(sampleApproaches())); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(buf.String(), "\r") {
		t.Error("CSV output must use \\n line endings only")
	}
}

func TestCSVFormatter_HazardousIsCapitalized(t *testing.T) {
	flags := []string{"Y", "N", ""}

	for _, flag := range flags {
		t.Run("flag "+flag, func(t *testing.T) {
			neo := model.NewNearEarthObject("1", "", "", flag)
			approaches := []*model.CloseApproach{
				{Designation: "1", Time: "2000-Jan-01 00:00", Distance: 1, Velocity: 1, NEO: neo},
			}

			var buf bytes.Buffer
			if err := NewCSVFormatter(&buf).Format(slices.Values(approaches)); err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			records, err := csv.NewReader(&buf).ReadAll()
			if err != nil {
				t.Fatalf("Format() produced invalid CSV: %v", err)
			}
			got := records[1][6]
			if got != "True" && got != "False" {
				t.Errorf("potentially_hazardous = %q, want True or False", got)
			}
			if (flag == "Y") != (got == "True") {
				t.Errorf("flag %q rendered as %q", flag, got)
			}
		})
	}
}

func TestCSVFormatter_RoundTrip(t *testing.T) {
	approaches := sampleApproaches()

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(slices.Values(approaches)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(records) != len(approaches)+1 {
		t.Fatalf("Expected %d records, got %d", len(approaches)+1, len(records))
	}

	for i, a := range approaches {
		row := records[i+1]
		if row[3] != a.NEO.Designation {
			t.Errorf("row %d designation = %q, want %q", i, row[3], a.NEO.Designation)
		}
		if row[4] != a.NEO.Name {
			t.Errorf("row %d name = %q, want %q", i, row[4], a.NEO.Name)
		}
		if row[5] != a.NEO.Diameter {
			t.Errorf("row %d diameter_km = %q, want %q", i, row[5], a.NEO.Diameter)
		}
	}
}

func TestCSVFormatter_SpecialCharacters(t *testing.T) {
	neo := model.NewNearEarthObject("2101", `Adonis, "the" god`, "0.6", "N")
	approaches := []*model.CloseApproach{
		{Designation: "2101", Time: "1936-Feb-07 00:00", Distance: 0.01, Velocity: 20, NEO: neo},
	}

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(slices.Values(approaches)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// CSV library should handle escaping automatically
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV with special characters: %v", err)
	}
	if records[1][4] != `Adonis, "the" god` {
		t.Errorf("name not escaped correctly: %q", records[1][4])
	}
}

func TestCSVFormatter_Unlinked(t *testing.T) {
	approaches := []*model.CloseApproach{
		{Designation: "433", Time: "2029-Jan-01 00:00", Distance: 0.15, Velocity: 5.0},
	}

	err := NewCSVFormatter(&bytes.Buffer{}).Format(slices.Values(approaches))
	if !errors.Is(err, ErrUnlinked) {
		t.Errorf("expected ErrUnlinked, got %v", err)
	}
}

func TestCSVFormatter_ConsumesOnce(t *testing.T) {
	src := &countingSeq{approaches: sampleApproaches()}

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(src.seq); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if src.ranges != 1 {
		t.Errorf("results ranged %d times, want 1", src.ranges)
	}
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	formatter := NewCSVFormatter(&buf1)

	if err := formatter.Format(slices.Values(sampleApproaches())); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf1.Len() == 0 {
		t.Error("First buffer should have content")
	}

	formatter.SetOutput(&buf2)
	if err := formatter.Format(slices.Values(sampleApproaches())); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf2.String() != buf1.String() {
		t.Error("Second buffer should have the same content")
	}
}
