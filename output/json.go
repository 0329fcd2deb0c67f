package output

import (
	"encoding/json"
	"io"
	"iter"

	"github.com/vegasq/neocat/model"
)

type jsonNEO struct {
	Designation          string   `json:"designation"`
	Name                 string   `json:"name"`
	DiameterKM           *float64 `json:"diameter_km"`
	PotentiallyHazardous bool     `json:"potentially_hazardous"`
}

type jsonApproach struct {
	DatetimeUTC string  `json:"datetime_utc"`
	DistanceAU  float64 `json:"distance_au"`
	VelocityKMS float64 `json:"velocity_km_s"`
	NEO         jsonNEO `json:"neo"`
}

// JSONFormatter outputs approaches as one indented JSON array
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes a JSON array with one object per approach, indented by two
// spaces. Unlike the CSV output, potentially_hazardous is a JSON boolean and
// an unknown diameter_km is null.
func (j *JSONFormatter) Format(results iter.Seq[*model.CloseApproach]) error {
	out := make([]jsonApproach, 0)

	i := 0
	for approach := range results {
		r, err := flatten(i, approach)
		if err != nil {
			return err
		}
		out = append(out, jsonApproach{
			DatetimeUTC: r.DatetimeUTC,
			DistanceAU:  r.DistanceAU,
			VelocityKMS: r.VelocityKMS,
			NEO: jsonNEO{
				Designation:          r.Designation,
				Name:                 r.Name,
				DiameterKM:           r.DiameterKM,
				PotentiallyHazardous: r.Hazardous,
			},
		})
		i++
	}

	encoder := json.NewEncoder(j.writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(out)
}
