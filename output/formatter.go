package output

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/vegasq/neocat/model"
	"github.com/vegasq/neocat/timeconv"
)

// Formatter defines the interface for output formatters.
//
// Format ranges over results exactly once, so results may be a lazy
// sequence (such as a database query) or a materialized slice wrapped with
// slices.Values. Every approach must be linked to its object.
type Formatter interface {
	// Format writes approaches in the formatter's specific format
	Format(results iter.Seq[*model.CloseApproach]) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Fieldnames are the flat output columns, in order.
var Fieldnames = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

// ErrUnlinked is returned when an approach has no linked object.
var ErrUnlinked = errors.New("close approach is not linked to an object")

// record is an approach flattened together with its object.
type record struct {
	DatetimeUTC string
	DistanceAU  float64
	VelocityKMS float64
	Designation string
	Name        string
	Diameter    string
	DiameterKM  *float64
	Hazardous   bool
}

// flatten projects an approach and its object onto the output columns.
// index is the approach's 0-based position, for error messages.
func flatten(index int, a *model.CloseApproach) (record, error) {
	if a.NEO == nil {
		return record{}, fmt.Errorf("result %d (%s): %w", index, a.Designation, ErrUnlinked)
	}
	when, err := a.When()
	if err != nil {
		return record{}, fmt.Errorf("result %d (%s): %w", index, a.Designation, err)
	}

	r := record{
		DatetimeUTC: timeconv.DatetimeToStr(when),
		DistanceAU:  a.Distance,
		VelocityKMS: a.Velocity,
		Designation: a.NEO.Designation,
		Name:        a.NEO.Name,
		Diameter:    a.NEO.Diameter,
		Hazardous:   a.NEO.IsHazardous(),
	}
	if km, ok := a.NEO.DiameterKM(); ok {
		r.DiameterKM = &km
	}
	return r, nil
}

// row renders a record as one flat text row in Fieldnames order.
func (r record) row() []string {
	return []string{
		r.DatetimeUTC,
		formatFloat(r.DistanceAU),
		formatFloat(r.VelocityKMS),
		r.Designation,
		r.Name,
		r.Diameter,
		capitalize(strconv.FormatBool(r.Hazardous)),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// capitalize upper-cases the first letter: "false" becomes "False".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
