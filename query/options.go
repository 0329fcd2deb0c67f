package query

import (
	"time"
)

// Options are the explorer's fixed filter settings. Nil fields are unset.
type Options struct {
	Date        *time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	DistanceMin *float64
	DistanceMax *float64
	VelocityMin *float64
	VelocityMax *float64
	DiameterMin *float64
	DiameterMax *float64
	Hazardous   *bool
}

// FromOptions builds one comparison per set option. Dates compare by
// calendar day and bounds are inclusive.
func FromOptions(opts Options) []Filter {
	var filters []Filter

	add := func(column string, op TokenType, value interface{}) {
		filters = append(filters, &ComparisonExpr{Column: column, Operator: op, Value: value})
	}

	if opts.Date != nil {
		add("date", TokenEqual, truncateDay(*opts.Date))
	}
	if opts.StartDate != nil {
		add("date", TokenGreaterEqual, truncateDay(*opts.StartDate))
	}
	if opts.EndDate != nil {
		add("date", TokenLessEqual, truncateDay(*opts.EndDate))
	}
	if opts.DistanceMin != nil {
		add("distance", TokenGreaterEqual, *opts.DistanceMin)
	}
	if opts.DistanceMax != nil {
		add("distance", TokenLessEqual, *opts.DistanceMax)
	}
	if opts.VelocityMin != nil {
		add("velocity", TokenGreaterEqual, *opts.VelocityMin)
	}
	if opts.VelocityMax != nil {
		add("velocity", TokenLessEqual, *opts.VelocityMax)
	}
	if opts.DiameterMin != nil {
		add("diameter", TokenGreaterEqual, *opts.DiameterMin)
	}
	if opts.DiameterMax != nil {
		add("diameter", TokenLessEqual, *opts.DiameterMax)
	}
	if opts.Hazardous != nil {
		add("hazardous", TokenEqual, *opts.Hazardous)
	}

	return filters
}
