package main

import (
	"fmt"
	"iter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vegasq/neocat/model"
	"github.com/vegasq/neocat/output"
	"github.com/vegasq/neocat/query"
	"github.com/vegasq/neocat/timeconv"
)

// queryFlags holds the raw values of the query command's filter flags.
type queryFlags struct {
	date, startDate, endDate string
	minDistance, maxDistance float64
	minVelocity, maxVelocity float64
	minDiameter, maxDiameter float64
	hazardous, notHazardous  bool
	where                    string
	outfile                  string
}

func newQueryCmd(a *app) *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Find close approaches matching filters",
		Long: "Query links every close approach to its object and prints the approaches\n" +
			"that match all given filters, in load order.\n\n" +
			"--where accepts an expression over the columns " + fmt.Sprint(query.ColumnNames()) + ",\n" +
			"for example: distance < 0.05 and (hazardous = true or velocity >= 20)",
		Example: "  neocat query --date 2020-01-01\n" +
			"  neocat query --start-date 2020-01-01 --max-distance 0.1 --hazardous -f csv\n" +
			"  neocat query --where \"diameter > 1 and name != ''\" --limit 0 --outfile results.json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := qf.filters(cmd.Flags())
			if err != nil {
				return err
			}

			db, err := a.loadDatabase()
			if err != nil {
				return err
			}
			results := query.Limit(db.Query(filters...), a.cfg.Limit)

			if qf.outfile != "" {
				n, counted := countResults(results)
				if err := output.WriteFile(cmd.Context(), counted, qf.outfile); err != nil {
					return err
				}
				a.log.Info("wrote results", zap.String("path", qf.outfile), zap.Int("count", *n))
				return nil
			}
			return a.formatter(cmd).Format(results)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&qf.date, "date", "d", "", "only approaches on this date (YYYY-MM-DD)")
	f.StringVarP(&qf.startDate, "start-date", "s", "", "only approaches on or after this date")
	f.StringVarP(&qf.endDate, "end-date", "e", "", "only approaches on or before this date")
	f.Float64Var(&qf.minDistance, "min-distance", 0, "minimum approach distance, in au")
	f.Float64Var(&qf.maxDistance, "max-distance", 0, "maximum approach distance, in au")
	f.Float64Var(&qf.minVelocity, "min-velocity", 0, "minimum relative velocity, in km/s")
	f.Float64Var(&qf.maxVelocity, "max-velocity", 0, "maximum relative velocity, in km/s")
	f.Float64Var(&qf.minDiameter, "min-diameter", 0, "minimum object diameter, in km")
	f.Float64Var(&qf.maxDiameter, "max-diameter", 0, "maximum object diameter, in km")
	f.BoolVar(&qf.hazardous, "hazardous", false, "only potentially hazardous objects")
	f.BoolVar(&qf.notHazardous, "not-hazardous", false, "only objects that are not potentially hazardous")
	f.StringVarP(&qf.where, "where", "w", "", "filter expression")
	f.StringVarP(&qf.outfile, "outfile", "o", "", "write results to a .csv, .json, .parquet or .db file (optionally .gz)")
	f.IntP("limit", "l", 10, "maximum number of results (0 = unlimited)")
	f.StringP("format", "f", "table", "stdout format: table, csv, json")
	cmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")
	cmd.MarkFlagsMutuallyExclusive("date", "start-date")
	cmd.MarkFlagsMutuallyExclusive("date", "end-date")
	_ = a.v.BindPFlag("limit", f.Lookup("limit"))
	_ = a.v.BindPFlag("format", f.Lookup("format"))

	return cmd
}

// filters turns the flags that were set into query filters.
func (qf *queryFlags) filters(flags *pflag.FlagSet) ([]query.Filter, error) {
	var opts query.Options

	var err error
	if opts.Date, err = parseDateFlag(flags, "date", qf.date); err != nil {
		return nil, err
	}
	if opts.StartDate, err = parseDateFlag(flags, "start-date", qf.startDate); err != nil {
		return nil, err
	}
	if opts.EndDate, err = parseDateFlag(flags, "end-date", qf.endDate); err != nil {
		return nil, err
	}

	opts.DistanceMin = floatFlag(flags, "min-distance", qf.minDistance)
	opts.DistanceMax = floatFlag(flags, "max-distance", qf.maxDistance)
	opts.VelocityMin = floatFlag(flags, "min-velocity", qf.minVelocity)
	opts.VelocityMax = floatFlag(flags, "max-velocity", qf.maxVelocity)
	opts.DiameterMin = floatFlag(flags, "min-diameter", qf.minDiameter)
	opts.DiameterMax = floatFlag(flags, "max-diameter", qf.maxDiameter)

	switch {
	case qf.hazardous:
		opts.Hazardous = ptr(true)
	case qf.notHazardous:
		opts.Hazardous = ptr(false)
	}

	filters := query.FromOptions(opts)
	if qf.where != "" {
		where, err := query.Parse(qf.where)
		if err != nil {
			return nil, fmt.Errorf("invalid --where expression: %w", err)
		}
		filters = append(filters, where)
	}
	return filters, nil
}

// formatter returns the stdout formatter selected by --format.
func (a *app) formatter(cmd *cobra.Command) output.Formatter {
	out := cmd.OutOrStdout()
	switch a.cfg.Format {
	case "csv":
		return output.NewCSVFormatter(out)
	case "json":
		return output.NewJSONFormatter(out)
	default:
		return output.NewTableFormatter(out)
	}
}

// countResults wraps seq so that the number of yielded items can be read
// after it has been consumed.
func countResults(seq iter.Seq[*model.CloseApproach]) (*int, iter.Seq[*model.CloseApproach]) {
	n := new(int)
	return n, func(yield func(*model.CloseApproach) bool) {
		for approach := range seq {
			*n++
			if !yield(approach) {
				return
			}
		}
	}
}

func parseDateFlag(flags *pflag.FlagSet, name, value string) (*time.Time, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	t, err := timeconv.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return &t, nil
}

func floatFlag(flags *pflag.FlagSet, name string, value float64) *float64 {
	if !flags.Changed(name) {
		return nil
	}
	return &value
}

func ptr[T any](v T) *T {
	return &v
}
