package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vegasq/neocat/model"
	"github.com/vegasq/neocat/timeconv"
)

type columnKind int

const (
	kindNumber columnKind = iota
	kindString
	kindBool
	kindDate
)

// column reads one attribute of an approach. known is false when the
// attribute has no value for this approach.
type column struct {
	kind  columnKind
	value func(a *model.CloseApproach) (v interface{}, known bool)
}

var columns = map[string]column{
	"date": {kindDate, func(a *model.CloseApproach) (interface{}, bool) {
		t, err := a.When()
		if err != nil {
			return nil, false
		}
		return truncateDay(t), true
	}},
	"distance": {kindNumber, func(a *model.CloseApproach) (interface{}, bool) {
		return a.Distance, true
	}},
	"velocity": {kindNumber, func(a *model.CloseApproach) (interface{}, bool) {
		return a.Velocity, true
	}},
	"diameter": {kindNumber, func(a *model.CloseApproach) (interface{}, bool) {
		if a.NEO == nil {
			return nil, false
		}
		km, ok := a.NEO.DiameterKM()
		return km, ok
	}},
	"hazardous": {kindBool, func(a *model.CloseApproach) (interface{}, bool) {
		if a.NEO == nil {
			return nil, false
		}
		return a.NEO.IsHazardous(), true
	}},
	"designation": {kindString, func(a *model.CloseApproach) (interface{}, bool) {
		return a.Designation, true
	}},
	"name": {kindString, func(a *model.CloseApproach) (interface{}, bool) {
		if a.NEO == nil {
			return nil, false
		}
		return a.NEO.Name, true
	}},
}

// ColumnNames returns the filterable column names, sorted.
func ColumnNames() []string {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// bindValue converts a literal token into the type of the named column.
func bindValue(name string, tok Token) (interface{}, error) {
	col, ok := columns[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownColumn, name, strings.Join(ColumnNames(), ", "))
	}

	switch col.kind {
	case kindNumber:
		if tok.Type != TokenNumber {
			return nil, fmt.Errorf("column %s expects a number, got %v", name, tok.Type)
		}
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", tok.Value)
		}
		return v, nil
	case kindBool:
		if tok.Type != TokenBool {
			return nil, fmt.Errorf("column %s expects true or false, got %v", name, tok.Type)
		}
		return strings.ToLower(tok.Value) == "true", nil
	case kindDate:
		if tok.Type != TokenNumber && tok.Type != TokenString {
			return nil, fmt.Errorf("column %s expects a date, got %v", name, tok.Type)
		}
		t, err := timeconv.ParseDate(tok.Value)
		if err != nil {
			return nil, err
		}
		return truncateDay(t), nil
	default:
		if tok.Type != TokenString && tok.Type != TokenNumber && tok.Type != TokenIdent {
			return nil, fmt.Errorf("column %s expects a string, got %v", name, tok.Type)
		}
		return tok.Value, nil
	}
}

// truncateDay drops the time of day so that dates compare by calendar day.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
