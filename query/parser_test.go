package query

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"number comparison", "distance < 0.1"},
		{"boolean comparison", "hazardous = true"},
		{"string comparison", "name = 'Eros'"},
		{"numeric designation", "designation = 433"},
		{"date comparison", "date >= 2020-01-01"},
		{"quoted iso date", "date < '2020-01-01T00:00:00Z'"},
		{"AND expression", "distance < 0.1 AND velocity > 10"},
		{"OR expression", "diameter > 1 or hazardous = true"},
		{"parentheses", "(distance < 0.1 or velocity > 20) and hazardous != false"},
		{"column case", "Distance < 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.query)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.query, err)
			}
			if f == nil {
				t.Fatalf("Parse(%q) returned nil filter", tt.query)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"missing operator", "distance 0.1"},
		{"missing value", "distance <"},
		{"string for number", "distance < 'far'"},
		{"number for bool", "hazardous = 1"},
		{"bool ordering", "hazardous < true"},
		{"bad date", "date = 'not a date'"},
		{"unbalanced parentheses", "(distance < 1"},
		{"trailing tokens", "distance < 1 velocity > 2"},
		{"invalid character", "distance # 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.query); err == nil {
				t.Errorf("Parse(%q) expected error", tt.query)
			}
		})
	}
}

func TestParse_UnknownColumn(t *testing.T) {
	_, err := Parse("magnitude > 3")
	if !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
	if !strings.Contains(err.Error(), "distance") {
		t.Errorf("error should list available columns: %v", err)
	}
}

func TestParse_Limits(t *testing.T) {
	long := strings.Repeat(" ", MaxQueryLength+1)
	if _, err := Parse(long); !errors.Is(err, ErrQueryTooLong) {
		t.Errorf("expected ErrQueryTooLong, got %v", err)
	}

	many := strings.Repeat("distance < 1 and ", MaxTokens/4) + "distance < 1"
	if _, err := Parse(many); !errors.Is(err, ErrTooManyTokens) {
		t.Errorf("expected ErrTooManyTokens, got %v", err)
	}

	deep := strings.Repeat("(", MaxExpressionDepth+1) + "distance < 1" + strings.Repeat(")", MaxExpressionDepth+1)
	if _, err := Parse(deep); !errors.Is(err, ErrExpressionTooDeep) {
		t.Errorf("expected ErrExpressionTooDeep, got %v", err)
	}
}

func TestParse_Structure(t *testing.T) {
	f, err := Parse("distance < 0.5 or velocity > 1 and hazardous = true")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	or, ok := f.(*BinaryExpr)
	if !ok || or.Operator != TokenOr {
		t.Fatalf("expected top-level OR, got %#v", f)
	}
	and, ok := or.Right.(*BinaryExpr)
	if !ok || and.Operator != TokenAnd {
		t.Fatalf("expected AND to bind tighter than OR, got %#v", or.Right)
	}

	cmp, ok := or.Left.(*ComparisonExpr)
	if !ok {
		t.Fatalf("expected comparison, got %#v", or.Left)
	}
	if cmp.Column != "distance" || cmp.Operator != TokenLess || cmp.Value != 0.5 {
		t.Errorf("unexpected comparison %#v", cmp)
	}
}

func TestParse_DateValue(t *testing.T) {
	f, err := Parse("date = 2020-01-01")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cmp := f.(*ComparisonExpr)
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if got, ok := cmp.Value.(time.Time); !ok || !got.Equal(want) {
		t.Errorf("date value = %v, want %v", cmp.Value, want)
	}
}
