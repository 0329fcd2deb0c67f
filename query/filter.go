package query

import (
	"iter"
	"time"

	"github.com/vegasq/neocat/model"
)

// compare compares two values of the same column type using the given
// operator. Values of different types never match.
func compare(left interface{}, operator TokenType, right interface{}) bool {
	switch l := left.(type) {
	case float64:
		r, ok := right.(float64)
		return ok && compareNumbers(l, operator, r)
	case string:
		r, ok := right.(string)
		return ok && compareStrings(l, operator, r)
	case bool:
		r, ok := right.(bool)
		return ok && compareBools(l, operator, r)
	case time.Time:
		r, ok := right.(time.Time)
		return ok && compareTimes(l, operator, r)
	default:
		return false
	}
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator TokenType, right float64) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive)
func compareStrings(left string, operator TokenType, right string) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareBools compares two booleans
func compareBools(left bool, operator TokenType, right bool) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	default:
		return false
	}
}

// compareTimes compares two instants
func compareTimes(left time.Time, operator TokenType, right time.Time) bool {
	switch operator {
	case TokenEqual:
		return left.Equal(right)
	case TokenNotEqual:
		return !left.Equal(right)
	case TokenLess:
		return left.Before(right)
	case TokenGreater:
		return left.After(right)
	case TokenLessEqual:
		return !left.After(right)
	case TokenGreaterEqual:
		return !left.Before(right)
	default:
		return false
	}
}

// MatchAll reports whether approach satisfies every filter. No filters
// match everything.
func MatchAll(approach *model.CloseApproach, filters ...Filter) bool {
	for _, f := range filters {
		if f != nil && !f.Match(approach) {
			return false
		}
	}
	return true
}

// Apply returns the approaches of seq that satisfy every filter, lazily and
// in order.
func Apply(seq iter.Seq[*model.CloseApproach], filters ...Filter) iter.Seq[*model.CloseApproach] {
	return func(yield func(*model.CloseApproach) bool) {
		for a := range seq {
			if MatchAll(a, filters...) && !yield(a) {
				return
			}
		}
	}
}

// Limit yields at most n items of seq. n <= 0 means no limit.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}
