// Package query selects close approaches by their own attributes and those
// of their linked object.
//
// Filters can be written as expressions, e.g.
//
//	f, err := query.Parse("distance < 0.1 and (hazardous = true or velocity >= 20)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matches := query.Apply(approaches, f)
//
// or built from the explorer's fixed filter options with FromOptions.
//
// Columns: date, distance, velocity, diameter, hazardous, designation, name.
// Operators: = != < > <= >=, combined with AND / OR and parentheses.
package query

import "github.com/vegasq/neocat/model"

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenAnd TokenType = iota
	TokenOr

	// Operators
	TokenEqual        // =
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Grouping
	TokenLParen
	TokenRParen

	// Literals
	TokenString
	TokenNumber
	TokenIdent
	TokenBool

	// Special
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenAnd:          "AND",
	TokenOr:           "OR",
	TokenEqual:        "=",
	TokenNotEqual:     "!=",
	TokenLess:         "<",
	TokenGreater:      ">",
	TokenLessEqual:    "<=",
	TokenGreaterEqual: ">=",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenString:       "string",
	TokenNumber:       "number",
	TokenIdent:        "identifier",
	TokenBool:         "boolean",
	TokenEOF:          "end of input",
	TokenError:        "invalid character",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// Filter decides whether a close approach is selected.
type Filter interface {
	Match(approach *model.CloseApproach) bool
}

// BinaryExpr combines two filters with AND or OR.
type BinaryExpr struct {
	Left     Filter
	Operator TokenType // TokenAnd or TokenOr
	Right    Filter
}

// ComparisonExpr compares one column of an approach against a constant.
type ComparisonExpr struct {
	Column   string
	Operator TokenType
	Value    interface{}
}

// Match evaluates a binary expression
func (b *BinaryExpr) Match(approach *model.CloseApproach) bool {
	switch b.Operator {
	case TokenAnd:
		return b.Left.Match(approach) && b.Right.Match(approach)
	case TokenOr:
		return b.Left.Match(approach) || b.Right.Match(approach)
	default:
		return false
	}
}

// Match evaluates a comparison. An approach whose column value is unknown,
// such as an unlinked approach or an object without a diameter estimate,
// never matches.
func (c *ComparisonExpr) Match(approach *model.CloseApproach) bool {
	col, ok := columns[c.Column]
	if !ok {
		return false
	}
	value, known := col.value(approach)
	if !known {
		return false
	}
	return compare(value, c.Operator, c.Value)
}
