package query

import (
	"errors"
	"fmt"
)

// Limits on expression input.
const (
	// MaxQueryLength is the maximum allowed expression length (64KB)
	MaxQueryLength = 64 * 1024

	// MaxTokens is the maximum number of tokens in an expression
	MaxTokens = 1000

	// MaxExpressionDepth is the maximum nesting depth for expressions
	MaxExpressionDepth = 100
)

var (
	// ErrQueryTooLong is returned when an expression exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("query too long")

	// ErrTooManyTokens is returned when an expression has too many tokens
	ErrTooManyTokens = errors.New("too many tokens in query")

	// ErrExpressionTooDeep is returned when nesting exceeds MaxExpressionDepth
	ErrExpressionTooDeep = errors.New("expression nesting too deep")

	// ErrUnknownColumn is returned for a column name that no approach has
	ErrUnknownColumn = errors.New("unknown column")
)

// ValidateQuery checks the raw expression length
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidateTokens validates token count
func ValidateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return nil
}

// ExpressionDepthCounter tracks expression nesting depth
type ExpressionDepthCounter struct {
	depth    int
	maxDepth int
}

// NewExpressionDepthCounter creates a new depth counter
func NewExpressionDepthCounter() *ExpressionDepthCounter {
	return &ExpressionDepthCounter{depth: 0, maxDepth: MaxExpressionDepth}
}

// Enter increments depth and returns error if limit exceeded
func (c *ExpressionDepthCounter) Enter() error {
	c.depth++
	if c.depth > c.maxDepth {
		return fmt.Errorf("%w: %d (max %d)", ErrExpressionTooDeep, c.depth, c.maxDepth)
	}
	return nil
}

// Exit decrements depth
func (c *ExpressionDepthCounter) Exit() {
	c.depth--
}
