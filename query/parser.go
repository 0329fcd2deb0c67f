package query

import (
	"fmt"
	"strings"
)

// Parser parses filter expressions into a Filter tree
type Parser struct {
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
	}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// expect checks if current token matches expected type and advances
func (p *Parser) expect(tokType TokenType) error {
	if p.current().Type != tokType {
		return fmt.Errorf("expected %v, got %v", tokType, p.current().Type)
	}
	p.advance()
	return nil
}

// Parse parses a filter expression such as
// "distance < 0.05 and hazardous = true".
func Parse(expr string) (Filter, error) {
	if err := ValidateQuery(expr); err != nil {
		return nil, err
	}

	tokens := Tokenize(expr)

	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	parser := NewParser(tokens)
	filter, err := parser.parseOr()
	if err != nil {
		return nil, err
	}

	if tok := parser.current(); tok.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected %v %q after expression", tok.Type, tok.Value)
	}
	return filter, nil
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (Filter, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenOr,
			Right:    right,
		}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (Filter, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenAnd,
			Right:    right,
		}
	}

	return left, nil
}

// parsePrimary parses a parenthesized expression or a comparison
func (p *Parser) parsePrimary() (Filter, error) {
	if p.current().Type != TokenLParen {
		return p.parseComparison()
	}

	p.advance()
	inner, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRParen); err != nil {
		return nil, fmt.Errorf("unbalanced parentheses: %w", err)
	}
	return inner, nil
}

// parseComparison parses: column operator value
func (p *Parser) parseComparison() (Filter, error) {
	if p.current().Type != TokenIdent {
		return nil, fmt.Errorf("expected column name, got %v", p.current().Type)
	}
	column := strings.ToLower(p.current().Value)
	p.advance()

	operator := p.current().Type
	switch operator {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		p.advance()
	default:
		return nil, fmt.Errorf("expected comparison operator after %s, got %v", column, operator)
	}

	value, err := bindValue(column, p.current())
	if err != nil {
		return nil, err
	}
	p.advance()

	if _, isBool := value.(bool); isBool && operator != TokenEqual && operator != TokenNotEqual {
		return nil, fmt.Errorf("column %s only supports = and !=", column)
	}

	return &ComparisonExpr{
		Column:   column,
		Operator: operator,
		Value:    value,
	}, nil
}
