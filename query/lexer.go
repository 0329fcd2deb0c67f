package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes filter expressions
type Lexer struct {
	input string
	pos   int
	ch    rune
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar decodes the next UTF-8 character. pos is the byte offset of
// the character after ch.
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
		l.pos = len(l.input) + 1
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.pos += width
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a quoted string
func (l *Lexer) readString(quote rune) string {
	var result strings.Builder
	l.readChar() // skip opening quote

	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				result.WriteRune('\n')
			case 't':
				result.WriteRune('\t')
			default:
				result.WriteRune(l.ch)
			}
		} else {
			result.WriteRune(l.ch)
		}
		l.readChar()
	}

	if l.ch == quote {
		l.readChar() // skip closing quote
	}

	return result.String()
}

// readNumber reads a number. Dates such as 2020-01-01 are read as one
// number token and typed by the parser.
func (l *Lexer) readNumber() string {
	var result strings.Builder
	for unicode.IsDigit(l.ch) || l.ch == '.' || l.ch == '-' || l.ch == 'e' || l.ch == 'E' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

func (l *Lexer) readIdentifier() string {
	var result strings.Builder
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	var tok Token

	switch l.ch {
	case 0:
		tok = Token{Type: TokenEOF, Value: ""}
	case '=':
		tok = Token{Type: TokenEqual, Value: "="}
		l.readChar()
		if l.ch == '=' {
			l.readChar()
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenNotEqual, Value: "!="}
			l.readChar()
		} else {
			tok = Token{Type: TokenError, Value: "!"}
			l.readChar()
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenLessEqual, Value: "<="}
			l.readChar()
		} else {
			tok = Token{Type: TokenLess, Value: "<"}
			l.readChar()
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenGreaterEqual, Value: ">="}
			l.readChar()
		} else {
			tok = Token{Type: TokenGreater, Value: ">"}
			l.readChar()
		}
	case '(':
		tok = Token{Type: TokenLParen, Value: "("}
		l.readChar()
	case ')':
		tok = Token{Type: TokenRParen, Value: ")"}
		l.readChar()
	case '\'', '"':
		quote := l.ch
		tok = Token{Type: TokenString, Value: l.readString(quote)}
	default:
		if unicode.IsDigit(l.ch) || l.ch == '-' || l.ch == '.' {
			value := l.readNumber()
			tok = Token{Type: TokenNumber, Value: value}
		} else if unicode.IsLetter(l.ch) || l.ch == '_' {
			value := l.readIdentifier()
			tok = Token{Type: identifierType(value), Value: value}
		} else {
			tok = Token{Type: TokenError, Value: string(l.ch)}
			l.readChar()
		}
	}

	return tok
}

// identifierType determines if an identifier is a keyword. Keywords are
// case-insensitive.
func identifierType(ident string) TokenType {
	switch strings.ToLower(ident) {
	case "and":
		return TokenAnd
	case "or":
		return TokenOr
	case "true", "false":
		return TokenBool
	default:
		return TokenIdent
	}
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}

	return tokens
}
