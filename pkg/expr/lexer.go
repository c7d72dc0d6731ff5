package expr

import (
	"math"
	"unicode/utf8"

	"github.com/lemonberrylabs/arith/pkg/stack"
	"github.com/lemonberrylabs/arith/pkg/types"
)

// Lexer tokenizes an arithmetic expression string.
type Lexer struct {
	input  string
	pos    int
	tokens *stack.Stack[Token]
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, tokens: stack.New[Token]()}
}

// Tokenize scans the entire input. Popping the returned stack yields the
// tokens in the order they appear in the text. On error no tokens are
// returned.
func (l *Lexer) Tokenize() (*stack.Stack[Token], error) {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case isDigit(ch):
			l.tokens.Push(l.readNumber())
		case isSymbol(ch):
			l.tokens.Push(l.readSymbol())
		case isSpace(ch):
			l.pos++
		default:
			r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
			l.tokens.Clear()
			return nil, types.NewInvalidCharacterError(r)
		}
	}
	// Tokens were pushed in text order, so the top is the last one.
	return l.tokens.Reversed(), nil
}

// Tokenize is shorthand for NewLexer(input).Tokenize().
func Tokenize(input string) (*stack.Stack[Token], error) {
	return NewLexer(input).Tokenize()
}

// readNumber reads a run of digits and decimal points. Every digit after the
// first '.' counts as fractional, so "1.2.3" reads as 1.23.
func (l *Lexer) readNumber() Token {
	var result Number
	place := 0
	radix := false

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if isDigit(ch) {
			result = result*10 + Number(ch-'0')
			if radix {
				place++
			}
		} else if ch == '.' {
			radix = true
		} else {
			break
		}
		l.pos++
	}

	if radix {
		result /= Number(math.Pow(10, float64(place)))
	}
	return NumberToken(result)
}

// readSymbol reads a single operator or parenthesis.
func (l *Lexer) readSymbol() Token {
	ch := l.input[l.pos]
	l.pos++
	switch ch {
	case '+':
		return Token{Type: TokenPlus}
	case '-':
		return Token{Type: TokenMinus}
	case '*':
		return Token{Type: TokenTimes}
	case '/':
		return Token{Type: TokenDivide}
	case '(':
		return Token{Type: TokenLParen}
	default:
		return Token{Type: TokenRParen}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSymbol(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '(', ')':
		return true
	}
	return false
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
