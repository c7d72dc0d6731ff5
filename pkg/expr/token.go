// Package expr tokenizes and evaluates arithmetic expressions over 32-bit
// floats. Evaluation uses precedence climbing directly on the token stack;
// no syntax tree is built.
package expr

import (
	"strconv"

	"github.com/lemonberrylabs/arith/pkg/types"
)

// Number is the numeric type every expression evaluates to.
type Number = float32

// Precedence is the binding strength of a binary operator. Higher binds
// tighter.
type Precedence uint8

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenNumber TokenType = iota // number literal
	TokenPlus                    // +
	TokenMinus                   // -
	TokenTimes                   // *
	TokenDivide                  // /
	TokenLParen                  // (
	TokenRParen                  // )
)

// Token represents a single lexical token. Value is only meaningful for
// TokenNumber.
type Token struct {
	Type  TokenType
	Value Number
}

// NumberToken returns a TokenNumber carrying v.
func NumberToken(v Number) Token {
	return Token{Type: TokenNumber, Value: v}
}

// String returns a debug-friendly representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenNumber:
		return "NUMBER"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenTimes:
		return "TIMES"
	case TokenDivide:
		return "DIVIDE"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// String renders the token the way it would appear in an expression.
func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return FormatNumber(t.Value)
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenTimes:
		return "*"
	case TokenDivide:
		return "/"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	default:
		return "?"
	}
}

// Precedence returns 2 for * and /, 1 for + and -, and 0 for everything else.
func (t Token) Precedence() Precedence {
	switch t.Type {
	case TokenTimes, TokenDivide:
		return 2
	case TokenPlus, TokenMinus:
		return 1
	default:
		return 0
	}
}

// IsBinary reports whether t is an infix operator.
func (t Token) IsBinary() bool {
	switch t.Type {
	case TokenPlus, TokenMinus, TokenTimes, TokenDivide:
		return true
	default:
		return false
	}
}

// IsUnary reports whether t can prefix an operand.
func (t Token) IsUnary() bool {
	switch t.Type {
	case TokenPlus, TokenMinus:
		return true
	default:
		return false
	}
}

// ApplyBinary combines left and right with the operator t.
func (t Token) ApplyBinary(left, right Number) (Number, error) {
	switch t.Type {
	case TokenPlus:
		return left + right, nil
	case TokenMinus:
		return left - right, nil
	case TokenTimes:
		return left * right, nil
	case TokenDivide:
		if right == 0 {
			return 0, types.NewZeroDivisionError()
		}
		return left / right, nil
	default:
		return 0, types.NewInvalidBinaryOperatorError()
	}
}

// ApplyUnary applies the prefix operator t to n.
func (t Token) ApplyUnary(n Number) (Number, error) {
	switch t.Type {
	case TokenPlus:
		return n, nil
	case TokenMinus:
		return -n, nil
	default:
		return 0, types.NewInvalidUnaryOperatorError()
	}
}

// FormatNumber renders n in plain decimal notation with the fewest digits
// that round-trip through a float32.
func FormatNumber(n Number) string {
	return strconv.FormatFloat(float64(n), 'f', -1, 32)
}
