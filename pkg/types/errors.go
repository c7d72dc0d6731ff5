// Package types defines the error kind shared by the tokenizer, the
// evaluator and the outer surfaces.
package types

import (
	"errors"
	"fmt"
)

// Messages carried by ArithmeticError. Errors are told apart by message
// only.
const (
	MsgUnexpectedToken        = "unexpected token"
	MsgExpectedClosingParen   = "expected closing paren"
	MsgDivisionByZero         = "division by zero"
	MsgNotAllParsed           = "not all of expression was parsed"
	MsgInvalidBinaryOperator  = "invalid binary operator"
	MsgInvalidUnaryOperator   = "invalid unary operator"
	msgInvalidCharacterPrefix = "invalid character"
)

// ArithmeticError is the single failure kind produced while tokenizing or
// evaluating an expression.
type ArithmeticError struct {
	Message string
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	return e.Message
}

// AsArithmeticError unwraps err to an *ArithmeticError, if it holds one.
func AsArithmeticError(err error) (*ArithmeticError, bool) {
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Common error constructors.

// NewInvalidCharacterError reports a character the tokenizer does not accept.
func NewInvalidCharacterError(ch rune) *ArithmeticError {
	return &ArithmeticError{Message: fmt.Sprintf("%s %c", msgInvalidCharacterPrefix, ch)}
}

// NewUnexpectedTokenError reports a token found where a primary was expected.
func NewUnexpectedTokenError() *ArithmeticError {
	return &ArithmeticError{Message: MsgUnexpectedToken}
}

// NewClosingParenError reports a parenthesized group that was never closed.
func NewClosingParenError() *ArithmeticError {
	return &ArithmeticError{Message: MsgExpectedClosingParen}
}

// NewZeroDivisionError creates a division by zero error.
func NewZeroDivisionError() *ArithmeticError {
	return &ArithmeticError{Message: MsgDivisionByZero}
}

// NewTrailingTokensError reports tokens left over after a complete expression.
func NewTrailingTokensError() *ArithmeticError {
	return &ArithmeticError{Message: MsgNotAllParsed}
}

// NewInvalidBinaryOperatorError is returned when binary application is asked
// of a token that is not a binary operator.
func NewInvalidBinaryOperatorError() *ArithmeticError {
	return &ArithmeticError{Message: MsgInvalidBinaryOperator}
}

// NewInvalidUnaryOperatorError is the unary counterpart of
// NewInvalidBinaryOperatorError.
func NewInvalidUnaryOperatorError() *ArithmeticError {
	return &ArithmeticError{Message: MsgInvalidUnaryOperator}
}
