package expr

import (
	"github.com/lemonberrylabs/arith/pkg/stack"
	"github.com/lemonberrylabs/arith/pkg/types"
)

// Eval tokenizes and evaluates input.
func Eval(input string) (Number, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens)
}

// Evaluate consumes tokens and returns the value of the expression they
// encode. It fails if any tokens remain once a complete expression has been
// read.
func Evaluate(tokens *stack.Stack[Token]) (Number, error) {
	result, err := evaluateGroup(tokens)
	if err != nil {
		return 0, err
	}
	if !tokens.Empty() {
		return 0, types.NewTrailingTokensError()
	}
	return result, nil
}

// evaluateGroup reads one primary and folds in every binary operator that
// follows. It stops at the first token that is not a binary operator, which
// lets a parenthesized group leave its ')' for the caller.
func evaluateGroup(tokens *stack.Stack[Token]) (Number, error) {
	left, err := evaluatePrimary(tokens)
	if err != nil {
		return 0, err
	}
	return evaluateExpression(tokens, left, 0)
}

// evaluatePrimary reads a number, a negated primary, or a parenthesized
// group. Only '-' is accepted as a prefix.
func evaluatePrimary(tokens *stack.Stack[Token]) (Number, error) {
	tok, ok := tokens.Pop()
	if !ok {
		return 0, types.NewUnexpectedTokenError()
	}

	switch tok.Type {
	case TokenLParen:
		result, err := evaluateGroup(tokens)
		if err != nil {
			return 0, err
		}
		if closing, ok := tokens.Pop(); !ok || closing.Type != TokenRParen {
			return 0, types.NewClosingParenError()
		}
		return result, nil
	case TokenMinus:
		operand, err := evaluatePrimary(tokens)
		if err != nil {
			return 0, err
		}
		return tok.ApplyUnary(operand)
	case TokenNumber:
		return tok.Value, nil
	default:
		return 0, types.NewUnexpectedTokenError()
	}
}

// precedenceIfReducible returns the precedence of the next token if it is a
// binary operator binding strictly tighter than minimum.
func precedenceIfReducible(tokens *stack.Stack[Token], minimum Precedence) (Precedence, bool) {
	tok, ok := tokens.Peek()
	if !ok || !tok.IsBinary() || tok.Precedence() <= minimum {
		return 0, false
	}
	return tok.Precedence(), true
}

// popIfReducible pops the next token if it is a binary operator binding at
// least as tightly as minimum.
func popIfReducible(tokens *stack.Stack[Token], minimum Precedence) (Token, bool) {
	tok, ok := tokens.Peek()
	if !ok || !tok.IsBinary() || tok.Precedence() < minimum {
		return Token{}, false
	}
	return tokens.Pop()
}

// evaluateExpression is the precedence climbing loop. Operators of equal
// precedence associate to the left; a tighter operator after the right
// operand is folded into it first.
func evaluateExpression(tokens *stack.Stack[Token], left Number, minimum Precedence) (Number, error) {
	for {
		operator, ok := popIfReducible(tokens, minimum)
		if !ok {
			return left, nil
		}

		right, err := evaluatePrimary(tokens)
		if err != nil {
			return 0, err
		}

		for {
			next, ok := precedenceIfReducible(tokens, operator.Precedence())
			if !ok {
				break
			}
			right, err = evaluateExpression(tokens, right, next)
			if err != nil {
				return 0, err
			}
		}

		left, err = operator.ApplyBinary(left, right)
		if err != nil {
			return 0, err
		}
	}
}
