package calc

import (
	"errors"
	"strconv"
)

// evalPostfix computes the value of a postfix token sequence with an
// operand stack. Underflow and a final stack holding anything but
// exactly one value are "incomplete expression" failures; a division
// whose right operand is exactly zero is "division by zero", checked
// before dividing. Near-zero divisors are deliberately not special-cased
// and may produce huge or infinite results.
func evalPostfix(tokens []token) (float64, error) {
	stack := make([]float64, 0, 8)
	for _, t := range tokens {
		switch t.kind {
		case tokenNum:
			v, err := strconv.ParseFloat(t.text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				// The lexer only emits literals that parse; literals too
				// large or small for a float64 saturate to what ParseFloat
				// returns, matching what arithmetic would do anyway.
				panic("calc: unscannable number literal " + strconv.Quote(t.text))
			}
			stack = append(stack, v)
		case tokenOp:
			if t.text == opNeg {
				if len(stack) < 1 {
					return 0, calcErrorf("incomplete expression")
				}
				stack[len(stack)-1] = -stack[len(stack)-1]
				continue
			}
			if len(stack) < 2 {
				return 0, calcErrorf("incomplete expression")
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			var v float64
			switch t.text {
			case "+":
				v = a + b
			case "-":
				v = a - b
			case "*":
				v = a * b
			case "/":
				if b == 0 {
					return 0, calcErrorf("division by zero")
				}
				v = a / b
			default:
				panic("calc: invalid operator " + strconv.Quote(t.text))
			}
			stack[len(stack)-1] = v
		default:
			panic("calc: invalid postfix token " + t.String())
		}
	}
	if len(stack) != 1 {
		return 0, calcErrorf("incomplete expression")
	}
	return stack[0], nil
}

// Calculate evaluates an infix arithmetic expression and returns its
// value. The expression may use decimal numbers, + - * /, unary minus,
// parentheses, and whitespace. Every failure is a *CalcError; the first
// failing pipeline stage wins and there are no partial results.
// Calculate keeps no state between calls and is safe for concurrent use.
func Calculate(expr string) (float64, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	rpn, err := toPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return evalPostfix(rpn)
}

// Postfix returns the postfix (reverse Polish) rendering of an infix
// expression without evaluating it, one token text per element. Unary
// minus appears as its internal symbol.
func Postfix(expr string) ([]string, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	rpn, err := toPostfix(tokens)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(rpn))
	for i, t := range rpn {
		texts[i] = t.text
	}
	return texts, nil
}
