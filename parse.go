package calc

// toPostfix converts an infix token sequence to postfix (reverse Polish)
// order with the shunting-yard algorithm. The result holds only number
// and operator tokens; parentheses are structural and are consumed here.
// Mismatched parentheses fail with a *CalcError.
func toPostfix(tokens []token) ([]token, error) {
	output := make([]token, 0, len(tokens))
	var stack []token
	for i, t := range tokens {
		switch t.kind {
		case tokenNum:
			output = append(output, t)
		case tokenOp:
			op := t
			if unaryMinus(tokens, i) {
				op.text = opNeg
			}
			// Pop while the top operator binds tighter, or equally tight
			// with a left-associative incoming operator.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOp {
					break
				}
				if precedence[top.text] < precedence[op.text] {
					break
				}
				if precedence[top.text] == precedence[op.text] && rightAssoc[op.text] {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, op)
		case tokenLeft:
			stack = append(stack, t)
		case tokenRight:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenLeft {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, calcErrorf("mismatched parentheses: no ( for ) at column %d", t.pos)
			}
		default:
			panic("calc: invalid token " + t.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenLeft {
			return nil, calcErrorf("mismatched parentheses: ( at column %d is never closed", top.pos)
		}
		output = append(output, top)
	}
	return output, nil
}

// unaryMinus reports whether the - at index i negates its operand rather
// than subtracting. It does iff it opens the expression or follows
// another operator or an open parenthesis. This is a local decision:
// no lookahead, no backtracking.
func unaryMinus(tokens []token, i int) bool {
	if tokens[i].text != "-" {
		return false
	}
	if i == 0 {
		return true
	}
	switch tokens[i-1].kind {
	case tokenOp, tokenLeft:
		return true
	}
	return false
}
