// Package calc implements a plain arithmetic calculator over text
// expressions, without handing the input to a general-purpose evaluator.
//
// An expression uses decimal numbers, the + - * / operators, unary minus,
// parentheses, and insignificant whitespace. Evaluation is a fixed
// pipeline: a lexer splits the text into tokens, a shunting-yard pass
// reorders them into postfix form, and a stack machine computes the value.
// Every failure Calculate reports is a *CalcError carrying a
// human-readable message.
package calc
