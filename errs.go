package calc

import "fmt"

// CalcError is the error kind for every failure the calculator reports:
// unscannable input, mismatched parentheses, an incomplete expression,
// and division by zero. It carries only a human-readable message; front
// ends display the message and never reinterpret it.
type CalcError struct {
	msg string
}

func (err *CalcError) Error() string {
	return err.msg
}

// calcErrorf is a shortcut to build a *CalcError from a format string.
func calcErrorf(format string, args ...any) *CalcError {
	return &CalcError{msg: fmt.Sprintf(format, args...)}
}
