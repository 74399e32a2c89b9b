// Package repl implements the line-based interactive front end. It is a
// thin adapter over calc.Calculate: it owns prompts, quit commands, and
// message formatting, and nothing of the expression grammar.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/calclab/calc"
)

// Loop reads expressions line by line and prints their values.
type Loop struct {
	in  io.Reader
	out io.Writer

	// Interactive enables the banner and a prompt before each line. Set
	// it when the input is a terminal.
	Interactive bool
}

// New creates a loop reading from in and printing to out.
func New(in io.Reader, out io.Writer) *Loop {
	return &Loop{in: in, out: out}
}

// Run reads lines until EOF or a quit command. A blank line does
// nothing; q, quit, and exit in any case stop the loop; any other line
// is evaluated and its formatted value printed. Evaluation failures are
// printed as error lines and the loop continues. Run itself only fails
// when reading the input does.
func (l *Loop) Run() error {
	if l.Interactive {
		fmt.Fprintln(l.out, "calc: arithmetic with + - * / and parentheses")
		fmt.Fprintln(l.out, "example: 1 + 2*(3-4) / -5")
		fmt.Fprintln(l.out, "type q to quit")
		fmt.Fprintln(l.out)
	}
	sc := bufio.NewScanner(l.in)
	for {
		if l.Interactive {
			fmt.Fprint(l.out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			if l.Interactive {
				fmt.Fprintln(l.out, "bye")
			}
			return nil
		}
		l.eval(line)
	}
	return sc.Err()
}

// eval evaluates one line. No failure escapes the loop: every error is
// displayed, whether or not it is a recognized calculator error.
func (l *Loop) eval(line string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(l.out, "error: %v\n", r)
		}
	}()
	v, err := calc.Calculate(line)
	if err != nil {
		fmt.Fprintf(l.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(l.out, calc.Format(v))
}
