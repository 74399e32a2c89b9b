// Package main is the calc command line front end.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/calclab/calc"
	"github.com/calclab/calc/internal/repl"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errExpr marks an expression failure whose message has already been
// printed; main turns it into exit status 2.
var errExpr = errors.New("expression failed")

var rootCmd = &cobra.Command{
	Use:   "calc [expression...]",
	Short: "Evaluate arithmetic expressions without eval",
	Long: `calc evaluates arithmetic with + - * /, unary minus, and parentheses,
parsing the expression itself rather than handing it to a code evaluator.

With no arguments calc reads expressions interactively, one per line.
Arguments are joined with spaces into a single expression.`,
	Example: `  calc "1 + 2*(3-4) / -5"
  calc -- "-(1+2)*3"
  calc --postfix "2+3*4"
  calc`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("calc version {{.Version}}\n")
	rootCmd.Flags().Bool("postfix", false, "print the postfix form instead of evaluating")
}

func main() {
	err := rootCmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, errExpr):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	expr := strings.TrimSpace(strings.Join(args, " "))
	if expr == "" {
		l := repl.New(cmd.InOrStdin(), cmd.OutOrStdout())
		l.Interactive = term.IsTerminal(int(os.Stdin.Fd()))
		return l.Run()
	}
	if rpn, _ := cmd.Flags().GetBool("postfix"); rpn {
		texts, err := calc.Postfix(expr)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
			return errExpr
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(texts, " "))
		return nil
	}
	v, err := calc.Calculate(expr)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return errExpr
	}
	fmt.Fprintln(cmd.OutOrStdout(), calc.Format(v))
	return nil
}
