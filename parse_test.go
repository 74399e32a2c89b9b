package calc

import (
	"errors"
	"strings"
	"testing"
)

// postfix is a test shortcut running the lexer and converter together
// and flattening the output to token texts.
func postfix(t *testing.T, src string) ([]string, error) {
	t.Helper()
	tokens, err := tokenize(src)
	if err != nil {
		t.Fatalf("scanning %q: %v", src, err)
	}
	rpn, err := toPostfix(tokens)
	if err != nil {
		return nil, err
	}
	v := make([]string, len(rpn))
	for i, tok := range rpn {
		if tok.kind != tokenNum && tok.kind != tokenOp {
			t.Errorf("converting %q: %v in postfix output", src, tok)
		}
		v[i] = tok.text
	}
	return v, nil
}

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"num", "7", "7"},
		{"add", "2+3", "2 3 +"},
		{"left-assoc", "4-5-6", "4 5 - 6 -"},
		{"precedence", "2+3*4", "2 3 4 * +"},
		{"parens", "(2+3)*4", "2 3 + 4 *"},
		{"nested", "((1+2))", "1 2 +"},
		{"div-mul", "8/4*2", "8 4 / 2 *"},
		{"neg-first", "-5+2", "5 u- 2 +"},
		{"neg-after-op", "3--2", "3 2 u- -"},
		{"neg-after-lparen", "(-5)", "5 u-"},
		{"neg-group", "-(1+2)*3", "1 2 + u- 3 *"},
		{"neg-stack", "--3", "3 u- u-"},
		{"neg-binds-tighter", "-2*3", "2 u- 3 *"},
		{"binary-after-num", "5-2", "5 2 -"},
		{"binary-after-rparen", "(1)-2", "1 2 -"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := postfix(t, c.src)
			if err != nil {
				t.Fatalf("converting %q: %v", c.src, err)
			}
			if s := strings.Join(got, " "); s != c.want {
				t.Errorf("converting %q: want %q, got %q", c.src, c.want, s)
			}
		})
	}
}

func TestToPostfixParens(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unclosed", "(1+2"},
		{"unopened", "1+2)"},
		{"lone-left", "("},
		{"lone-right", ")"},
		{"inner", "((1+2)"},
		{"crossed", ")("},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := postfix(t, c.src)
			if err == nil {
				t.Fatalf("converting %q: no error, output %q", c.src, got)
			}
			var cerr *CalcError
			if !errors.As(err, &cerr) {
				t.Fatalf("converting %q: error %#v is not *CalcError", c.src, err)
			}
			if !strings.Contains(err.Error(), "mismatched parentheses") {
				t.Errorf("converting %q: error %q does not mention mismatched parentheses", c.src, err)
			}
		})
	}
}

func TestUnaryMinus(t *testing.T) {
	cases := []struct {
		src   string
		unary []bool
	}{
		{"-1", []bool{true}},
		{"1-2", []bool{false}},
		{"1--2", []bool{false, true}},
		{"(-1)", []bool{true}},
		{"1-(-2)", []bool{false, true}},
		{"3 - -2", []bool{false, true}},
		{"1*-2", []bool{true}},
	}
	for _, c := range cases {
		tokens, err := tokenize(c.src)
		if err != nil {
			t.Fatalf("scanning %q: %v", c.src, err)
		}
		var got []bool
		for i, tok := range tokens {
			if tok.kind == tokenOp && tok.text == "-" {
				got = append(got, unaryMinus(tokens, i))
			}
		}
		if len(got) != len(c.unary) {
			t.Errorf("%q: want %v, got %v", c.src, c.unary, got)
			continue
		}
		for i := range got {
			if got[i] != c.unary[i] {
				t.Errorf("%q: minus %d: want unary=%v, got %v", c.src, i, c.unary[i], got[i])
			}
		}
	}
}
