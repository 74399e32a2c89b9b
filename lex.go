package calc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// lexer scans an expression string strictly left to right. There is no
// backtracking: every position either begins a token, is whitespace, or
// starts an illegal run that fails the scan.
type lexer struct {
	src string
	off int
	// col is the 1-based rune position of the next unread rune, kept for
	// error messages.
	col int
}

// tokenize scans an expression into its token sequence. It fails with a
// *CalcError naming the offending substring when any character cannot be
// classified.
func tokenize(src string) ([]token, error) {
	l := lexer{src: src, col: 1}
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenNone {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// next scans the next token. At the end of the input it returns a zero
// token with kind tokenNone.
func (l *lexer) next() (token, error) {
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		switch {
		case unicode.IsSpace(r):
			l.off += sz
			l.col++
		case '0' <= r && r <= '9', r == '.' && digit(l.src, l.off+1):
			return l.scanNum(), nil
		case r == '+', r == '-', r == '*', r == '/':
			tok := token{text: string(r), kind: tokenOp, pos: l.col}
			l.off += sz
			l.col++
			return tok, nil
		case r == '(':
			tok := token{text: "(", kind: tokenLeft, pos: l.col}
			l.off++
			l.col++
			return tok, nil
		case r == ')':
			tok := token{text: ")", kind: tokenRight, pos: l.col}
			l.off++
			l.col++
			return tok, nil
		default:
			return token{}, l.illegal()
		}
	}
	return token{}, nil
}

// scanNum scans a number literal: digits with at most one decimal point,
// or a point followed by digits. The caller has already checked that the
// current position starts one, so the result always parses as a finite
// non-negative float.
func (l *lexer) scanNum() token {
	start, col := l.off, l.col
	for l.off < len(l.src) && digit(l.src, l.off) {
		l.off++
		l.col++
	}
	if l.off < len(l.src) && l.src[l.off] == '.' {
		l.off++
		l.col++
		for l.off < len(l.src) && digit(l.src, l.off) {
			l.off++
			l.col++
		}
	}
	return token{text: l.src[start:l.off], kind: tokenNum, pos: col}
}

// illegal consumes the maximal run of characters that cannot begin a
// token and reports it. The scan never resumes past an illegal run.
func (l *lexer) illegal() error {
	start, col := l.off, l.col
	// The first rune is known bad; take it unconditionally so the run is
	// never empty.
	_, sz := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += sz
	l.col++
	for l.off < len(l.src) && !startsToken(l.src, l.off) {
		_, sz := utf8.DecodeRuneInString(l.src[l.off:])
		l.off += sz
		l.col++
	}
	return calcErrorf("illegal character sequence at column %d: %s", col, strconv.Quote(l.src[start:l.off]))
}

// startsToken reports whether the rune at byte offset i begins a token
// or whitespace.
func startsToken(s string, i int) bool {
	r, _ := utf8.DecodeRuneInString(s[i:])
	switch {
	case unicode.IsSpace(r):
		return true
	case '0' <= r && r <= '9':
		return true
	case r == '.':
		return digit(s, i+1)
	case r == '+', r == '-', r == '*', r == '/', r == '(', r == ')':
		return true
	}
	return false
}

// digit reports whether byte i of s is an ASCII digit.
func digit(s string, i int) bool {
	return i < len(s) && '0' <= s[i] && s[i] <= '9'
}
