package calc

import "strconv"

// token is a single lexical element of an expression. Tokens are values
// and are never modified after the lexer emits them.
type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal number literal. The literal never carries a
	// sign; negation is the parser's business.
	tokenNum
	// tokenOp is an operator. The lexer emits only + - * /; the parser
	// rewrites unary minus to opNeg during disambiguation.
	tokenOp
	// tokenLeft is an open parenthesis.
	tokenLeft
	// tokenRight is a close parenthesis.
	tokenRight
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenLeft:
		return "Left"
	case tokenRight:
		return "Right"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// opNeg is the synthetic unary minus symbol. It never appears in lexer
// output; toPostfix synthesizes it when a - token is in prefix position.
const opNeg = "u-"

// precedence ranks operators for the shunting yard. A higher rank binds
// tighter.
var precedence = map[string]int{
	"+":   1,
	"-":   1,
	"*":   2,
	"/":   2,
	opNeg: 3,
}

// rightAssoc marks operators that associate to the right. Every binary
// operator here is left-associative; only unary minus is right. With no
// exponentiation operator the flag is not observable, but the popping
// rule encodes it so the algorithm stays correct if one is added.
var rightAssoc = map[string]bool{
	opNeg: true,
}
