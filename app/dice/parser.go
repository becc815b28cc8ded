package dice

import (
	"regexp"
	"strconv"
)

// intRe matches an unsigned integer with no leading zero. It is always
// applied anchored at the cursor position, never searched.
var intRe = regexp.MustCompile(`[1-9][0-9]*`)

// Parser implements the dice-expression grammar over a Cursor:
//
//	value    := '(' roll ')' | INT 'd' INT | INT
//	operator := ('max'|'min'|'sum') value
//	          | ('top'|'bottom'|'count') INT value
//	          | value
//	roll     := operator ( ('+'|'-'|'*'|'/'|',') roll )?
//	line     := roll ( ';' ANYTHING )? EOF
//
// The binary tail recurses into a full roll, so operators group right to
// left: 10-5-2 parses as 10-(5-2).
type Parser struct {
	cur *Cursor
}

// ParseLine parses one full input line into an AST. The returned error is
// always a *ParseError carrying the offset of the first unmet expectation.
func ParseLine(text string) (Node, error) {
	p := &Parser{cur: NewCursor(text)}
	return p.expectLine()
}

// backtrack runs one grammar alternative and restores the cursor when the
// alternative reports no match, so that sibling alternatives can be tried
// from the same starting point. A nil node with a nil error is the no-match
// signal; it never escapes the parser.
func (p *Parser) backtrack(fn func() (Node, error)) (Node, error) {
	mark := p.cur.Mark()
	node, err := fn()
	if err == nil && node == nil {
		p.cur.Rollback(mark)
	}
	return node, err
}

func (p *Parser) acceptValue() (Node, error) {
	return p.backtrack(func() (Node, error) {
		if p.cur.AcceptPunct("(") {
			roll, err := p.acceptRoll()
			if err != nil {
				return nil, err
			}
			if err := p.cur.ExpectPunct(")"); err != nil {
				return nil, err
			}
			// Parentheses affect grouping only; the inner node is
			// returned unwrapped (nil if the parens were empty).
			return roll, nil
		}

		digits, ok := p.cur.AcceptRegexp(intRe)
		if !ok {
			return nil, nil
		}
		count, err := strconv.Atoi(digits)
		if err != nil {
			return nil, p.cur.Errorf("integer out of range")
		}
		// Only lowercase d separates a dice term here; the uppercase
		// variant is recognized by the display classifier but was never
		// accepted by the grammar.
		if p.cur.AcceptPunct("d") {
			sideDigits, err := p.cur.ExpectRegexp(intRe, "integer")
			if err != nil {
				return nil, err
			}
			sides, err := strconv.Atoi(sideDigits)
			if err != nil {
				return nil, p.cur.Errorf("integer out of range")
			}
			return &Die{Count: count, Sides: sides}, nil
		}
		return &Constant{Value: count}, nil
	})
}

func (p *Parser) acceptOperator() (Node, error) {
	return p.backtrack(func() (Node, error) {
		var op AggregateOp
		var n int
		switch {
		case p.cur.AcceptKeyword("max"):
			op = AggMax
		case p.cur.AcceptKeyword("min"):
			op = AggMin
		case p.cur.AcceptKeyword("sum"):
			op = AggSum
		case p.cur.AcceptKeyword("top"):
			op = AggTop
		case p.cur.AcceptKeyword("bottom"):
			op = AggBottom
		case p.cur.AcceptKeyword("count"):
			op = AggCount
		default:
			// Not an aggregate; fall through to a bare value.
			return p.acceptValue()
		}

		// Committed past the keyword: the counted operators require
		// their integer argument, and all of them require an operand.
		if op == AggTop || op == AggBottom || op == AggCount {
			digits, err := p.cur.ExpectRegexp(intRe, "integer")
			if err != nil {
				return nil, err
			}
			n, err = strconv.Atoi(digits)
			if err != nil {
				return nil, p.cur.Errorf("integer out of range")
			}
		}

		inner, err := p.acceptValue()
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, nil
		}
		return &UnaryOp{Op: op, N: n, Inner: inner}, nil
	})
}

var combinePunct = []struct {
	lit string
	op  CombineOp
}{
	{"+", CombSum},
	{"-", CombSubtract},
	{"*", CombMultiply},
	{"/", CombDivide},
	{",", CombConcat},
}

func (p *Parser) acceptRoll() (Node, error) {
	return p.backtrack(func() (Node, error) {
		left, err := p.acceptOperator()
		if err != nil || left == nil {
			return nil, err
		}

		for _, c := range combinePunct {
			if !p.cur.AcceptPunct(c.lit) {
				continue
			}
			right, err := p.expectRoll()
			if err != nil {
				return nil, err
			}
			return &BinaryOp{Op: c.op, Left: left, Right: right}, nil
		}
		return left, nil
	})
}

func (p *Parser) expectRoll() (Node, error) {
	roll, err := p.acceptRoll()
	if err != nil {
		return nil, err
	}
	if roll == nil {
		return nil, p.cur.Errorf("expected a roll")
	}
	return roll, nil
}

func (p *Parser) expectLine() (Node, error) {
	roll, err := p.expectRoll()
	if err != nil {
		return nil, err
	}
	// Everything after a ';' is a comment; anything else left over is an
	// error.
	if !p.cur.AtEOF() && !p.cur.AcceptPunct(";") {
		return nil, p.cur.Errorf("unexpected trailing input")
	}
	p.cur.SetEOF()
	return roll, nil
}
