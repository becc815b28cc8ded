package dice

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// shape renders an AST's structure and labels for comparison, without
// rolling any dice.
func shape(n Node) string {
	switch n := n.(type) {
	case *Constant:
		return fmt.Sprintf("const(%d)", n.Value)
	case *Die:
		return fmt.Sprintf("%dd%d", n.Count, n.Sides)
	case *UnaryOp:
		return n.Op.label(n.N) + "(" + shape(n.Inner) + ")"
	case *BinaryOp:
		return n.Op.label() + "(" + shape(n.Left) + ", " + shape(n.Right) + ")"
	default:
		return fmt.Sprintf("?%T", n)
	}
}

func TestParseLineShapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5", "const(5)"},
		{"2d6", "2d6"},
		{"2 d 6", "2d6"},
		{"(2d6)", "2d6"}, // parens affect grouping only, no wrapper node
		{"((5))", "const(5)"},
		{"2d6 + 3", "Sum(2d6, const(3))"},
		{"10-5-2", "Subtract(const(10), Subtract(const(5), const(2)))"},
		{"1,2,3", "Concat(const(1), Concat(const(2), const(3)))"},
		{"max(3,7,2)", "max(Concat(const(3), Concat(const(7), const(2))))"},
		{"min (1, 2)", "min(Concat(const(1), const(2)))"},
		{"sum 4d10", "sum(4d10)"},
		{"top 3 (4d10)", "top 3(4d10)"},
		{"bottom 2 (1,2,3,4)", "bottom 2(Concat(const(1), Concat(const(2), Concat(const(3), const(4)))))"},
		{"count 2 4d6", "count 2(4d6)"},
		{"2d6 + top 3(4d10) * 2", "Sum(2d6, Multiply(top 3(4d10), const(2)))"},
		{"2d6 ; trailing comment is discarded", "2d6"},
		{"2d6;", "2d6"},
	}

	for _, tt := range tests {
		node, err := ParseLine(tt.input)
		if err != nil {
			t.Errorf("ParseLine(%q) error: %v", tt.input, err)
			continue
		}
		if got := shape(node); got != tt.want {
			t.Errorf("ParseLine(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantPos int
		wantMsg string
	}{
		{"2d", 2, "expected integer"}, // missing die size
		{"2d6 7", 4, "unexpected trailing input"},
		{"maximum", 0, "expected a roll"},    // keyword boundary: not max + imum
		{"top2(1,2)", 0, "expected a roll"},  // top2 is not keyword top
		{"top (1,2)", 4, "expected integer"}, // counted operator commits past keyword
		{"bottom x", 7, "expected integer"},
		{"()", 0, "expected a roll"},
		{"(2d6", 4, "expected punctuation `)`, got `<eof>`"},
		{"", 0, "expected a roll"},
		{"+5", 0, "expected a roll"},
		{"2d6 +", 5, "expected a roll"}, // committed past the operator
		{"5/0", 2, "expected a roll"},   // 0 never matches the integer pattern
		{"foo", 0, "expected a roll"},
	}

	for _, tt := range tests {
		_, err := ParseLine(tt.input)
		if err == nil {
			t.Errorf("ParseLine(%q) succeeded, want error", tt.input)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseLine(%q) error type %T, want *ParseError", tt.input, err)
			continue
		}
		if perr.Position() != tt.wantPos {
			t.Errorf("ParseLine(%q) error at %d, want %d", tt.input, perr.Position(), tt.wantPos)
		}
		if perr.Msg != tt.wantMsg {
			t.Errorf("ParseLine(%q) message %q, want %q", tt.input, perr.Msg, tt.wantMsg)
		}
	}
}

func TestUppercaseDieSeparatorRejected(t *testing.T) {
	// The classifier regex accepts 2D6 for display purposes, but the
	// grammar only ever accepted the lowercase separator.
	_, err := ParseLine("2D6")
	if err == nil {
		t.Fatal("2D6 should not parse")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T, want *ParseError", err)
	}
	if perr.Position() != 1 {
		t.Errorf("error at %d, want 1 (the D)", perr.Position())
	}
	if !IsDiceLabel("2D6") {
		t.Error("classifier should still recognize 2D6")
	}
}

func TestParseIdempotence(t *testing.T) {
	const input = "2d6 + top 3 (4d10) * 2"
	a, err := ParseLine(input)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseLine(input)
	if err != nil {
		t.Fatal(err)
	}
	if shape(a) != shape(b) {
		t.Errorf("parse is not stable: %s vs %s", shape(a), shape(b))
	}
}

func TestCommentRequiresRoll(t *testing.T) {
	// A line may end in a comment, but cannot consist of one: the grammar
	// wants a roll before the semicolon.
	_, err := ParseLine("; just a comment")
	if err == nil {
		t.Fatal("comment-only line should not parse")
	}
	if !strings.Contains(err.Error(), "expected a roll") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
