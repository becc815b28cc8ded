package dice

import "strconv"

// Node is the interface all roller AST nodes implement. The node set is
// closed: evaluation dispatches exhaustively over the variants below.
type Node interface {
	nodeTag()
}

// Constant represents an integer literal.
type Constant struct {
	Value int
}

// Die represents a dice term like 2d6: Count dice with Sides sides each.
type Die struct {
	Count int
	Sides int
}

// UnaryOp applies an aggregate operator to the values of its operand.
// N carries the integer argument for AggTop, AggBottom, and AggCount;
// it is zero for the argument-less operators.
type UnaryOp struct {
	Op    AggregateOp
	N     int
	Inner Node
}

// BinaryOp combines the value sequences of two operands.
type BinaryOp struct {
	Op    CombineOp
	Left  Node
	Right Node
}

func (*Constant) nodeTag() {}
func (*Die) nodeTag()      {}
func (*UnaryOp) nodeTag()  {}
func (*BinaryOp) nodeTag() {}

// AggregateOp is a unary operator reducing or selecting from a sequence.
type AggregateOp int

const (
	AggMax AggregateOp = iota
	AggMin
	AggSum
	AggTop
	AggBottom
	AggCount
)

// label returns the audit label for the operator; n is the integer argument
// for the counted operators.
func (op AggregateOp) label(n int) string {
	switch op {
	case AggMax:
		return "max"
	case AggMin:
		return "min"
	case AggSum:
		return "sum"
	case AggTop:
		return "top " + strconv.Itoa(n)
	case AggBottom:
		return "bottom " + strconv.Itoa(n)
	case AggCount:
		return "count " + strconv.Itoa(n)
	default:
		return "unknown"
	}
}

// CombineOp is a binary operator merging two sequences into one.
type CombineOp int

const (
	CombSum CombineOp = iota
	CombSubtract
	CombMultiply
	CombDivide
	CombConcat
)

func (op CombineOp) label() string {
	switch op {
	case CombSum:
		return "Sum"
	case CombSubtract:
		return "Subtract"
	case CombMultiply:
		return "Multiply"
	case CombDivide:
		return "Divide"
	case CombConcat:
		return "Concat"
	default:
		return "unknown"
	}
}
