package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrDivisionByZero indicates the right operand of a division summed to zero.
var ErrDivisionByZero = errors.New("division by zero")

// rng is the process-wide randomness source for dice rolls.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Seed reseeds the dice randomness source. A fixed seed makes every
// subsequent roll sequence deterministic.
func Seed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// Result pairs the integer sequence a node evaluated to with a
// human-readable label and the child results, forming an audit tree that
// mirrors the AST shape exactly.
type Result struct {
	Values   []int
	Label    string
	Children []*Result
}

// Total returns the sum of the result's values.
func (r *Result) Total() int {
	total := 0
	for _, v := range r.Values {
		total += v
	}
	return total
}

// RenderAudit formats the audit tree as display lines, depth-first in
// pre-order, each level indented one more indent unit. Coloring is up to the
// renderer.
func (r *Result) RenderAudit(indent string) []string {
	var lines []string
	r.renderAudit("", indent, &lines)
	return lines
}

func (r *Result) renderAudit(prefix, indent string, lines *[]string) {
	vals := make([]string, len(r.Values))
	for i, v := range r.Values {
		vals[i] = strconv.Itoa(v)
	}
	*lines = append(*lines, prefix+r.Label+" : "+strings.Join(vals, ", "))
	for _, child := range r.Children {
		child.renderAudit(prefix+indent, indent, lines)
	}
}

// diceLabelRe classifies NdK-shaped labels for display. Unlike the grammar's
// separator, it accepts either case of d.
var diceLabelRe = regexp.MustCompile(`^[1-9][0-9]*\s*[dD]\s*[1-9][0-9]*$`)

// IsDiceLabel reports whether an audit label names a dice term, so renderers
// can color rolled values differently from constants and calculations.
func IsDiceLabel(label string) bool {
	return diceLabelRe.MatchString(label)
}

// Roll evaluates a node, sampling the randomness source for each dice term.
// Calling it again on the same tree re-rolls. The only runtime failure is
// ErrDivisionByZero.
func Roll(n Node) (*Result, error) {
	switch n := n.(type) {
	case *Constant:
		return &Result{Values: []int{n.Value}, Label: "const"}, nil

	case *Die:
		values := make([]int, n.Count)
		for i := range values {
			values[i] = rollDie(rng, n.Sides)
		}
		sort.Ints(values)
		label := fmt.Sprintf("%dd%d", n.Count, n.Sides)
		return &Result{Values: values, Label: label}, nil

	case *UnaryOp:
		inner, err := Roll(n.Inner)
		if err != nil {
			return nil, err
		}
		values := aggregate(n.Op, n.N, inner.Values)
		return &Result{
			Values:   values,
			Label:    n.Op.label(n.N),
			Children: []*Result{inner},
		}, nil

	case *BinaryOp:
		left, err := Roll(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Roll(n.Right)
		if err != nil {
			return nil, err
		}
		values, err := combine(n.Op, left.Values, right.Values)
		if err != nil {
			return nil, err
		}
		return &Result{
			Values:   values,
			Label:    n.Op.label(),
			Children: []*Result{left, right},
		}, nil

	default:
		// Unreachable: the node set is closed.
		return nil, fmt.Errorf("unknown node type %T", n)
	}
}

func aggregate(op AggregateOp, n int, values []int) []int {
	switch op {
	case AggMax:
		m := values[0]
		for _, v := range values[1:] {
			if v > m {
				m = v
			}
		}
		return []int{m}

	case AggMin:
		m := values[0]
		for _, v := range values[1:] {
			if v < m {
				m = v
			}
		}
		return []int{m}

	case AggSum:
		return []int{sum(values)}

	case AggTop:
		sorted := sortedCopy(values)
		if n >= len(sorted) {
			return sorted
		}
		return sorted[len(sorted)-n:]

	case AggBottom:
		sorted := sortedCopy(values)
		if n >= len(sorted) {
			return sorted
		}
		return sorted[:n]

	case AggCount:
		count := 0
		for _, v := range values {
			if v == n {
				count++
			}
		}
		return []int{count}

	default:
		return values
	}
}

func combine(op CombineOp, left, right []int) ([]int, error) {
	switch op {
	case CombSum:
		return []int{sum(left) + sum(right)}, nil
	case CombSubtract:
		return []int{sum(left) - sum(right)}, nil
	case CombMultiply:
		return []int{sum(left) * sum(right)}, nil
	case CombDivide:
		divisor := sum(right)
		if divisor == 0 {
			return nil, ErrDivisionByZero
		}
		return []int{sum(left) / divisor}, nil
	case CombConcat:
		merged := make([]int, 0, len(left)+len(right))
		merged = append(merged, left...)
		merged = append(merged, right...)
		sort.Ints(merged)
		return merged, nil
	default:
		return nil, fmt.Errorf("unknown combine operator %d", op)
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func sortedCopy(values []int) []int {
	cp := make([]int, len(values))
	copy(cp, values)
	sort.Ints(cp)
	return cp
}

// rollDie rolls a die with the provided number of sides.
func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
