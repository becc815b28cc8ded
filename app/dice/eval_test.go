package dice

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func mustParse(t *testing.T, input string) Node {
	t.Helper()
	node, err := ParseLine(input)
	if err != nil {
		t.Fatalf("ParseLine(%q): %v", input, err)
	}
	return node
}

func mustRoll(t *testing.T, input string) *Result {
	t.Helper()
	result, err := Roll(mustParse(t, input))
	if err != nil {
		t.Fatalf("Roll(%q): %v", input, err)
	}
	return result
}

func TestDieRoll(t *testing.T) {
	Seed(1)

	for _, tt := range []struct{ count, sides int }{
		{1, 6}, {2, 6}, {4, 10}, {10, 1}, {3, 20},
	} {
		node := &Die{Count: tt.count, Sides: tt.sides}
		result, err := Roll(node)
		if err != nil {
			t.Fatalf("Roll(%dd%d): %v", tt.count, tt.sides, err)
		}
		if len(result.Values) != tt.count {
			t.Errorf("%dd%d: got %d values", tt.count, tt.sides, len(result.Values))
		}
		for _, v := range result.Values {
			if v < 1 || v > tt.sides {
				t.Errorf("%dd%d: value %d out of range", tt.count, tt.sides, v)
			}
		}
		if !sort.IntsAreSorted(result.Values) {
			t.Errorf("%dd%d: values %v not sorted ascending", tt.count, tt.sides, result.Values)
		}
	}
}

func TestDieLabel(t *testing.T) {
	Seed(1)
	result := mustRoll(t, "4d10")
	if result.Label != "4d10" {
		t.Errorf("label = %q, want 4d10", result.Label)
	}
}

func TestConstant(t *testing.T) {
	node := mustParse(t, "5")
	for i := 0; i < 3; i++ {
		result, err := Roll(node)
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Values) != 1 || result.Values[0] != 5 {
			t.Errorf("roll %d: values = %v, want [5]", i, result.Values)
		}
		if result.Label != "const" {
			t.Errorf("label = %q, want const", result.Label)
		}
	}
}

func TestDeterministicTotals(t *testing.T) {
	Seed(1)

	tests := []struct {
		input string
		want  int
	}{
		{"2 + 3", 5},
		{"10 - 4", 6},
		{"3 * 7", 21},
		{"10 / 3", 3}, // truncating integer division
		{"10-5-2", 7}, // right-associative: 10 - (5 - 2)
		{"10/5/2", 5}, // 10 / (5 / 2) = 10 / 2
		{"2 * 3 + 1", 8},
		{"(1,2,3,4)", 10},
	}

	for _, tt := range tests {
		result := mustRoll(t, tt.input)
		if got := result.Total(); got != tt.want {
			t.Errorf("Roll(%q) total = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestAggregateValues(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"1,2,3,4", []int{1, 2, 3, 4}}, // concat sorts ascending
		{"3,1,2", []int{1, 2, 3}},
		{"top 2 (1,2,3,4)", []int{3, 4}},
		{"bottom 2 (1,2,3,4)", []int{1, 2}},
		{"top 9 (1,2,3)", []int{1, 2, 3}}, // oversized N keeps everything
		{"bottom 9 (1,2,3)", []int{1, 2, 3}},
		{"count 2 (1,2,3,4)", []int{1}},
		{"count 2 (2,2,2)", []int{3}},
		{"count 7 (1,2,3)", []int{0}}, // zero matches is still one value
		{"max(3,7,2)", []int{7}},
		{"min(3,7,2)", []int{2}},
		{"max 5", []int{5}}, // degenerate single-element input
		{"min 5", []int{5}},
		{"sum(1,2,3)", []int{6}},
	}

	for _, tt := range tests {
		result := mustRoll(t, tt.input)
		if len(result.Values) != len(tt.want) {
			t.Errorf("Roll(%q) values = %v, want %v", tt.input, result.Values, tt.want)
			continue
		}
		for i := range tt.want {
			if result.Values[i] != tt.want[i] {
				t.Errorf("Roll(%q) values = %v, want %v", tt.input, result.Values, tt.want)
				break
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, input := range []string{"5/(2-2)", "10 / count 7 (1,2,3)"} {
		_, err := Roll(mustParse(t, input))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Roll(%q) error = %v, want ErrDivisionByZero", input, err)
		}
	}
}

func TestRerollResamples(t *testing.T) {
	Seed(1)
	node := mustParse(t, "100d6")

	first, err := Roll(node)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Roll(node)
	if err != nil {
		t.Fatal(err)
	}

	// 100 dice landing identically twice is effectively impossible.
	same := len(first.Values) == len(second.Values)
	if same {
		for i := range first.Values {
			if first.Values[i] != second.Values[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("re-rolling the same tree produced identical dice")
	}
}

func TestSeedReproducibility(t *testing.T) {
	node := mustParse(t, "top 3 (6d20) + 2d6")

	Seed(42)
	first, err := Roll(node)
	if err != nil {
		t.Fatal(err)
	}
	Seed(42)
	second, err := Roll(node)
	if err != nil {
		t.Fatal(err)
	}

	a := strings.Join(first.RenderAudit("  "), "\n")
	b := strings.Join(second.RenderAudit("  "), "\n")
	if a != b {
		t.Errorf("same seed gave different audits:\n%s\n---\n%s", a, b)
	}
}

func TestAuditTreeShape(t *testing.T) {
	Seed(1)
	result := mustRoll(t, "2d6 + 3")

	if result.Label != "Sum" {
		t.Fatalf("root label = %q, want Sum", result.Label)
	}
	if len(result.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(result.Children))
	}
	if result.Children[0].Label != "2d6" || result.Children[1].Label != "const" {
		t.Errorf("child labels = %q, %q", result.Children[0].Label, result.Children[1].Label)
	}
	if len(result.Values) != 1 {
		t.Errorf("Sum values = %v, want a single element", result.Values)
	}
}

func TestRenderAudit(t *testing.T) {
	result := &Result{
		Values: []int{7},
		Label:  "Sum",
		Children: []*Result{
			{Values: []int{2, 5}, Label: "2d6"},
			{Values: []int{3}, Label: "const"},
		},
	}

	got := result.RenderAudit("  ")
	want := []string{
		"Sum : 7",
		"  2d6 : 2, 5",
		"  const : 3",
	}
	if len(got) != len(want) {
		t.Fatalf("RenderAudit = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsDiceLabel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"2d6", true},
		{"2D6", true},
		{"10 d 20", true},
		{"const", false},
		{"Sum", false},
		{"top 3", false},
		{"d6", false},
		{"2d", false},
		{"0d6", false},
	}
	for _, tt := range tests {
		if got := IsDiceLabel(tt.label); got != tt.want {
			t.Errorf("IsDiceLabel(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
