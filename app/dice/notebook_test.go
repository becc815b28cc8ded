package dice

import "testing"

func TestNotebookBasic(t *testing.T) {
	Seed(1)
	es := &EvalState{}

	lines := []string{"2 + 3", "", "; comment only", "// also a comment", "4 * 5"}
	results := es.EvalAll(lines, false)

	if results[0].Text != "5" || results[0].IsErr {
		t.Errorf("line 0 = %+v, want total 5", results[0])
	}
	for _, i := range []int{1, 2, 3} {
		if results[i].Text != "" || results[i].IsErr {
			t.Errorf("line %d = %+v, want empty", i, results[i])
		}
	}
	if results[4].Text != "20" {
		t.Errorf("line 4 = %+v, want total 20", results[4])
	}
}

func TestNotebookCachesRolls(t *testing.T) {
	Seed(1)
	es := &EvalState{}

	lines := []string{"100d6"}
	first := es.EvalAll(lines, false)
	second := es.EvalAll(lines, false)

	if first[0].Text != second[0].Text {
		t.Errorf("unchanged line re-rolled: %q then %q", first[0].Text, second[0].Text)
	}

	// Editing the text must re-roll
	es.EvalAll([]string{"100d6 ; edited"}, false)
	if es.Lines[0].Text != "100d6 ; edited" {
		t.Error("cache did not pick up the edit")
	}
}

func TestNotebookReroll(t *testing.T) {
	Seed(1)
	es := &EvalState{}
	lines := []string{"100d6", "7"}

	es.EvalAll(lines, false)
	results := es.EvalAll(lines, true)

	if results[1].Text != "7" {
		t.Errorf("constant line = %q, want 7 on every roll", results[1].Text)
	}
	if results[0].IsErr || results[0].Text == "" {
		t.Errorf("re-rolled line = %+v", results[0])
	}
}

func TestNotebookErrors(t *testing.T) {
	es := &EvalState{}
	results := es.EvalAll([]string{"2d", "5/(1-1)"}, false)

	if !results[0].IsErr {
		t.Fatalf("line 0 = %+v, want parse error", results[0])
	}
	if results[0].ErrPos != 2 {
		t.Errorf("line 0 caret offset = %d, want 2", results[0].ErrPos)
	}

	if !results[1].IsErr {
		t.Fatalf("line 1 = %+v, want division error", results[1])
	}
	if results[1].ErrPos != -1 {
		t.Errorf("runtime errors carry no caret offset, got %d", results[1].ErrPos)
	}
	if results[1].Text != "division by zero" {
		t.Errorf("line 1 message = %q", results[1].Text)
	}
}

func TestNotebookAudit(t *testing.T) {
	Seed(1)
	es := &EvalState{}
	results := es.EvalAll([]string{"2d6 + 3"}, false)

	if len(results[0].Audit) != 3 {
		t.Fatalf("audit = %q, want 3 rows", results[0].Audit)
	}
	if es.ResultAt(0) == nil {
		t.Error("ResultAt(0) should expose the audit tree")
	}
	if es.ResultAt(5) != nil {
		t.Error("ResultAt out of range should be nil")
	}
}

func TestNotebookLineCountChange(t *testing.T) {
	Seed(1)
	es := &EvalState{}

	es.EvalAll([]string{"1", "2"}, false)
	results := es.EvalAll([]string{"1", "2", "3"}, false)

	want := []string{"1", "2", "3"}
	for i, w := range want {
		if results[i].Text != w {
			t.Errorf("line %d = %q, want %q", i, results[i].Text, w)
		}
	}
}
