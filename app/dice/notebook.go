package dice

import (
	"errors"
	"strconv"
	"strings"
)

// CachedLine holds the cached state for a single notebook line.
type CachedLine struct {
	Text    string
	Node    Node
	Result  *Result
	Err     error
	IsEmpty bool // line was blank or a full-line comment
}

// EvalResult is the per-line outcome handed to a renderer.
type EvalResult struct {
	Text   string // formatted total or error message
	IsErr  bool
	ErrPos int      // byte offset for the caret marker; -1 if not a parse error
	Audit  []string // rendered audit tree for the line
}

// EvalState caches per-line parse and roll results. Rolling is
// side-effecting, so a cached line keeps its dice until its text changes or
// the caller asks for an explicit re-roll.
type EvalState struct {
	Lines []CachedLine
}

// EvalAll evaluates lines against the cache. reroll forces every non-empty
// line to roll again even if its text is unchanged.
func (es *EvalState) EvalAll(lines []string, reroll bool) []EvalResult {
	results := make([]EvalResult, len(lines))

	// Full reset when line count changes
	if len(lines) != len(es.Lines) {
		es.Lines = make([]CachedLine, len(lines))
		for i := range es.Lines {
			es.Lines[i].Text = "\x00" // force dirty
		}
	}

	for i, line := range lines {
		cached := &es.Lines[i]
		trimmed := strings.TrimSpace(line)
		isEmpty := trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "//")

		dirty := cached.Text != line || (reroll && !cached.IsEmpty)

		if !dirty {
			results[i] = outcomeFor(cached)
			continue
		}

		cached.Text = line
		cached.IsEmpty = isEmpty
		cached.Node = nil
		cached.Result = nil
		cached.Err = nil

		if isEmpty {
			results[i] = EvalResult{ErrPos: -1}
			continue
		}

		node, err := ParseLine(line)
		if err != nil {
			cached.Err = err
			results[i] = outcomeFor(cached)
			continue
		}
		cached.Node = node

		result, err := Roll(node)
		cached.Result = result
		cached.Err = err
		results[i] = outcomeFor(cached)
	}

	return results
}

// Reroll re-rolls a single cached line without touching the others. Returns
// the refreshed outcome, or a zero outcome if the index is out of range.
func (es *EvalState) Reroll(i int) EvalResult {
	if i < 0 || i >= len(es.Lines) {
		return EvalResult{ErrPos: -1}
	}
	cached := &es.Lines[i]
	if cached.IsEmpty || cached.Node == nil {
		return outcomeFor(cached)
	}
	result, err := Roll(cached.Node)
	cached.Result = result
	cached.Err = err
	return outcomeFor(cached)
}

// ResultAt returns the cached audit tree for line i, or nil for empty,
// errored, or out-of-range lines.
func (es *EvalState) ResultAt(i int) *Result {
	if i < 0 || i >= len(es.Lines) {
		return nil
	}
	return es.Lines[i].Result
}

func outcomeFor(cached *CachedLine) EvalResult {
	if cached.IsEmpty {
		return EvalResult{ErrPos: -1}
	}
	if cached.Err != nil {
		pos := -1
		var perr *ParseError
		if errors.As(cached.Err, &perr) {
			pos = perr.Position()
		}
		return EvalResult{Text: cached.Err.Error(), IsErr: true, ErrPos: pos}
	}
	if cached.Result == nil {
		return EvalResult{ErrPos: -1}
	}
	return EvalResult{
		Text:   strconv.Itoa(cached.Result.Total()),
		ErrPos: -1,
		Audit:  cached.Result.RenderAudit("    "),
	}
}
