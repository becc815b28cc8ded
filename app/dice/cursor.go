package dice

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseError represents a syntax error at a byte offset in the input line.
type ParseError struct {
	Source string
	Msg    string
	Pos    int
}

func (e *ParseError) Error() string {
	return e.Msg
}

// Position returns the byte offset at which the error was detected, for
// rendering a caret under the offending character.
func (e *ParseError) Position() int {
	return e.Pos
}

// Cursor is a position-tracking scanner over an immutable input string.
// It knows nothing about any particular grammar: matching is via exact
// keyword/punctuation literals and anchored regular expressions, whitespace
// is skipped after every successful match, and Mark/Rollback give
// backtracking parsers a way to retry alternatives from the same position.
type Cursor struct {
	text string
	pos  int
}

// NewCursor creates a cursor over text, positioned at the first
// non-whitespace character.
func NewCursor(text string) *Cursor {
	c := &Cursor{text: text}
	c.skipWhitespace()
	return c
}

// ReadToNewline returns the text from the current position to the next line
// break (or end of input), trimmed of trailing whitespace, and advances past
// it.
func (c *Cursor) ReadToNewline() string {
	start := c.pos
	eol := strings.IndexByte(c.text[c.pos:], '\n')
	if eol < 0 {
		c.pos = len(c.text)
		return strings.TrimRight(c.text[start:], " \t\r\n")
	}
	c.pos += eol
	line := strings.TrimRight(c.text[start:c.pos], " \t\r\n")
	c.skipWhitespace()
	return line
}

// AcceptKeyword advances past word iff the text at the current position
// equals word and the character immediately after (if any) is not an
// identifier character. Prevents "maxim" from matching keyword "max".
func (c *Cursor) AcceptKeyword(word string) bool {
	end := c.pos + len(word)
	if end > len(c.text) || c.text[c.pos:end] != word {
		return false
	}
	// A keyword ending at end-of-input has no follow character to reject.
	if end < len(c.text) && isIdentChar(c.text[end]) {
		return false
	}
	c.pos = end
	c.skipWhitespace()
	return true
}

// AcceptPunct advances past lit iff the text at the current position equals
// it exactly. Punctuation can abut anything, so there is no boundary check.
func (c *Cursor) AcceptPunct(lit string) bool {
	end := c.pos + len(lit)
	if end > len(c.text) || c.text[c.pos:end] != lit {
		return false
	}
	c.pos = end
	c.skipWhitespace()
	return true
}

// AcceptRegexp attempts an anchored match of re starting exactly at the
// current position. A match found further into the input is a failure.
func (c *Cursor) AcceptRegexp(re *regexp.Regexp) (string, bool) {
	loc := re.FindStringIndex(c.text[c.pos:])
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	match := c.text[c.pos : c.pos+loc[1]]
	c.pos += loc[1]
	c.skipWhitespace()
	return match, true
}

// ExpectKeyword is AcceptKeyword that returns a positioned error on failure.
func (c *Cursor) ExpectKeyword(word string) error {
	if !c.AcceptKeyword(word) {
		return c.Errorf("expected keyword `%s`", word)
	}
	return nil
}

// ExpectPunct is AcceptPunct that returns a positioned error on failure.
func (c *Cursor) ExpectPunct(lit string) error {
	if !c.AcceptPunct(lit) {
		got := "<eof>"
		if c.pos < len(c.text) {
			_, size := utf8.DecodeRuneInString(c.text[c.pos:])
			got = c.text[c.pos : c.pos+size]
		}
		return c.Errorf("expected punctuation `%s`, got `%s`", lit, got)
	}
	return nil
}

// ExpectRegexp is AcceptRegexp that returns a positioned error on failure,
// describing the expected token as desc.
func (c *Cursor) ExpectRegexp(re *regexp.Regexp, desc string) (string, error) {
	match, ok := c.AcceptRegexp(re)
	if !ok {
		return "", c.Errorf("expected %s", desc)
	}
	return match, nil
}

// Mark captures the current position for a later Rollback.
func (c *Cursor) Mark() int {
	return c.pos
}

// Rollback restores a position captured by Mark. Whitespace skipping is
// idempotent, so nothing else needs restoring.
func (c *Cursor) Rollback(mark int) {
	c.pos = mark
}

// AtEOF reports whether the cursor has consumed all input.
func (c *Cursor) AtEOF() bool {
	return c.pos == len(c.text)
}

// SetEOF jumps the cursor to end of input, discarding the remainder.
func (c *Cursor) SetEOF() {
	c.pos = len(c.text)
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Errorf builds a ParseError at the current position.
func (c *Cursor) Errorf(format string, args ...any) *ParseError {
	return &ParseError{Source: c.text, Msg: fmt.Sprintf(format, args...), Pos: c.pos}
}

func (c *Cursor) skipWhitespace() {
	for c.pos < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[c.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		c.pos += size
	}
}

func isIdentChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') || ch == '_'
}
