package main

import (
	"image/color"
	"regexp"
)

// TokenKind represents the category of a syntax token.
type TokenKind int

const (
	TokenPlain TokenKind = iota
	TokenKeyword
	TokenNumber
	TokenDice
	TokenComment
	TokenOperator
	TokenParen
	TokenError
)

// Token is a span of text with a syntax category.
type Token struct {
	Text string
	Kind TokenKind
}

// tokenColors maps token kinds to colors. Dark-theme oriented, color roles
// matching the audit display: dice rolls cyan, constants green-ish numbers.
var tokenColors = map[TokenKind]color.NRGBA{
	TokenPlain:    {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}, // light gray
	TokenKeyword:  {R: 0x56, G: 0x9C, B: 0xD6, A: 0xFF}, // blue
	TokenNumber:   {R: 0xB5, G: 0xCE, B: 0xA8, A: 0xFF}, // green
	TokenDice:     {R: 0x4E, G: 0xC9, B: 0xB0, A: 0xFF}, // teal
	TokenComment:  {R: 0x6A, G: 0x99, B: 0x55, A: 0xFF}, // dark green
	TokenOperator: {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}, // light gray
	TokenParen:    {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}, // yellow
	TokenError:    {R: 0xF4, G: 0x47, B: 0x47, A: 0xFF}, // red
}

// TokenColor returns the color for a token kind.
func TokenColor(kind TokenKind) color.NRGBA {
	if c, ok := tokenColors[kind]; ok {
		return c
	}
	return tokenColors[TokenPlain]
}

// diceTermRe colors a whole NdK term at once. Either case of d is colored
// as a dice term even though only lowercase parses; the parse error span
// makes the difference visible.
var diceTermRe = regexp.MustCompile(`^[1-9][0-9]*\s*[dD]\s*[1-9][0-9]*`)

var keywords = map[string]bool{
	"max":    true,
	"min":    true,
	"sum":    true,
	"top":    true,
	"bottom": true,
	"count":  true,
}

// Tokenize splits a line into highlighted tokens. The returned tokens cover
// the input exactly, in order, so a renderer can advance through them while
// tracking byte offsets.
func Tokenize(line string) []Token {
	if line == "" {
		return nil
	}

	var result []Token
	i := 0
	for i < len(line) {
		ch := line[i]

		if ch == ';' {
			// Comment to end of line
			result = append(result, Token{Text: line[i:], Kind: TokenComment})
			break
		}

		if isDigitByte(ch) {
			if m := diceTermRe.FindString(line[i:]); m != "" {
				result = append(result, Token{Text: m, Kind: TokenDice})
				i += len(m)
				continue
			}
			start := i
			for i < len(line) && isDigitByte(line[i]) {
				i++
			}
			result = append(result, Token{Text: line[start:i], Kind: TokenNumber})
			continue
		}

		if isLetterByte(ch) || ch == '_' {
			start := i
			for i < len(line) && (isLetterByte(line[i]) || isDigitByte(line[i]) || line[i] == '_') {
				i++
			}
			word := line[start:i]
			kind := TokenPlain
			if keywords[word] {
				kind = TokenKeyword
			}
			result = append(result, Token{Text: word, Kind: kind})
			continue
		}

		switch ch {
		case '+', '-', '*', '/', ',':
			result = append(result, Token{Text: line[i : i+1], Kind: TokenOperator})
			i++
		case '(', ')':
			result = append(result, Token{Text: line[i : i+1], Kind: TokenParen})
			i++
		default:
			// Whitespace and anything unrecognized
			start := i
			i++
			for i < len(line) && !isTokenStart(line[i]) {
				i++
			}
			result = append(result, Token{Text: line[start:i], Kind: TokenPlain})
		}
	}

	return result
}

func isTokenStart(ch byte) bool {
	switch ch {
	case ';', '+', '-', '*', '/', ',', '(', ')', '_':
		return true
	}
	return isDigitByte(ch) || isLetterByte(ch)
}

func isDigitByte(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetterByte(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
