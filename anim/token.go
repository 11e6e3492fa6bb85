// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/token.go
// Summary: Typed token model for numeric pieces embedded in style strings.
// Usage: Animate tokenizes both ends of a transition and pairs tokens by position.
// Notes: A token is a number with an optional unit or %, or an opaque calc()/var() call.

package anim

import (
	"strconv"
	"strings"
)

// Kind classifies a token.
type Kind int

const (
	// Number is a bare number ("0.75").
	Number Kind = iota
	// Dimension is a number followed by a unit word ("16px", "100vw").
	Dimension
	// Percentage is a number followed by "%".
	Percentage
	// Opaque is a calc(...) or var(...) expression blended as a whole.
	Opaque
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Dimension:
		return "dimension"
	case Percentage:
		return "percentage"
	case Opaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Token is one blendable piece of a style value. Start and End index into
// the source string.
type Token struct {
	Kind  Kind
	Value float64
	Unit  string
	Text  string
	Start int
	End   int
}

// Tokenize returns the blendable tokens of a style value in order of
// appearance. A token must start at a word boundary, so "h1" or "x2" never
// yield numbers. A "-" directly before the digits belongs to the token.
func Tokenize(value string) []Token {
	var out []Token
	i := 0
	for i < len(value) {
		c := value[i]
		if i > 0 && isWordByte(value[i-1]) {
			i++
			continue
		}
		switch {
		case isDigit(c), c == '-' && signStart(value, i):
			tok := scanNumber(value, i)
			out = append(out, tok)
			i = tok.End
		case strings.HasPrefix(value[i:], "calc(") || strings.HasPrefix(value[i:], "var("):
			open := strings.IndexByte(value[i:], '(') + i
			end := closingParen(value, open)
			if end < 0 {
				return out
			}
			out = append(out, Token{Kind: Opaque, Text: value[i : end+1], Start: i, End: end + 1})
			i = end + 1
		default:
			i++
		}
	}
	return out
}

// HasTokens reports whether value contains at least one blendable token.
func HasTokens(value string) bool {
	return len(Tokenize(value)) > 0
}

// signStart reports whether the "-" at i opens a negative number: it must
// be followed by a digit and not follow a value it could subtract from.
func signStart(s string, i int) bool {
	if i+1 >= len(s) || !isDigit(s[i+1]) {
		return false
	}
	if i == 0 {
		return true
	}
	switch s[i-1] {
	case ' ', '(', ',', '\t':
		return true
	}
	return false
}

func scanNumber(s string, start int) Token {
	i := start
	if s[i] == '-' {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	numEnd := i
	v, _ := strconv.ParseFloat(strings.TrimSuffix(s[start:numEnd], "."), 64)
	tok := Token{Kind: Number, Value: v, Start: start}

	switch {
	case i < len(s) && s[i] == '%':
		i++
		tok.Kind = Percentage
		tok.Unit = "%"
	case i < len(s) && isLower(s[i]):
		j := i
		for j < len(s) && isLower(s[j]) {
			j++
		}
		// The unit must end on a word boundary ("16px" but not "16pxa1").
		if j == len(s) || !isWordByte(s[j]) {
			tok.Kind = Dimension
			tok.Unit = s[i:j]
			i = j
		}
	}
	tok.End = i
	tok.Text = s[start:i]
	return tok
}

func closingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isWordByte(c byte) bool {
	return isDigit(c) || isLower(c) || (c >= 'A' && c <= 'Z') || c == '_'
}
