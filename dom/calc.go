// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dom/calc.go
// Summary: Evaluator for calc() expressions over px, vw, vh, % and plain numbers.
// Usage: Style resolution substitutes var() first, then evaluates with this parser.

package dom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// quantity is a number with an optional unit. After evaluation lengths are
// always px; unit is "" for plain numbers.
type quantity struct {
	v    float64
	unit string
}

// calcContext carries the bases for relative units.
type calcContext struct {
	vw, vh      float64
	percentBase float64
}

type calcParser struct {
	src string
	pos int
	ctx calcContext
}

// evalLength evaluates an expression such as "calc(10px + 50%)" or "100vw".
func evalLength(expr string, ctx calcContext) (quantity, error) {
	p := &calcParser{src: expr, ctx: ctx}
	q, err := p.expr()
	if err != nil {
		return quantity{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return quantity{}, fmt.Errorf("dom: trailing input %q in %q", p.src[p.pos:], expr)
	}
	return q, nil
}

func (p *calcParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *calcParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *calcParser) expr() (quantity, error) {
	left, err := p.term()
	if err != nil {
		return quantity{}, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return quantity{}, err
		}
		unit, err := addUnits(left, right)
		if err != nil {
			return quantity{}, err
		}
		if op == '+' {
			left = quantity{v: left.v + right.v, unit: unit}
		} else {
			left = quantity{v: left.v - right.v, unit: unit}
		}
	}
}

func (p *calcParser) term() (quantity, error) {
	left, err := p.factor()
	if err != nil {
		return quantity{}, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.factor()
		if err != nil {
			return quantity{}, err
		}
		switch {
		case op == '*' && left.unit == "":
			left = quantity{v: left.v * right.v, unit: right.unit}
		case op == '*' && right.unit == "":
			left = quantity{v: left.v * right.v, unit: left.unit}
		case op == '/' && right.unit == "":
			if right.v == 0 {
				return quantity{}, fmt.Errorf("dom: division by zero")
			}
			left = quantity{v: left.v / right.v, unit: left.unit}
		default:
			return quantity{}, fmt.Errorf("dom: cannot %c %s by %s", op, left.unit, right.unit)
		}
	}
}

func (p *calcParser) factor() (quantity, error) {
	switch c := p.peek(); {
	case c == 0:
		return quantity{}, fmt.Errorf("dom: unexpected end of %q", p.src)
	case c == '-' || c == '+':
		p.pos++
		q, err := p.factor()
		if c == '-' {
			q.v = -q.v
		}
		return q, err
	case c == '(':
		p.pos++
		return p.group()
	case strings.HasPrefix(p.src[p.pos:], "calc("):
		p.pos += len("calc(")
		return p.group()
	case c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	default:
		return quantity{}, fmt.Errorf("dom: unexpected %q in %q", c, p.src)
	}
}

func (p *calcParser) group() (quantity, error) {
	q, err := p.expr()
	if err != nil {
		return quantity{}, err
	}
	if p.peek() != ')' {
		return quantity{}, fmt.Errorf("dom: missing ) in %q", p.src)
	}
	p.pos++
	return q, nil
}

func (p *calcParser) number() (quantity, error) {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] == '.' || (p.src[p.pos] >= '0' && p.src[p.pos] <= '9')) {
		p.pos++
	}
	// exponent form produced by strconv for very small blends
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		save := p.pos
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
			p.pos++
		}
		digits := p.pos
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		if p.pos == digits {
			p.pos = save
		}
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return quantity{}, fmt.Errorf("dom: bad number %q: %w", p.src[start:p.pos], err)
	}
	unitStart := p.pos
	for p.pos < len(p.src) && ((p.src[p.pos] >= 'a' && p.src[p.pos] <= 'z') || p.src[p.pos] == '%') {
		p.pos++
		if p.src[p.pos-1] == '%' {
			break
		}
	}
	unit := p.src[unitStart:p.pos]
	switch unit {
	case "":
		return quantity{v: v}, nil
	case "px":
		return quantity{v: v, unit: "px"}, nil
	case "vw":
		return quantity{v: v * p.ctx.vw / 100, unit: "px"}, nil
	case "vh":
		return quantity{v: v * p.ctx.vh / 100, unit: "px"}, nil
	case "%":
		return quantity{v: v * p.ctx.percentBase / 100, unit: "px"}, nil
	default:
		// Angles, times and the like keep their unit; they only combine
		// with the same unit or plain numbers.
		return quantity{v: v, unit: unit}, nil
	}
}

func addUnits(a, b quantity) (string, error) {
	switch {
	case a.unit == b.unit:
		return a.unit, nil
	case a.unit == "" && a.v == 0:
		return b.unit, nil
	case b.unit == "" && b.v == 0:
		return a.unit, nil
	default:
		return "", fmt.Errorf("dom: incompatible units %q and %q", a.unit, b.unit)
	}
}

// formatNumber prints v the way resolved styles report numbers.
func formatNumber(v float64) string {
	v = math.Round(v*10000) / 10000
	if v == 0 {
		v = 0 // normalise -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (q quantity) String() string {
	return formatNumber(q.v) + q.unit
}
