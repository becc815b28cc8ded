package main

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"dicepad/app/dice"
)

// Audit panel colors: labels yellow, dice values cyan, constants magenta,
// calculated values green.
var (
	auditBg         = color.NRGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xFF}
	auditLabelColor = color.NRGBA{R: 0xE5, G: 0xC0, B: 0x7B, A: 0xFF} // yellow
	auditDiceColor  = color.NRGBA{R: 0x4E, G: 0xC9, B: 0xB0, A: 0xFF} // cyan
	auditConstColor = color.NRGBA{R: 0xC5, G: 0x86, B: 0xC0, A: 0xFF} // magenta
	auditCalcColor  = color.NRGBA{R: 0xB5, G: 0xCE, B: 0xA8, A: 0xFF} // green
)

const maxAuditRows = 10

// auditRow is one flattened line of an audit tree.
type auditRow struct {
	depth  int
	label  string
	values string
	color  color.NRGBA
}

// flattenAudit walks a result tree depth-first in pre-order, one row per
// node, values colored by what produced them.
func flattenAudit(r *dice.Result, depth int, rows *[]auditRow) {
	vals := make([]string, len(r.Values))
	for i, v := range r.Values {
		vals[i] = strconv.Itoa(v)
	}

	c := auditCalcColor
	switch {
	case r.Label == "const":
		c = auditConstColor
	case dice.IsDiceLabel(r.Label):
		c = auditDiceColor
	}

	*rows = append(*rows, auditRow{
		depth:  depth,
		label:  r.Label,
		values: strings.Join(vals, ", "),
		color:  c,
	})
	for _, child := range r.Children {
		flattenAudit(child, depth+1, rows)
	}
}

// LayoutAuditPanel renders the audit tree of the caret line along the bottom
// of the window. A nil result collapses the panel.
func LayoutAuditPanel(gtx layout.Context, th *material.Theme, result *dice.Result, lineHeight int) layout.Dimensions {
	if result == nil {
		return layout.Dimensions{}
	}

	var rows []auditRow
	flattenAudit(result, 0, &rows)
	if len(rows) > maxAuditRows {
		rows = rows[:maxAuditRows]
	}

	if lineHeight <= 0 {
		lineHeight = 16
	}
	pad := gtx.Dp(unit.Dp(6))
	height := len(rows)*lineHeight + 2*pad
	width := gtx.Constraints.Max.X

	paint.FillShape(gtx.Ops, auditBg, clip.Rect(image.Rect(0, 0, width, height)).Op())
	paint.FillShape(gtx.Ops, gutterDivider, clip.Rect(image.Rect(0, 0, width, 1)).Op())

	for i, row := range rows {
		y := pad + i*lineHeight
		x := pad + row.depth*gtx.Dp(unit.Dp(16))

		x = drawAuditSpan(gtx, th, row.label+" : ", auditLabelColor, x, y, width, lineHeight)
		drawAuditSpan(gtx, th, row.values, row.color, x, y, width, lineHeight)
	}

	return layout.Dimensions{Size: image.Pt(width, height)}
}

// drawAuditSpan draws one colored text span and returns the x position after
// it.
func drawAuditSpan(gtx layout.Context, th *material.Theme, s string, c color.NRGBA, x, y, maxX, lineHeight int) int {
	if x >= maxX {
		return x
	}
	lbl := material.Label(th, th.TextSize, s)
	lbl.Color = c
	lbl.MaxLines = 1

	off := op.Offset(image.Pt(x, y)).Push(gtx.Ops)
	spanGtx := gtx
	spanGtx.Constraints.Min = image.Point{}
	spanGtx.Constraints.Max = image.Pt(maxX-x, lineHeight)
	dims := lbl.Layout(spanGtx)
	off.Pop()

	return x + dims.Size.X
}
