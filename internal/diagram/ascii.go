package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gosteel/internal/classify"
	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/flexure"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/guptarohit/asciigraph"
)

// Raster size of DrawSection, in characters
const (
	SectionColumns = 32
	SectionRows    = 16
)

// DrawSection rasterises the profile outline. Cells whose centre lies in
// the steel are filled; terminal cells are about twice as tall as wide.
func DrawSection(p *section.Properties) string {
	outer := section.Outline(p)
	if len(outer) == 0 {
		return "  (no outline: dimensions missing)\n"
	}
	hole := section.Hole(p)
	minX, minY, maxX, maxY := outer.Bounds()
	w, h := maxX-minX, maxY-minY

	// fit the larger dimension, keep the aspect ratio
	cols, rows := SectionColumns, SectionRows
	if w/2 > h {
		rows = max(3, int(math.Round(float64(cols)*h/(2*w))))
	} else {
		cols = max(3, int(math.Round(float64(rows)*2*w/h)))
	}
	dx, dy := w/float64(cols), h/float64(rows)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s (%s)\n", p.Name(), p.Family))
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for r := rows - 1; r >= 0; r-- {
		y := minY + (float64(r)+0.5)*dy
		line := []rune(strings.Repeat(" ", cols))
		fill(line, outer.Spans(y), minX, dx, '█')
		fill(line, hole.Spans(y), minX, dx, ' ')
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(line)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	sb.WriteString(fmt.Sprintf("  %.0f × %.0f mm\n", h, w))
	return sb.String()
}

// fill marks the cells whose centre lies in a span. A span thinner than a
// cell still marks the cell under its midpoint unless c is blank.
func fill(line []rune, spans [][2]float64, x0, dx float64, c rune) {
	for _, s := range spans {
		hit := false
		for i := range line {
			x := x0 + (float64(i)+0.5)*dx
			if x >= s[0] && x <= s[1] {
				line[i] = c
				hit = true
			}
		}
		if !hit && c != ' ' {
			i := int(((s[0]+s[1])/2 - x0) / dx)
			line[min(max(i, 0), len(line)-1)] = c
		}
	}
}

// gaugeWidth is the bar length of DrawSlenderness
const gaugeWidth = 30

// DrawSlenderness draws one bar per element: λ against λp (|) and λr (‖),
// the scale ending at 1.25·max(λ, λr)
func DrawSlenderness(c classify.Classification) string {
	var sb strings.Builder
	sb.WriteString("\n  ELEMENT SLENDERNESS\n")
	sb.WriteString("  ───────────────────\n")
	for _, e := range c.Elements {
		top := 1.25 * math.Max(e.Lambda, e.LambdaR)
		if top <= 0 {
			continue
		}
		pos := func(v float64) int {
			return min(gaugeWidth-1, int(v/top*gaugeWidth))
		}
		bar := []rune(strings.Repeat("█", pos(e.Lambda)) + strings.Repeat("·", gaugeWidth-pos(e.Lambda)))
		if lp, ok := e.LambdaP.Get(); ok {
			bar[pos(lp)] = '|'
		}
		bar[pos(e.LambdaR)] = '‖'
		sb.WriteString(fmt.Sprintf("  %-14s %s  λ=%6.2f  %s\n", e.Name, string(bar), e.Lambda, e.Class))
	}
	sb.WriteString("  | λp   ‖ λr\n")
	return sb.String()
}

// DrawCurve plots a sampled curve in the terminal
func DrawCurve(ys []float64, caption string, height int) string {
	if len(ys) == 0 {
		return ""
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Offset(4),
		asciigraph.Precision(1),
		asciigraph.Caption(caption)) + "\n"
}

// DrawFlexureCurve plots φMn against Lb
func DrawFlexureCurve(points []flexure.CurvePoint) string {
	ys := make([]float64, len(points))
	for i, pt := range points {
		ys[i] = pt.Md
	}
	last := 0.0
	if len(points) > 0 {
		last = points[len(points)-1].Lb
	}
	return DrawCurve(ys, fmt.Sprintf("φMn (kN·m), Lb from 0 to %.0f mm", last), 12)
}

// DrawColumnCurve plots φPn against KL
func DrawColumnCurve(points []compression.CurvePoint) string {
	ys := make([]float64, len(points))
	for i, pt := range points {
		ys[i] = pt.Pd
	}
	first, last := 0.0, 0.0
	if len(points) > 0 {
		first, last = points[0].KL, points[len(points)-1].KL
	}
	return DrawCurve(ys, fmt.Sprintf("φPn (kN), KL from %.0f to %.0f mm", first, last), 12)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-2-utf8.RuneCountInString(s))
	}
	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
